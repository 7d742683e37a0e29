package translate

import (
	"strconv"
	"strings"

	"github.com/lightvector/ogstosgf/internal/domain/ogs"
)

var rulesets = map[string]string{
	"chinese":  "Chinese",
	"japanese": "Japanese",
	"korean":   "Korean",
	"nz":       "NZ",
	"aga":      "AGA",
	"ing":      "Ing",
}

// translateSetup emits board size, komi, rules, handicap and the game comment.
func (t *translation) translateSetup() {
	rec := t.rec.Result

	t.width = t.getInt(rec, ogs.FieldWidth, 19, true)
	t.height = t.getInt(rec, ogs.FieldHeight, 19, true)
	if t.width != t.height {
		t.root.Add("SZ", strconv.Itoa(t.width)+":"+strconv.Itoa(t.height))
	} else {
		t.root.Add("SZ", strconv.Itoa(t.width))
	}

	if komi := t.get(rec, ogs.FieldKomi, true); ogs.IsSet(komi) {
		t.root.Add("KM", ogs.Text(komi))
	}

	if rules := t.get(rec, ogs.FieldRules, true); ogs.IsSet(rules) {
		name := ogs.Text(rules)
		if canonical, ok := rulesets[strings.ToLower(name)]; ok {
			name = canonical
		}
		t.root.Add("RU", name)
	}

	t.handicap = t.getInt(rec, ogs.FieldHandicap, 0, false)
	if t.handicap > 0 {
		t.root.Add("HA", strconv.Itoa(t.handicap))
	}
	t.freePlacement = t.get(rec, ogs.FieldFreeHandicapPlacement, false).Bool()

	if ogs.Truthy(t.get(rec, ogs.FieldRanked, true)) {
		t.extraInfo = append(t.extraInfo, "ranked")
	} else {
		t.extraInfo = append(t.extraInfo, "unranked")
	}
	t.root.Add("GC", strings.Join(t.extraInfo, ","))
}

func (t *translation) translateInitialPlayer() {
	player := t.get(t.rec.Result, ogs.FieldInitialPlayer, false)
	if !ogs.IsSet(player) {
		return
	}
	switch ogs.Text(player) {
	case "black":
	case "white":
		t.blackFirst = false
		t.root.Add("PL", "W")
	default:
		t.warn("Unknown initial player for game %s", t.gameID)
	}
}
