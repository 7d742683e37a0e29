package translate

import (
	"math"
	"time"

	"github.com/tidwall/gjson"

	"github.com/lightvector/ogstosgf/internal/domain/ogs"
)

func (t *translation) translateMetadata() {
	rec := t.rec.Result

	t.root.Add("FF", "4")
	t.root.Add("CA", "UTF-8")
	t.root.Add("GM", "1")
	t.root.Add("US", t.opts.Generator)

	if start := t.get(rec, ogs.FieldStartTime, false); ogs.IsSet(start) {
		date := time.Unix(int64(math.Floor(start.Float())), 0).UTC()
		t.info.Date = date
		t.root.Add("DT", date.Format(dateLayout))
	}

	if id := t.get(rec, ogs.FieldGameID, true); ogs.IsSet(id) {
		t.info.GameID = ogs.Text(id)
		t.root.Add("PC", t.opts.PlacePrefix+ogs.Text(id))
	}

	if name := t.get(rec, ogs.FieldGameName, false); ogs.IsSet(name) {
		t.root.Add("GN", ogs.Text(name))
	}

	players := t.get(rec, ogs.FieldPlayers, true)
	if !ogs.IsSet(players) {
		return
	}
	black := t.get(players, ogs.FieldBlack, true)
	white := t.get(players, ogs.FieldWhite, true)

	if ogs.Truthy(black) {
		if name := t.get(black, ogs.FieldUsername, true); ogs.IsSet(name) {
			t.info.BlackName = ogs.Text(name)
			t.root.Add("PB", t.info.BlackName)
		}
	}
	if ogs.Truthy(white) {
		if name := t.get(white, ogs.FieldUsername, true); ogs.IsSet(name) {
			t.info.WhiteName = ogs.Text(name)
			t.root.Add("PW", t.info.WhiteName)
		}
	}
	if ogs.Truthy(black) {
		t.addRank("BR", t.get(black, ogs.FieldRank, t.opts.LogMissingRanks))
	}
	if ogs.Truthy(white) {
		t.addRank("WR", t.get(white, ogs.FieldRank, t.opts.LogMissingRanks))
	}
}

func (t *translation) addRank(key string, rank gjson.Result) {
	if !ogs.IsSet(rank) {
		return
	}
	if rank.Type != gjson.Number {
		t.warn("Invalid rank for game %s: %s", t.gameID, rank.Raw)
		return
	}
	t.root.Add(key, RankString(rank.Num))
}

// originalSGF reports whether the record carries its own SGF, which then replaces the translation.
func (t *translation) originalSGF() (string, bool) {
	original := t.get(t.rec.Result, ogs.FieldOriginalSGF, false)
	if !ogs.IsSet(original) {
		return "", false
	}
	text := ogs.Text(original)
	if !t.opts.RecoverEmbeddedInfo {
		return text, true
	}

	if s, ok := t.getEmbedded(text, "DT", false); ok {
		if date, err := time.Parse(dateLayout, s); err == nil {
			t.info.Date = date
		}
	}
	if s, ok := t.getEmbedded(text, "PB", false); ok {
		t.info.BlackName = s
	}
	if s, ok := t.getEmbedded(text, "PW", false); ok {
		t.info.WhiteName = s
	}
	return text, true
}
