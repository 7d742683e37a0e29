package translate

import (
	"strings"

	"github.com/lightvector/ogstosgf/internal/domain/ogs"
)

const (
	resultVoid    = "Void"
	resultUnknown = "?"
	drawOutcome   = "0 points"
)

var forfeitOutcomes = map[string]struct{}{
	"Cancellation":       {},
	"Disconnection":      {},
	"Moderator Decision": {},
	"Decision":           {},
	"Disqualification":   {},
	"Ladder Withdrawn":   {},
}

func (t *translation) translateOutcome() {
	rec := t.rec.Result
	winner := t.get(rec, ogs.FieldWinner, false)
	outcome := t.get(rec, ogs.FieldOutcome, false)

	if !ogs.IsSet(winner) && !ogs.IsSet(outcome) {
		t.root.Add("RE", t.opts.UnfinishedResult)
		return
	}

	whiteID := t.get(rec, ogs.FieldWhitePlayerID, true)
	blackID := t.get(rec, ogs.FieldBlackPlayerID, true)
	text := ogs.Text(outcome)

	if ogs.IsSet(outcome) && text == drawOutcome {
		t.root.Add("RE", t.opts.DrawResult)
		return
	}
	if ogs.Truthy(outcome) && !ogs.Truthy(winner) {
		t.root.Add("RE", resultVoid)
		return
	}

	var color string
	switch {
	case ogs.Equal(winner, whiteID):
		color = "W"
	case ogs.Equal(winner, blackID):
		color = "B"
	default:
		t.warn("Unknown winner for game %s", t.gameID)
		t.warn("Unknown outcome (with unknown winner) for game %s", t.gameID)
		t.root.Add("RE", resultUnknown)
		return
	}
	t.root.Add("RE", t.resultFor(color, text))
}

func (t *translation) resultFor(color, outcome string) string {
	switch {
	case strings.HasSuffix(outcome, " points"):
		return color + "+" + strings.TrimSuffix(outcome, " points")
	case outcome == "1 point":
		return color + "+1"
	case outcome == "Resignation":
		return color + "+R"
	case outcome == "Timeout":
		return color + "+T"
	}
	if _, ok := forfeitOutcomes[outcome]; ok && t.opts.ForfeitOutcomes {
		return color + "+F"
	}
	t.warn("Unknown outcome (with known winner) for game %s", t.gameID)
	return resultUnknown
}
