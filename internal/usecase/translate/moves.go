package translate

import (
	"math"

	"github.com/tidwall/gjson"

	"github.com/lightvector/ogstosgf/internal/domain/ogs"
	"github.com/lightvector/ogstosgf/internal/domain/sgf"
)

func (t *translation) translateMoves() {
	moves := t.get(t.rec.Result, ogs.FieldMoves, true)
	if !ogs.IsSet(moves) {
		return
	}

	blackNext := t.blackFirst
	placing := t.opts.FreePlacementMoves && t.freePlacement && t.handicap > 0
	var placed []string

	for idx, move := range moves.Array() {
		if placing && idx < t.handicap {
			if c, ok := t.moveCoord(idx, move); ok && c != "" {
				placed = append(placed, c)
			} else if ok {
				t.warn("Pass used as handicap stone %d for game %s", idx, t.gameID)
			}
			if idx == t.handicap-1 {
				blackNext = false
			}
			continue
		}

		c, _ := t.moveCoord(idx, move)
		color := "W"
		if blackNext {
			color = "B"
		}
		t.doc.AppendNode(sgf.Property{Key: color, Values: []string{c}})
		blackNext = !blackNext
	}

	if len(placed) > 0 {
		t.root.Add("AB", placed...)
	}
}

// moveCoord encodes one [x, y, ...] entry. A negative coordinate is a pass and encodes as "".
// Malformed entries are reported and also encode as "" so colours keep alternating.
func (t *translation) moveCoord(idx int, move gjson.Result) (string, bool) {
	coords := move.Array()
	if len(coords) < 2 || coords[0].Type != gjson.Number || coords[1].Type != gjson.Number {
		t.warn("Invalid move %d for game %s: %s", idx, t.gameID, move.Raw)
		return "", false
	}
	fx, fy := math.Floor(coords[0].Num), math.Floor(coords[1].Num)
	if fx < 0 || fy < 0 {
		return "", true
	}
	limit := float64(len(sgf.Letters))
	if fx >= limit || fy >= limit {
		t.warn("Move %d out of SGF coordinates for game %s: %s,%s", idx, t.gameID, coords[0].Raw, coords[1].Raw)
		return "", false
	}
	c, _ := sgf.Coord(int(fx), int(fy))
	return c, true
}
