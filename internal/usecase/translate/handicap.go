package translate

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/lightvector/ogstosgf/internal/domain/ogs"
	"github.com/lightvector/ogstosgf/internal/domain/sgf"
	apperrors "github.com/lightvector/ogstosgf/internal/errors"
)

// Point is a zero-based board intersection.
type Point struct {
	X, Y int
}

// starLines returns the low, high and middle star line for one board side.
func starLines(size int) [3]int {
	if size <= 12 {
		return [3]int{2, size - 3, size / 2}
	}
	return [3]int{3, size - 4, size / 2}
}

// HandicapCoords returns the fixed placement of n handicap stones. The board must be square,
// odd and at least 9x9; n must be in 2..9. ogsImport selects the alternative ordering that
// games imported into OGS use for 2 and 3 stones.
func HandicapCoords(xSize, ySize, n int, ogsImport bool) ([]Point, error) {
	if xSize != ySize || xSize < 9 || xSize%2 != 1 {
		return nil, fmt.Errorf("%w: xSize=%d ySize=%d n=%d", apperrors.ErrInvalidBoardSize, xSize, ySize, n)
	}
	xc, yc := starLines(xSize), starLines(ySize)
	p := func(i, j int) Point { return Point{X: xc[i], Y: yc[j]} }

	corners := []Point{p(0, 0), p(1, 1), p(1, 0), p(0, 1)}
	sides := []Point{p(0, 2), p(1, 2)}
	topBottom := []Point{p(2, 0), p(2, 1)}
	center := p(2, 2)

	switch n {
	case 2:
		if ogsImport {
			return []Point{p(0, 0), p(1, 1)}, nil
		}
		return []Point{p(1, 0), p(0, 1)}, nil
	case 3:
		if ogsImport {
			return []Point{p(0, 0), p(1, 0), p(1, 1)}, nil
		}
		return []Point{p(1, 1), p(1, 0), p(0, 1)}, nil
	case 4:
		return corners, nil
	case 5:
		return concat([]Point{center}, corners), nil
	case 6:
		return concat(sides, corners), nil
	case 7:
		return concat(sides, []Point{center}, corners), nil
	case 8:
		return concat(topBottom, sides, corners), nil
	case 9:
		return concat(topBottom, sides, []Point{center}, corners), nil
	}
	return nil, fmt.Errorf("%w: xSize=%d ySize=%d n=%d", apperrors.ErrInvalidHandicap, xSize, ySize, n)
}

func concat(groups ...[]Point) []Point {
	var out []Point
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// translatePlacement emits the stones on the board before the first move.
// initial_state always wins over the fixed table.
func (t *translation) translatePlacement() {
	rec := t.rec.Result

	if state := t.get(rec, ogs.FieldInitialState, false); ogs.IsSet(state) {
		t.addStateStones("AB", t.get(state, ogs.FieldBlack, true))
		t.addStateStones("AW", t.get(state, ogs.FieldWhite, true))
		return
	}
	if t.handicap <= 0 || t.freePlacement {
		return
	}

	ogsImport := t.opts.OGSImportOrdering && t.get(rec, ogs.FieldOGSImport, false).Bool()
	points, err := HandicapCoords(t.width, t.height, t.handicap, ogsImport)
	if err != nil {
		t.warn("%v (game %s)", err, t.gameID)
		return
	}
	values := make([]string, 0, len(points))
	for _, pt := range points {
		c, ok := sgf.Coord(pt.X, pt.Y)
		if !ok {
			t.warn("Handicap stone outside of SGF coordinates for game %s: %d,%d", t.gameID, pt.X, pt.Y)
			return
		}
		values = append(values, c)
	}
	t.root.Add("AB", values...)
	t.blackFirst = false
}

// addStateStones splits a flat "aabbcc" string into coordinate pairs.
func (t *translation) addStateStones(key string, state gjson.Result) {
	stones := ogs.Text(state)
	if !ogs.IsSet(state) || stones == "" {
		return
	}
	if len(stones)%2 != 0 {
		t.warn("Odd length initial state for game %s: %s", t.gameID, key)
		stones = stones[:len(stones)-1]
	}
	values := make([]string, 0, len(stones)/2)
	for i := 0; i+1 < len(stones); i += 2 {
		values = append(values, stones[i:i+2])
	}
	if len(values) > 0 {
		t.root.Add(key, values...)
	}
}
