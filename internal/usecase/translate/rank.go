package translate

import (
	"math"
	"strconv"
)

// RankString converts an OGS rating to a kyu/dan rank: 30 and above is dan (capped at 9d),
// below is kyu (capped at 30k).
func RankString(rating float64) string {
	floor := math.Floor(rating)
	if rating >= 30.0 {
		return strconv.Itoa(int(math.Min(9, floor-29))) + "d"
	}
	return strconv.Itoa(int(math.Min(30, 30-floor))) + "k"
}
