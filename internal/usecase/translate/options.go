package translate

// Options exposes the differences between the two historical converter flavours.
// DefaultOptions selects the more complete one.
type Options struct {
	// Generator is written to the US property of the root node.
	Generator string
	// PlacePrefix is prepended to the game id in the PC property.
	PlacePrefix string
	// DrawResult is the RE value for a "0 points" outcome ("Draw" or "Jigo").
	DrawResult string
	// UnfinishedResult is the RE value when neither winner nor outcome is present ("?" or "Unfinished").
	UnfinishedResult string
	// LogMissingRanks reports absent player ranks as problems.
	LogMissingRanks bool
	// FreePlacementMoves treats the first handicap entries of the move list as placed stones
	// when the game used free handicap placement.
	FreePlacementMoves bool
	// OGSImportOrdering honours the record's ogs_import flag when ordering fixed handicap stones.
	OGSImportOrdering bool
	// ForfeitOutcomes maps cancellations, disconnections and decisions to {color}+F.
	ForfeitOutcomes bool
	// RecoverEmbeddedInfo reads DT, PB and PW back out of original_sgf.
	RecoverEmbeddedInfo bool
}

func DefaultOptions() Options {
	return Options{
		Generator:           "lightvector/ogstosgf",
		PlacePrefix:         "OGS: https://online-go.com/game/",
		DrawResult:          "Draw",
		UnfinishedResult:    "?",
		LogMissingRanks:     false,
		FreePlacementMoves:  true,
		OGSImportOrdering:   true,
		ForfeitOutcomes:     true,
		RecoverEmbeddedInfo: true,
	}
}
