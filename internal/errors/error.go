package errors

import "errors"

var (
	ErrNotJSON          = errors.New("record is not valid JSON")
	ErrNotObject        = errors.New("record is not a JSON object")
	ErrReadRecord       = errors.New("failed to read record")
	ErrWriteSGF         = errors.New("failed to write sgf")
	ErrInvalidBoardSize = errors.New("invalid board size for fixed handicap placement")
	ErrInvalidHandicap  = errors.New("invalid handicap count for fixed handicap placement")
	ErrNoGameID         = errors.New("record has no game id")
	ErrSGFNotFound      = errors.New("sgf not found")
	ErrCacheDisabled    = errors.New("sgf cache is not configured")
)
