package ogs

import (
	"fmt"

	"github.com/tidwall/gjson"

	apperrors "github.com/lightvector/ogstosgf/internal/errors"
)

// Поля JSON-экспорта OGS
const (
	FieldGameID                = "game_id"
	FieldGameName              = "game_name"
	FieldStartTime             = "start_time"
	FieldPlayers               = "players"
	FieldBlack                 = "black"
	FieldWhite                 = "white"
	FieldUsername              = "username"
	FieldRank                  = "rank"
	FieldTimeControl           = "time_control"
	FieldSystem                = "system"
	FieldSpeed                 = "speed"
	FieldWinner                = "winner"
	FieldOutcome               = "outcome"
	FieldWhitePlayerID         = "white_player_id"
	FieldBlackPlayerID         = "black_player_id"
	FieldWidth                 = "width"
	FieldHeight                = "height"
	FieldKomi                  = "komi"
	FieldRules                 = "rules"
	FieldHandicap              = "handicap"
	FieldFreeHandicapPlacement = "free_handicap_placement"
	FieldRanked                = "ranked"
	FieldInitialPlayer         = "initial_player"
	FieldInitialState          = "initial_state"
	FieldMoves                 = "moves"
	FieldOriginalSGF           = "original_sgf"
	FieldOGSImport             = "ogs_import"
)

// Поля внутри time_control
const (
	FieldMainTime        = "main_time"
	FieldPeriodTime      = "period_time"
	FieldPeriods         = "periods"
	FieldInitialTime     = "initial_time"
	FieldTimeIncrement   = "time_increment"
	FieldPerMove         = "per_move"
	FieldStonesPerPeriod = "stones_per_period"
	FieldTotalTime       = "total_time"
)

// Record - одна партия из экспорта OGS, разобранный JSON как есть
type Record struct {
	gjson.Result
}

// Parse проверяет, что data является JSON-объектом
func Parse(data []byte) (Record, error) {
	if !gjson.ValidBytes(data) {
		return Record{}, apperrors.ErrNotJSON
	}
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return Record{}, fmt.Errorf("%w: top-level value is %s", apperrors.ErrNotObject, res.Type)
	}
	return Record{Result: res}, nil
}

// IsSet сообщает, что значение присутствует и не равно null
func IsSet(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null
}

// Text возвращает значение так, как оно записано: строки без кавычек, числа в исходной записи
func Text(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Null:
		return ""
	default:
		return r.Raw
	}
}

// Truthy: пустые строки, ноль, false и null считаются ложью
func Truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.String:
		return r.Str != ""
	case gjson.Number:
		return r.Num != 0
	case gjson.JSON:
		if r.IsArray() {
			return len(r.Array()) > 0
		}
		return len(r.Map()) > 0
	default:
		return r.Exists()
	}
}

// Equal сравнивает идентификаторы: числа по значению, остальное по тексту
func Equal(a, b gjson.Result) bool {
	if !IsSet(a) || !IsSet(b) {
		return false
	}
	if a.Type == gjson.Number && b.Type == gjson.Number {
		return a.Num == b.Num
	}
	return Text(a) == Text(b)
}
