package translate

import (
	"time"

	"go.uber.org/zap"

	"github.com/lightvector/ogstosgf/internal/domain/ogs"
	"github.com/lightvector/ogstosgf/internal/domain/sgf"
)

const dateLayout = "2006-01-02"

// GameInfo is what the converter learned about the game besides the document itself.
type GameInfo struct {
	GameID    string
	BlackName string
	WhiteName string
	Date      time.Time // zero when unknown
}

// Result pairs the produced document with the problems found while producing it.
type Result struct {
	SGF       string
	Document  *sgf.SGF // nil when Original
	Succeeded bool
	Warnings  []string
	Info      GameInfo
	Original  bool
}

// Translator turns OGS records into SGF. It keeps no per-record state and is safe for concurrent use.
type Translator struct {
	opts Options
	log  *zap.SugaredLogger
}

func NewTranslator(opts Options, log *zap.SugaredLogger) *Translator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Translator{opts: opts, log: log}
}

// TranslateBytes parses data and translates it. Only unparseable input yields an error.
func (tr *Translator) TranslateBytes(data []byte) (Result, error) {
	rec, err := ogs.Parse(data)
	if err != nil {
		return Result{}, err
	}
	return tr.Translate(rec), nil
}

func (tr *Translator) Translate(rec ogs.Record) Result {
	t := newTranslation(tr.opts, tr.log, rec)

	t.translateMetadata()
	if original, ok := t.originalSGF(); ok {
		return t.result(original, nil)
	}

	t.translateTimeControl()
	t.translateOutcome()
	t.translateSetup()
	t.translateInitialPlayer()
	t.translatePlacement()
	t.translateMoves()

	return t.result(sgf.Serialize(t.doc)+"\n", t.doc)
}

func (t *translation) result(text string, doc *sgf.SGF) Result {
	return Result{
		SGF:       text,
		Document:  doc,
		Succeeded: len(t.warnings) == 0,
		Warnings:  t.warnings,
		Info:      t.info,
		Original:  doc == nil,
	}
}
