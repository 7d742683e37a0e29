package batch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lightvector/ogstosgf/internal/domain/conversion"
	"github.com/lightvector/ogstosgf/internal/domain/ogs"
	"github.com/lightvector/ogstosgf/internal/usecase/translate"
)

const defaultProgressEvery = 10000

type RecordStore interface {
	Walk(ctx context.Context, root string, fn func(path string) error) error
	ReadRecord(path string) (ogs.Record, error)
	WriteSGF(path, text string) error
	OutputPath(path string) string
}

// Sink receives every conversion once its file is written.
type Sink interface {
	Save(ctx context.Context, conv conversion.Conversion) error
}

type Settings struct {
	Workers       int
	Verbose       bool
	ProgressEvery int64 // 0 means every 10000 files
}

// Summary counts what happened during one Run.
type Summary struct {
	RunID     string
	Processed int64
	Failed    int64 // written with warnings
	Errors    int64 // not written
}

type Converter struct {
	store      RecordStore
	translator *translate.Translator
	sinks      []Sink
	log        *zap.SugaredLogger
	settings   Settings
	now        func() time.Time
}

func NewConverter(store RecordStore, translator *translate.Translator, log *zap.SugaredLogger, settings Settings, sinks ...Sink) *Converter {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if settings.Workers <= 0 {
		settings.Workers = 1
	}
	if settings.ProgressEvery <= 0 {
		settings.ProgressEvery = defaultProgressEvery
	}
	return &Converter{
		store:      store,
		translator: translator,
		sinks:      sinks,
		log:        log,
		settings:   settings,
		now:        time.Now,
	}
}

type counters struct {
	processed *atomic.Int64
	failed    *atomic.Int64
	errors    *atomic.Int64
}

// Run converts every record found under dirs. An unreadable root is logged and skipped;
// the only error returned is the context's.
func (c *Converter) Run(ctx context.Context, dirs []string) (Summary, error) {
	runID := uuid.NewString()
	log := c.log.With("run_id", runID)

	cnt := counters{
		processed: atomic.NewInt64(0),
		failed:    atomic.NewInt64(0),
		errors:    atomic.NewInt64(0),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.settings.Workers)

	for _, dir := range dirs {
		err := c.store.Walk(gctx, dir, func(path string) error {
			g.Go(func() error {
				c.convertFile(gctx, log, runID, path, cnt)
				return nil
			})
			return nil
		})
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			log.Errorw("failed to walk directory", "dir", dir, "error", err)
		}
	}
	_ = g.Wait()

	summary := Summary{
		RunID:     runID,
		Processed: cnt.processed.Load(),
		Failed:    cnt.failed.Load(),
		Errors:    cnt.errors.Load(),
	}
	log.Infof("Processed %d files", summary.Processed)
	if err := ctx.Err(); err != nil {
		log.Warnw("run interrupted", "error", err)
		return summary, err
	}
	log.Info("Done")
	return summary, nil
}

func (c *Converter) convertFile(ctx context.Context, log *zap.SugaredLogger, runID, path string, cnt counters) {
	if ctx.Err() != nil {
		return
	}
	defer func() {
		if n := cnt.processed.Inc(); n%c.settings.ProgressEvery == 0 {
			log.Infof("Processed %d files", n)
		}
	}()

	out := c.store.OutputPath(path)
	if c.settings.Verbose {
		log.Infof("%s -> %s", path, out)
	}

	rec, err := c.store.ReadRecord(path)
	if err != nil {
		cnt.errors.Inc()
		log.Errorw("failed to read record", "path", path, "error", err)
		return
	}

	res := c.translator.Translate(rec)

	if err := c.store.WriteSGF(out, res.SGF); err != nil {
		cnt.errors.Inc()
		log.Errorw("failed to write sgf", "path", out, "error", err)
		return
	}

	if !res.Succeeded {
		cnt.failed.Inc()
		log.Warnw("conversion reported problems", "path", path, "warnings", len(res.Warnings))
	}

	conv := c.conversion(runID, path, out, res)
	for _, sink := range c.sinks {
		if err := sink.Save(ctx, conv); err != nil {
			log.Errorw("failed to store conversion", "path", path, "error", err)
		}
	}
}

func (c *Converter) conversion(runID, path, out string, res translate.Result) conversion.Conversion {
	conv := conversion.Conversion{
		RunID:       runID,
		GameID:      res.Info.GameID,
		SourcePath:  path,
		OutputPath:  out,
		SGF:         res.SGF,
		Succeeded:   res.Succeeded,
		Warnings:    res.Warnings,
		BlackName:   res.Info.BlackName,
		WhiteName:   res.Info.WhiteName,
		Original:    res.Original,
		ConvertedAt: c.now().UTC(),
	}
	if !res.Info.Date.IsZero() {
		date := res.Info.Date
		conv.Date = &date
	}
	return conv
}
