package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lightvector/ogstosgf/internal/adapters"
	"github.com/lightvector/ogstosgf/internal/bootstrap"
	"github.com/lightvector/ogstosgf/internal/delivery/convert"
	"github.com/lightvector/ogstosgf/internal/repository"
	"github.com/lightvector/ogstosgf/internal/usecase/batch"
	"github.com/lightvector/ogstosgf/internal/usecase/translate"
)

type app struct {
	cfgPath string
	cfg     *bootstrap.Config
	log     *zap.SugaredLogger
}

type dataBaseAdapters struct {
	redisAdapter *adapters.AdapterRedis
	mongoAdapter *adapters.AdapterMongo
	cache        *repository.SGFCache
	archive      *repository.ConversionArchive
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	defaults := translate.DefaultOptions()

	root := &cobra.Command{
		Use:               "ogstosgf [flags] DIR...",
		Short:             "Convert OGS JSON game records into SGF files",
		Args:              cobra.MinimumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runConvert,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", bootstrap.DefaultConfigPath, "config file (.env, yaml, json, toml)")
	pf.String("log-level", "info", "debug, info, warn or error")
	pf.String("draw-result", defaults.DrawResult, "RE value for drawn games (Draw or Jigo)")
	pf.String("unfinished-result", defaults.UnfinishedResult, "RE value for unfinished games (? or Unfinished)")
	pf.Bool("log-missing-ranks", defaults.LogMissingRanks, "warn when a player rank is missing")

	f := root.Flags()
	f.BoolP("verbose", "v", false, "log every converted file")
	f.Int("workers", 0, "number of files converted in parallel (default: number of CPUs)")
	f.Bool("follow-links", true, "follow symbolic links to directories")

	root.AddCommand(newServeCmd(a))
	return root
}

func newServeCmd(a *app) *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve conversions over HTTP",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
	serve.Flags().String("port", "8080", "listen port")
	return serve
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := bootstrap.Setup(a.cfgPath, cmd.Flags())
	if err != nil {
		return err
	}
	log, err := bootstrap.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	return nil
}

func (a *app) runConvert(cmd *cobra.Command, dirs []string) error {
	defer func() { _ = a.log.Sync() }()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	go handleShutdown(ctx, cancel, a.log)

	dbs, err := initDatabaseAdapters(ctx, a.log, a.cfg)
	if err != nil {
		return err
	}
	defer dbs.close(context.Background())

	tr := translate.NewTranslator(a.cfg.TranslateOptions(), a.log)
	store := repository.NewFileStore(a.log, a.cfg.FollowLinks)
	converter := batch.NewConverter(store, tr, a.log, batch.Settings{
		Workers: a.cfg.Workers,
		Verbose: a.cfg.Verbose,
	}, dbs.batchSinks()...)

	summary, err := converter.Run(ctx, dirs)
	a.log.Infow("summary",
		"run_id", summary.RunID,
		"processed", summary.Processed,
		"failed", summary.Failed,
		"errors", summary.Errors,
	)
	return err
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	defer func() { _ = a.log.Sync() }()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	go handleShutdown(ctx, cancel, a.log)

	dbs, err := initDatabaseAdapters(ctx, a.log, a.cfg)
	if err != nil {
		return err
	}
	defer dbs.close(context.Background())

	var cache convert.SGFStore
	if dbs.cache != nil {
		cache = dbs.cache
	}
	var archive convert.ConversionFinder
	if dbs.archive != nil {
		archive = dbs.archive
	}
	var sinks []convert.Sink
	for _, s := range dbs.batchSinks() {
		sinks = append(sinks, s)
	}

	tr := translate.NewTranslator(a.cfg.TranslateOptions(), a.log)
	handler := convert.NewConvertHandler(a.log, tr, cache, archive, sinks...)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	handler.Routes(r)

	srv := &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Infof("Server is running on port %s", a.cfg.ServerPort)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			a.log.Errorw("Failed to start server", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}

// initDatabaseAdapters connects only the stores that are configured.
func initDatabaseAdapters(ctx context.Context, log *zap.SugaredLogger, cfg *bootstrap.Config) (*dataBaseAdapters, error) {
	dbs := &dataBaseAdapters{}

	if cfg.RedisUrl != "" {
		dbs.redisAdapter = adapters.NewAdapterRedis(cfg)
		if err := dbs.redisAdapter.Init(ctx); err != nil {
			log.Errorw("failed to init redis", "error", err)
			dbs.close(ctx)
			return nil, err
		}
		dbs.cache = repository.NewSGFCache(dbs.redisAdapter.GetClient(), cfg.RedisTTL)
		log.Infow("sgf cache enabled", "ttl", cfg.RedisTTL)
	}

	if cfg.MongoUri != "" {
		dbs.mongoAdapter = adapters.NewAdapterMongo(cfg)
		if err := dbs.mongoAdapter.Init(ctx); err != nil {
			log.Errorw("failed to init mongodb", "error", err)
			dbs.close(ctx)
			return nil, err
		}
		dbs.archive = repository.NewConversionArchive(dbs.mongoAdapter.Database)
		log.Infow("conversion archive enabled", "database", cfg.MongoDatabase)
	}

	return dbs, nil
}

func (d *dataBaseAdapters) batchSinks() []batch.Sink {
	var sinks []batch.Sink
	if d.cache != nil {
		sinks = append(sinks, d.cache)
	}
	if d.archive != nil {
		sinks = append(sinks, d.archive)
	}
	return sinks
}

func (d *dataBaseAdapters) close(ctx context.Context) {
	if d.mongoAdapter != nil {
		_ = d.mongoAdapter.Close(ctx)
	}
	if d.redisAdapter != nil {
		_ = d.redisAdapter.Close(ctx)
	}
}

func handleShutdown(ctx context.Context, cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	select {
	case <-sigs:
		log.Info("Received shutdown signal")
		cancelFunc()
	case <-ctx.Done():
	}
}
