package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "northstar/internal/adapters/http"
	pg "northstar/internal/adapters/postgres"
	"northstar/internal/adapters/sqlite"
	"northstar/internal/adapters/webhook"
	"northstar/internal/config"
	"northstar/internal/logging"
	"northstar/internal/ports"
	candsvc "northstar/internal/services/candidates"
	discsvc "northstar/internal/services/discovery"
	lifesvc "northstar/internal/services/lifecycle"
	"northstar/internal/domain"
	"northstar/internal/workers/notifier"
	"northstar/internal/workers/scheduler"
	"northstar/internal/workers/sweeper"
)

type store interface {
	ports.RecordStore
	Migrate(ctx context.Context) error
	MigrationStatus(ctx context.Context) ([]*goose.MigrationStatus, error)
}

func openStore(ctx context.Context, cfg config.Config) (store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		return db, nil
	default:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return db, nil
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the API server, session sweeper and outcome notifier",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.Migrate(ctx); err != nil {
		return err
	}

	listeners := []ports.OutcomeListener{notifier.LogListener{Log: log.Named("outcomes")}}
	if cfg.OutcomeWebhookURL != "" {
		listeners = append(listeners, webhook.New(cfg.OutcomeWebhookURL))
	}
	// Deliveries get their own context so queued outcomes still go out while
	// the server drains.
	outcomes := notifier.New(log.Named("notifier"), cfg.NotifyWorkers, cfg.NotifyQueue, listeners...)
	outcomes.Start(context.WithoutCancel(ctx))
	defer outcomes.Close()

	candidates := candsvc.New(db, log.Named("candidates"))
	lifecycle := lifesvc.New(db, outcomes, log.Named("lifecycle"))
	discovery := discsvc.New(db, log.Named("discovery"), cfg.IngestConcurrency)

	workers := []func(context.Context){
		sweeper.New(db, cfg.SessionTimeout, cfg.SweepInterval, log.Named("sweeper")).Run,
	}
	if cfg.Schedule.Enabled {
		jobs, err := scheduledJobs(cfg.Schedule)
		if err != nil {
			return err
		}
		workers = append(workers, scheduler.New(discovery, jobs, cfg.Schedule.Interval, log.Named("scheduler")).Run)
		log.Info("discovery schedule enabled",
			zap.Int("sources", len(jobs)),
			zap.Duration("interval", cfg.Schedule.Interval))
	}
	workerCtx, stopWorkers := context.WithCancel(ctx)
	var wg sync.WaitGroup
	for _, run := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			run(workerCtx)
		}()
	}
	defer func() {
		stopWorkers()
		wg.Wait()
	}()

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           httpadapter.New(candidates, lifecycle, discovery, db, log.Named("http")).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info("listening",
		zap.String("addr", cfg.ListenAddr),
		zap.String("store", cfg.StoreDriver),
		zap.String("env", cfg.Env))

	select {
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}

func scheduledJobs(sched config.Schedule) ([]scheduler.Job, error) {
	jobs := make([]scheduler.Job, 0, len(sched.Sources))
	for _, src := range sched.Sources {
		days, err := src.Weekdays()
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, scheduler.Job{
			Config: domain.SessionConfig{
				Source:     src.Source,
				Queries:    src.Queries,
				Engines:    src.Engines,
				Parameters: src.Parameters,
				MaxResults: src.MaxResults,
			},
			Days: days,
		})
	}
	return jobs, nil
}
