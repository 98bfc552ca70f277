// Package worker runs the background side of the service on River: document
// fulfillment for paid orders and the periodic sweep of stale anonymous
// cases.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"landlordheaven/internal/config"
	"landlordheaven/internal/documents"
	"landlordheaven/pkg/logger"
	"landlordheaven/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// sweepInterval is how often the anonymous-case sweep runs.
const sweepInterval = 24 * time.Hour

// Options configure the worker pool. These settings are typically derived
// from application configuration.
type Options struct {
	// MaxWorkers limits how many jobs run concurrently on the default queue.
	MaxWorkers int
	// AnonRetention is how long anonymous cases are kept before the sweep
	// archives them.
	AnonRetention time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:    cfg.Worker.MaxWorkers,
		AnonRetention: cfg.Cases.AnonRetention,
	}
}

// Start registers the workers, schedules the periodic sweep and starts the
// River client on the given pool. The returned client must be stopped by the
// caller on shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	store storage.Storage,
	docs documents.Documents,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewFulfillmentWorker(store, docs))
	river.AddWorker(workers, NewSweepWorker(store, options.AnonRetention))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: workers,
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(sweepInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return SweepJobArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
		Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
