// Package worker runs background address evaluations on River.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"emailrep/internal/config"
	"emailrep/internal/reputation"
	"emailrep/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the River client.
type Options struct {
	// MaxWorkers is the number of jobs worked concurrently.
	MaxWorkers int
	// EvaluationTimeout bounds a single job.
	EvaluationTimeout time.Duration
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:        cfg.Worker.MaxWorkers,
		EvaluationTimeout: cfg.EvaluationTimeout,
	}
}

// NewWorkers registers every worker of the service.
func NewWorkers(evaluator reputation.Evaluator, opts Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewEvaluateWorker(evaluator, opts.EvaluationTimeout))

	return workers
}

// Start creates a River client working the default queue and starts it. The
// client stops when Stop is called on it or ctx ends.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	evaluator reputation.Evaluator,
	opts Options) (*river.Client[pgx.Tx], error) {
	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: NewWorkers(evaluator, opts),
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
