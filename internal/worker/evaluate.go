package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"emailrep/internal/reputation"
	"emailrep/pkg/logger"
	"emailrep/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// EvaluateWorker evaluates the address of a queued job. The verdict is stored
// by the evaluator, so a job produces no output of its own.
//
// Jobs are attempted once. An address that fails validation cancels the job;
// any other failure (usually the evaluation deadline) fails it.
type EvaluateWorker struct {
	river.WorkerDefaults[reputation.JobArgs]

	evaluator reputation.Evaluator
	timeout   time.Duration
}

// NewEvaluateWorker creates an EvaluateWorker. A positive timeout bounds each
// job; otherwise River's default applies.
func NewEvaluateWorker(evaluator reputation.Evaluator, timeout time.Duration) *EvaluateWorker {
	return &EvaluateWorker{
		evaluator: evaluator,
		timeout:   timeout,
	}
}

func (w *EvaluateWorker) Timeout(*river.Job[reputation.JobArgs]) time.Duration {
	return w.timeout
}

func (w *EvaluateWorker) Work(ctx context.Context, job *river.Job[reputation.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("address", job.Args.Address))

	v, err := w.evaluator.Evaluate(ctx, job.Args.Address)
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			logger.Warn(ctx, "cancelling job for invalid address", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in evaluating address", zap.Error(err))

		return fmt.Errorf("could not evaluate address: %w", err)
	}

	logger.Info(ctx, "address evaluated in background",
		zap.Int("score", v.Reputation.Score),
		zap.String("label", string(v.Reputation.Text)))

	return nil
}
