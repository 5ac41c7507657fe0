package reputation

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs asks a worker to evaluate one address in the background.
type JobArgs struct {
	// Address is unique so an address queued twice within uniqueJobPeriod is
	// evaluated once.
	Address string `json:"address" river:"unique"`

	uniqueJobPeriod time.Duration
}

func (args JobArgs) Kind() string { return "EvaluateAddressJob" }

// InsertOpts allows a single attempt and deduplicates by address.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
