package scan

import (
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for an email scan job submitted to River.
// The email is the unique key so concurrent scan requests collapse into one
// job per address.
type JobArgs struct {
	// Email is the normalized address to scan. It is marked as unique so
	// River can enforce one job per email according to InsertOpts.UniqueOpts.
	Email string `json:"email" river:"unique"`
	// UserID is the owning user.
	UserID uuid.UUID `json:"userId"`
	// EmailID is the monitored-email record the scan belongs to.
	EmailID uuid.UUID `json:"emailId"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod defines the lookback window during which a job with the
	// same email is considered a duplicate across the specified states.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the scan worker.
func (args JobArgs) Kind() string { return "ScanEmailJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints to prevent
// duplicate jobs for the same email across multiple job states.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// make sure we only have one job per email in any state
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
