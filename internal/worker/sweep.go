package worker

import (
	"context"
	"fmt"
	"time"

	"landlordheaven/pkg/logger"
	"landlordheaven/pkg/storage"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// SweepJobArgs marks a run of the anonymous-case sweep. The job carries no
// arguments; the retention window is worker configuration.
type SweepJobArgs struct{}

// Kind returns the River job kind used to register and dispatch the sweep worker.
func (SweepJobArgs) Kind() string { return "SweepAnonymousCasesJob" }

// InsertOpts keeps at most one sweep in the queue at a time.
func (SweepJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
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

// SweepWorker is the periodic River worker that archives anonymous cases no
// session has touched within the retention window and drops their stale
// previews. Paid material is never swept: orders pin their cases to accounts
// long before retention runs out.
type SweepWorker struct {
	river.WorkerDefaults[SweepJobArgs]

	storage   storage.Storage
	retention time.Duration
}

// NewSweepWorker constructs a SweepWorker with the given retention window.
func NewSweepWorker(store storage.Storage, retention time.Duration) *SweepWorker {
	return &SweepWorker{
		storage:   store,
		retention: retention,
	}
}

// Work archives the stale anonymous cases and soft-deletes their previews.
// The stored PDFs are left in the object store; previews carry no signed URLs
// once their rows are gone.
func (w *SweepWorker) Work(ctx context.Context, job *river.Job[SweepJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))
	before := time.Now().Add(-w.retention)

	caseIDs, err := w.storage.ArchiveStaleAnonymousCases(ctx, before)
	if err != nil {
		return fmt.Errorf("could not archive stale anonymous cases: %w", err)
	}

	for _, caseID := range caseIDs {
		if _, err := w.storage.DeleteCasePreviews(ctx, caseID, ""); err != nil {
			return fmt.Errorf("could not delete previews of case %s: %w", caseID, err)
		}
	}

	if len(caseIDs) > 0 {
		logger.Info(ctx, "archived stale anonymous cases", zap.Int("cases", len(caseIDs)))
	}

	return nil
}
