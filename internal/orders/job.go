package orders

import (
	"landlordheaven/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// FulfillmentJobArgs contains the arguments for a fulfillment job submitted to
// River. The order ID is the unique key, so each order has at most one
// outstanding fulfillment job no matter how many webhook deliveries or fact
// edits try to enqueue one.
type FulfillmentJobArgs struct {
	// OrderID is the paid order whose documents should be generated.
	OrderID domain.OrderID `json:"orderId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// NewFulfillmentJobArgs builds the arguments for fulfilling the given order.
// It exists so that other services (for example the case service requeueing
// documents after a fact edit) can enqueue fulfillment without reaching into
// unexported fields.
func NewFulfillmentJobArgs(orderID domain.OrderID, maxAttempts int) FulfillmentJobArgs {
	return FulfillmentJobArgs{
		OrderID:     orderID,
		maxAttempts: maxAttempts,
	}
}

// Kind returns the River job kind used to register and dispatch the fulfillment worker.
func (args FulfillmentJobArgs) Kind() string { return "FulfillOrderJob" }

// InsertOpts returns the River options that control how the job is enqueued.
// Uniqueness spans the active states only, so an order can be fulfilled again
// after a fact edit even though an earlier job already completed.
func (args FulfillmentJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
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
