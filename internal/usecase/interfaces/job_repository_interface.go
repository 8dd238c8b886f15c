package interfaces

import (
	"context"
	"errors"

	"fieldjobs/internal/domain/entities"
)

// ErrConditionalCheckFailed signals that a conditional write lost its race:
// the row no longer satisfied the expected precondition. Usecases re-fetch
// and classify (already matched vs. moved on).
var ErrConditionalCheckFailed = errors.New("conditional check failed")

// IJobRepository abstracts DynamoDB persistence for Job.
//
// Every job mutation is a conditional write on the job row; that is the
// storage-level serialization for concurrent technician actions. Accept is
// the canonical case: "bind technician and set Matched only if still
// Requested and unbound" admits exactly one winner.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)

	// Accept performs the atomic first-acceptance-wins update. It fails
	// with ErrConditionalCheckFailed when the job is no longer Requested
	// or a technician is already bound.
	Accept(ctx context.Context, jobID, technicianID string) (entities.Job, error)

	// UpdateStatusIf moves the job from -> to, failing with
	// ErrConditionalCheckFailed when the stored status is not from.
	UpdateStatusIf(ctx context.Context, jobID string, from, to entities.JobStatus) (entities.Job, error)

	// SetCurrentAmount updates the embedded estimate's current amount.
	SetCurrentAmount(ctx context.Context, jobID string, amountCents int64) (entities.Job, error)

	// ListActiveByUser returns the non-terminal jobs the user participates
	// in as customer or technician.
	ListActiveByUser(ctx context.Context, userID string) ([]entities.Job, error)
}
