package interfaces

import (
	"context"
	"time"

	"fieldjobs/internal/domain/entities"
)

// IChangeRequestRepository abstracts DynamoDB persistence for
// EstimateChangeRequest.

type IChangeRequestRepository interface {
	Create(ctx context.Context, r entities.EstimateChangeRequest) (entities.EstimateChangeRequest, error)
	GetByID(ctx context.Context, id string) (entities.EstimateChangeRequest, error)

	// ListByJobID returns the job's requests ordered by creation time.
	ListByJobID(ctx context.Context, jobID string) ([]entities.EstimateChangeRequest, error)

	// Decide resolves a request, failing with ErrConditionalCheckFailed
	// when it is no longer Pending.
	Decide(ctx context.Context, id string, status entities.ChangeRequestStatus, decidedAt time.Time) (entities.EstimateChangeRequest, error)
}
