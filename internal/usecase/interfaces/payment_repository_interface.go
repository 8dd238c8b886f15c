package interfaces

import (
	"context"

	"fieldjobs/internal/domain/entities"
)

type IPaymentRepository interface {
	// Upsert creates or replaces the job's payment row; repeated intents
	// for the same job overwrite the provider reference.
	Upsert(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByJobID(ctx context.Context, jobID string) (entities.Payment, error)
}
