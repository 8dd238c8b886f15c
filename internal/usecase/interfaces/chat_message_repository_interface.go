package interfaces

import (
	"context"

	"fieldjobs/internal/domain/entities"
)

type IChatMessageRepository interface {
	Create(ctx context.Context, m entities.ChatMessage) (entities.ChatMessage, error)
	ListByJobID(ctx context.Context, jobID string, limit int) ([]entities.ChatMessage, error)
}
