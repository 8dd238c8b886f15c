package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"fieldjobs/internal/auth"
	"fieldjobs/internal/domain/entities"
	"fieldjobs/internal/realtime"
	"fieldjobs/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidChatMessage = errors.New("invalid chat message")

const maxChatMessageLen = 2000

type IChatUseCase interface {
	Send(ctx context.Context, caller auth.Identity, jobID, message string) (entities.ChatMessage, error)
}

type ChatUseCase struct {
	jobs      interfaces.IJobRepository
	chat      interfaces.IChatMessageRepository
	publisher interfaces.IEventPublisher
	notifier  interfaces.INotifier
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(
	jobs interfaces.IJobRepository,
	chat interfaces.IChatMessageRepository,
	publisher interfaces.IEventPublisher,
	notifier interfaces.INotifier,
) *ChatUseCase {
	return &ChatUseCase{jobs: jobs, chat: chat, publisher: publisher, notifier: notifier}
}

func (u *ChatUseCase) Send(ctx context.Context, caller auth.Identity, jobID, message string) (entities.ChatMessage, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.ChatMessage{}, ErrInvalidJobID
	}
	if message == "" || len(message) > maxChatMessageLen {
		return entities.ChatMessage{}, ErrInvalidChatMessage
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.ChatMessage{}, err
	}
	if job.ID == "" {
		return entities.ChatMessage{}, ErrJobNotFound
	}
	if err := requireRelationship(job, caller.ID, relationshipParticipant); err != nil {
		return entities.ChatMessage{}, err
	}

	msg := entities.ChatMessage{
		ID:        uuid.NewString(),
		JobID:     jobID,
		SenderID:  caller.ID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.chat.Create(ctx, msg)
	if err != nil {
		return entities.ChatMessage{}, err
	}

	u.publisher.PublishToJob(jobID, realtime.NewChatEvent(jobID, created.ID))

	if other := otherParty(job, caller.ID); other != "" {
		u.notifier.Notify(other,
			"New message",
			truncate(message, 80),
			map[string]string{"jobId": jobID, "type": "chat"},
		)
	}

	return created, nil
}
