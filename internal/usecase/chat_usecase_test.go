package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fieldjobs/internal/domain/entities"
	mock_interfaces "fieldjobs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestChatUseCase_Send(t *testing.T) {
	job := entities.Job{
		ID:           "job-1",
		CustomerID:   customer.ID,
		TechnicianID: technician.ID,
		Status:       entities.JobStatusWorking,
	}

	t.Run("empty message", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil, nil, nil)
		_, err := uc.Send(context.Background(), customer, "job-1", "")
		if !errors.Is(err, ErrInvalidChatMessage) {
			t.Fatalf("expected ErrInvalidChatMessage, got %v", err)
		}
	})

	t.Run("oversized message", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil, nil, nil)
		_, err := uc.Send(context.Background(), customer, "job-1", strings.Repeat("x", 2001))
		if !errors.Is(err, ErrInvalidChatMessage) {
			t.Fatalf("expected ErrInvalidChatMessage, got %v", err)
		}
	})

	t.Run("outsider is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewChatUseCase(jobs, nil, nil, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)

		outsider := customer
		outsider.ID = "someone-else"
		_, err := uc.Send(context.Background(), outsider, "job-1", "hello")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("persists, publishes and notifies the other party", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		chat := mock_interfaces.NewMockIChatMessageRepository(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewChatUseCase(jobs, chat, publisher, notifier)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		chat.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ChatMessage{})).DoAndReturn(
			func(_ context.Context, m entities.ChatMessage) (entities.ChatMessage, error) {
				if m.ID == "" || m.JobID != "job-1" || m.SenderID != customer.ID {
					t.Fatalf("unexpected message: %+v", m)
				}
				return m, nil
			},
		)
		publisher.EXPECT().PublishToJob("job-1", gomock.Any())
		notifier.EXPECT().Notify(technician.ID, "New message", gomock.Any(), gomock.Any())

		msg, err := uc.Send(context.Background(), customer, "job-1", "is the part covered by the estimate?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg.Message != "is the part covered by the estimate?" {
			t.Fatalf("unexpected message body: %q", msg.Message)
		}
	})
}
