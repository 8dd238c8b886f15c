package response

import (
	"time"

	"fieldjobs/internal/domain/entities"
)

type ChatMessageResponse struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	SenderID  string    `json:"sender_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func FromChatMessage(m entities.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID,
		JobID:     m.JobID,
		SenderID:  m.SenderID,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
