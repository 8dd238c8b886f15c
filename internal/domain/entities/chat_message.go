package entities

import "time"

// ChatMessage is one in-job message between the customer and the technician.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Queried by job_id, ordered by created_at.

type ChatMessage struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	SenderID  string    `json:"sender_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
