package response

import (
	"time"

	"fieldjobs/internal/domain/entities"
)

type ChangeRequestResponse struct {
	ID               string     `json:"id"`
	JobID            string     `json:"job_id"`
	ProposedByUserID string     `json:"proposed_by_user_id"`
	OldAmountCents   int64      `json:"old_amount_cents"`
	NewAmountCents   int64      `json:"new_amount_cents"`
	Reason           string     `json:"reason"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	DecidedAt        *time.Time `json:"decided_at,omitempty"`
}

func FromChangeRequest(cr entities.EstimateChangeRequest) ChangeRequestResponse {
	return ChangeRequestResponse{
		ID:               cr.ID,
		JobID:            cr.JobID,
		ProposedByUserID: cr.ProposedByUserID,
		OldAmountCents:   cr.OldAmountCents,
		NewAmountCents:   cr.NewAmountCents,
		Reason:           cr.Reason,
		Status:           string(cr.Status),
		CreatedAt:        cr.CreatedAt,
		DecidedAt:        cr.DecidedAt,
	}
}

// ChangeDecisionResponse pairs the decided request with the job it resumed.
type ChangeDecisionResponse struct {
	Request ChangeRequestResponse `json:"request"`
	Job     JobResponse           `json:"job"`
}
