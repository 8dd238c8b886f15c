package entities

import "time"

// ChangeRequestStatus is the decision state of an EstimateChangeRequest.
type ChangeRequestStatus string

const (
	ChangeRequestPending  ChangeRequestStatus = "Pending"
	ChangeRequestApproved ChangeRequestStatus = "Approved"
	ChangeRequestDeclined ChangeRequestStatus = "Declined"
)

// EstimateChangeRequest records a technician's mid-job price proposal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Queried by job_id for the per-job history and the pending check.
//
// Invariant: at most one Pending request exists per job; the job sits in
// AwaitingEstimateApproval while one is open.

type EstimateChangeRequest struct {
	ID               string              `json:"id"`
	JobID            string              `json:"job_id"`
	ProposedByUserID string              `json:"proposed_by_user_id"`
	OldAmountCents   int64               `json:"old_amount_cents"`
	NewAmountCents   int64               `json:"new_amount_cents"`
	Reason           string              `json:"reason"`
	Status           ChangeRequestStatus `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
	DecidedAt        *time.Time          `json:"decided_at,omitempty"`
}
