package entities

import "time"

// Job is a single service request tracked through its lifecycle.
//
// Storage model (DynamoDB):
//   - PK: id
//   - The estimate is embedded in the job item: a job and its estimate form
//     one consistency unit and every mutation of either goes through a
//     conditional update on the job row.
//
// Invariants:
//   - TechnicianID is set if and only if the status has progressed past
//     Requested; once set it never changes.
//   - Estimate.CurrentAmountCents only advances via an approved
//     EstimateChangeRequest.

type Job struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	TechnicianID string    `json:"technician_id,omitempty"`
	Trade        Trade     `json:"trade"`
	Description  string    `json:"description"`
	Photos       []string  `json:"photos,omitempty"`
	Address      string    `json:"address"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Status       JobStatus `json:"status"`

	IsASAP      bool       `json:"is_asap"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`

	Estimate Estimate `json:"estimate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsParticipant reports whether userID is the job's customer or its bound
// technician.
func (j Job) IsParticipant(userID string) bool {
	return j.CustomerID == userID || (j.TechnicianID != "" && j.TechnicianID == userID)
}
