package response

import (
	"time"

	"fieldjobs/internal/domain/entities"
	"fieldjobs/internal/usecase"
)

type EstimateResponse struct {
	OriginalAmountCents int64  `json:"original_amount_cents"`
	CurrentAmountCents  int64  `json:"current_amount_cents"`
	Currency            string `json:"currency"`
}

type JobResponse struct {
	ID           string           `json:"id"`
	CustomerID   string           `json:"customer_id"`
	TechnicianID string           `json:"technician_id,omitempty"`
	Trade        string           `json:"trade"`
	Description  string           `json:"description"`
	Photos       []string         `json:"photos,omitempty"`
	Address      string           `json:"address"`
	Lat          float64          `json:"lat"`
	Lng          float64          `json:"lng"`
	Status       string           `json:"status"`
	IsASAP       bool             `json:"is_asap"`
	ScheduledAt  *time.Time       `json:"scheduled_at,omitempty"`
	Estimate     EstimateResponse `json:"estimate"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:           j.ID,
		CustomerID:   j.CustomerID,
		TechnicianID: j.TechnicianID,
		Trade:        string(j.Trade),
		Description:  j.Description,
		Photos:       j.Photos,
		Address:      j.Address,
		Lat:          j.Lat,
		Lng:          j.Lng,
		Status:       string(j.Status),
		IsASAP:       j.IsASAP,
		ScheduledAt:  j.ScheduledAt,
		Estimate: EstimateResponse{
			OriginalAmountCents: j.Estimate.OriginalAmountCents,
			CurrentAmountCents:  j.Estimate.CurrentAmountCents,
			Currency:            j.Estimate.Currency,
		},
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}

type JobDetailResponse struct {
	JobResponse
	ChangeRequests []ChangeRequestResponse `json:"change_requests"`
	ChatMessages   []ChatMessageResponse   `json:"chat_messages"`
}

func FromJobDetail(d usecase.JobDetail) JobDetailResponse {
	out := JobDetailResponse{
		JobResponse:    FromJob(d.Job),
		ChangeRequests: make([]ChangeRequestResponse, 0, len(d.ChangeRequests)),
		ChatMessages:   make([]ChatMessageResponse, 0, len(d.ChatMessages)),
	}
	for _, cr := range d.ChangeRequests {
		out.ChangeRequests = append(out.ChangeRequests, FromChangeRequest(cr))
	}
	for _, m := range d.ChatMessages {
		out.ChatMessages = append(out.ChatMessages, FromChatMessage(m))
	}
	return out
}

type QuoteResponse struct {
	Trade       string `json:"trade"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}
