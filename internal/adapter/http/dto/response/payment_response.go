package response

import (
	"time"

	"fieldjobs/internal/domain/entities"
)

type PaymentResponse struct {
	JobID             string    `json:"job_id"`
	AmountCents       int64     `json:"amount_cents"`
	Currency          string    `json:"currency"`
	Status            string    `json:"status"`
	Method            string    `json:"method"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	ProviderStatus    string    `json:"provider_status,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		JobID:             p.JobID,
		AmountCents:       p.AmountCents,
		Currency:          p.Currency,
		Status:            string(p.Status),
		Method:            string(p.Method),
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
