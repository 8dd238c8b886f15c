package entities

import "time"

// PaymentStatus tracks the payment-intent outcome for a completed job.
type PaymentStatus string

const (
	PaymentStatusRequiresConfirmation PaymentStatus = "RequiresConfirmation"
	PaymentStatusApproved             PaymentStatus = "Approved"
	PaymentStatusDenied               PaymentStatus = "Denied"
)

// PaymentMethod is the client-selected payment instrument.
type PaymentMethod string

const (
	PaymentMethodApplePay PaymentMethod = "ApplePay"
	PaymentMethodCard     PaymentMethod = "Card"
)

// Payment is the payment-intent record for a job. Intent creation itself is a
// stateless call into the external payment processor; this row only keeps the
// provider reference for reconciliation.
//
// Storage model (DynamoDB):
//   - PK: job_id (one payment per job, upserted on repeated intents)

type Payment struct {
	JobID             string        `json:"job_id"`
	AmountCents       int64         `json:"amount_cents"`
	Currency          string        `json:"currency"`
	Status            PaymentStatus `json:"status"`
	Method            PaymentMethod `json:"method"`
	ProviderPaymentID string        `json:"provider_payment_id,omitempty"`
	ProviderStatus    string        `json:"provider_status,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
