package request

// ProposeEstimateChangeRequest is the technician's mid-job price proposal.
type ProposeEstimateChangeRequest struct {
	NewAmountCents int64  `json:"new_amount_cents" binding:"required"`
	Reason         string `json:"reason" binding:"required"`
}

// RespondEstimateChangeRequest carries the customer's decision.
type RespondEstimateChangeRequest struct {
	RequestID string `json:"request_id" binding:"required"`
	Decision  string `json:"decision" binding:"required,oneof=approved declined"`
}
