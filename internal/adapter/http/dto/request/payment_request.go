package request

type PaymentIntentRequest struct {
	Method string `json:"method" binding:"required,oneof=ApplePay Card"`
}
