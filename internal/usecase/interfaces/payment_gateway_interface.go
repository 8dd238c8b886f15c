package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway is the narrow seam to the external payment processor.
// Creating an intent is a stateless call: the gateway holds no job state.

type IPaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
