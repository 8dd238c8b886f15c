package entities

// Estimate is the agreed price for a job.
//
// Monetary representation: integer cents plus an ISO currency code. The
// original amount is fixed at creation; the current amount starts equal to it
// and only moves when the customer approves an EstimateChangeRequest.

type Estimate struct {
	OriginalAmountCents int64  `json:"original_amount_cents"`
	CurrentAmountCents  int64  `json:"current_amount_cents"`
	Currency            string `json:"currency"`
}

func NewEstimate(amountCents int64, currency string) Estimate {
	return Estimate{
		OriginalAmountCents: amountCents,
		CurrentAmountCents:  amountCents,
		Currency:            currency,
	}
}

// Exists reports whether the estimate was ever initialized. A job created
// through the dispatch flow always carries one; the zero value only shows up
// for rows written outside this service.
func (e Estimate) Exists() bool {
	return e.OriginalAmountCents > 0
}
