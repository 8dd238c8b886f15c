package interfaces

import "fieldjobs/internal/domain/entities"

// IPricingService quotes the flat-rate estimate for a trade. The current
// implementation is a static table; this seam is where dynamic pricing would
// plug in.

type IPricingService interface {
	FlatRateCents(trade entities.Trade) (int64, error)
}
