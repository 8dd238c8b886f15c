// Package pricing holds the flat-rate estimate table.
//
// MVP pricing: one flat amount per trade, in cents. A later phase may factor
// in scheduling, distance, time-of-day or surge; the usecases only depend on
// the IPricingService seam so the table can be swapped without touching them.
package pricing

import (
	"errors"

	"fieldjobs/internal/domain/entities"
)

var ErrUnknownTrade = errors.New("unknown trade")

var baseCents = map[entities.Trade]int64{
	entities.TradePlumber:     14900,
	entities.TradeElectrician: 16900,
	entities.TradeHVAC:        18900,
	entities.TradeCleaning:    12900,
	entities.TradePool:        15900,
}

// FlatRateTable is the static pricing collaborator.
type FlatRateTable struct{}

func NewFlatRateTable() *FlatRateTable { return &FlatRateTable{} }

func (FlatRateTable) FlatRateCents(trade entities.Trade) (int64, error) {
	cents, ok := baseCents[trade]
	if !ok {
		return 0, ErrUnknownTrade
	}
	return cents, nil
}
