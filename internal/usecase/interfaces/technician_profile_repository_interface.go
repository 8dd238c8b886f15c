package interfaces

import (
	"context"

	"fieldjobs/internal/domain/entities"
)

// ITechnicianProfileRepository abstracts the availability projection.
//
// Matching reads it without locking; the technician's own client writes the
// online flag and location. Profile setup (trades, radius, verification) is
// owned by an external back office.

type ITechnicianProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.TechnicianProfile, error)
	SetOnline(ctx context.Context, userID string, online bool) (entities.TechnicianProfile, error)
	SetLocation(ctx context.Context, userID string, lat, lng float64) (entities.TechnicianProfile, error)

	// ListOnlineByTrade returns online, not-rejected technicians offering
	// the trade with a known location.
	ListOnlineByTrade(ctx context.Context, trade entities.Trade) ([]entities.TechnicianProfile, error)

	// ListOnline is ListOnlineByTrade without the trade filter, for the
	// nearby browse endpoint.
	ListOnline(ctx context.Context) ([]entities.TechnicianProfile, error)
}
