package usecase

import (
	"context"
	"errors"

	"fieldjobs/internal/auth"
	"fieldjobs/internal/domain/entities"
	"fieldjobs/internal/domain/matching"
	"fieldjobs/internal/realtime"
	"fieldjobs/internal/usecase/interfaces"
)

var ErrInvalidTechnicianInput = errors.New("invalid technician input")

const (
	defaultNearbyRadiusKm = 20.0
	defaultNearbyLimit    = 50
	maxNearbyLimit        = 200
)

// NearbyQuery is the customer-facing technician browse.
type NearbyQuery struct {
	Lat      float64
	Lng      float64
	Trade    entities.Trade // optional
	RadiusKm float64        // optional, caller-supplied search radius
	Limit    int
}

// NearbyTechnician is a browse result with its computed distance.
type NearbyTechnician struct {
	Profile    entities.TechnicianProfile
	DistanceKm float64
}

// ITechnicianUseCase manages the live availability projection: the online
// flag and location a technician's client reports, and the nearby browse
// built on the same distance pipeline as dispatch.

type ITechnicianUseCase interface {
	SetOnline(ctx context.Context, caller auth.Identity, online bool) (entities.TechnicianProfile, error)
	SetLocation(ctx context.Context, caller auth.Identity, lat, lng float64) (entities.TechnicianProfile, error)
	Nearby(ctx context.Context, q NearbyQuery) ([]NearbyTechnician, error)
}

type TechnicianUseCase struct {
	techs     interfaces.ITechnicianProfileRepository
	publisher interfaces.IEventPublisher
}

var _ ITechnicianUseCase = (*TechnicianUseCase)(nil)

func NewTechnicianUseCase(techs interfaces.ITechnicianProfileRepository, publisher interfaces.IEventPublisher) *TechnicianUseCase {
	return &TechnicianUseCase{techs: techs, publisher: publisher}
}

func (u *TechnicianUseCase) SetOnline(ctx context.Context, caller auth.Identity, online bool) (entities.TechnicianProfile, error) {
	if !entities.HasTechnicianAccess(caller.Role) {
		return entities.TechnicianProfile{}, ErrForbidden
	}
	return u.techs.SetOnline(ctx, caller.ID, online)
}

func (u *TechnicianUseCase) SetLocation(ctx context.Context, caller auth.Identity, lat, lng float64) (entities.TechnicianProfile, error) {
	if !entities.HasTechnicianAccess(caller.Role) {
		return entities.TechnicianProfile{}, ErrForbidden
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return entities.TechnicianProfile{}, ErrInvalidTechnicianInput
	}

	profile, err := u.techs.SetLocation(ctx, caller.ID, lat, lng)
	if err != nil {
		return entities.TechnicianProfile{}, err
	}

	u.publisher.PublishToUser(caller.ID, realtime.NewTechLocationEvent(caller.ID, lat, lng))

	return profile, nil
}

func (u *TechnicianUseCase) Nearby(ctx context.Context, q NearbyQuery) ([]NearbyTechnician, error) {
	radius := q.RadiusKm
	if radius <= 0 {
		radius = defaultNearbyRadiusKm
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultNearbyLimit
	}
	if limit > maxNearbyLimit {
		limit = maxNearbyLimit
	}

	var (
		profiles []entities.TechnicianProfile
		err      error
	)
	if q.Trade != "" {
		if !q.Trade.Valid() {
			return nil, ErrInvalidTechnicianInput
		}
		profiles, err = u.techs.ListOnlineByTrade(ctx, q.Trade)
	} else {
		profiles, err = u.techs.ListOnline(ctx)
	}
	if err != nil {
		return nil, err
	}

	byUser := make(map[string]entities.TechnicianProfile, len(profiles))
	candidates := make([]matching.Candidate, 0, len(profiles))
	for _, p := range profiles {
		if !p.HasLocation() {
			continue
		}
		byUser[p.UserID] = p
		candidates = append(candidates, matching.Candidate{
			UserID: p.UserID,
			Lat:    *p.CurrentLat,
			Lng:    *p.CurrentLng,
			// Browse uses the caller's search radius, unlike dispatch
			// where the technician's own radius governs.
			RadiusKm: radius,
		})
	}

	matches := matching.Shortlist(q.Lat, q.Lng, candidates, limit)
	out := make([]NearbyTechnician, 0, len(matches))
	for _, m := range matches {
		out = append(out, NearbyTechnician{Profile: byUser[m.UserID], DistanceKm: m.DistanceKm})
	}
	return out, nil
}
