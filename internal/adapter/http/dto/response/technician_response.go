package response

import (
	"fieldjobs/internal/domain/entities"
	"fieldjobs/internal/usecase"
)

type TechnicianProfileResponse struct {
	UserID             string   `json:"user_id"`
	Trades             []string `json:"trades"`
	OnlineStatus       bool     `json:"online_status"`
	CurrentLat         *float64 `json:"current_lat,omitempty"`
	CurrentLng         *float64 `json:"current_lng,omitempty"`
	ServiceRadiusKm    float64  `json:"service_radius_km"`
	VerificationStatus string   `json:"verification_status"`
}

func FromTechnicianProfile(p entities.TechnicianProfile) TechnicianProfileResponse {
	trades := make([]string, 0, len(p.Trades))
	for _, t := range p.Trades {
		trades = append(trades, string(t))
	}
	return TechnicianProfileResponse{
		UserID:             p.UserID,
		Trades:             trades,
		OnlineStatus:       p.OnlineStatus,
		CurrentLat:         p.CurrentLat,
		CurrentLng:         p.CurrentLng,
		ServiceRadiusKm:    p.ServiceRadiusKm,
		VerificationStatus: string(p.VerificationStatus),
	}
}

type NearbyTechnicianResponse struct {
	TechnicianProfileResponse
	DistanceKm float64 `json:"distance_km"`
}

func FromNearbyTechnicians(items []usecase.NearbyTechnician) []NearbyTechnicianResponse {
	out := make([]NearbyTechnicianResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NearbyTechnicianResponse{
			TechnicianProfileResponse: FromTechnicianProfile(it.Profile),
			DistanceKm:                it.DistanceKm,
		})
	}
	return out
}
