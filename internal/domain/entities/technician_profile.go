package entities

import "time"

// VerificationStatus is the technician's vetting state, owned by an external
// back-office flow; matching only cares that it is not rejected.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// TechnicianProfile is the live availability projection read by matching.
//
// Storage model (DynamoDB):
//   - PK: user_id
//
// It is updated by the technician's own client (online flag, location) and
// read without locking: an eventually-consistent snapshot is fine for
// building a shortlist.

type TechnicianProfile struct {
	UserID             string             `json:"user_id"`
	Trades             []Trade            `json:"trades"`
	OnlineStatus       bool               `json:"online_status"`
	CurrentLat         *float64           `json:"current_lat,omitempty"`
	CurrentLng         *float64           `json:"current_lng,omitempty"`
	ServiceRadiusKm    float64            `json:"service_radius_km"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// HasLocation reports whether the profile carries a usable last-known
// position.
func (p TechnicianProfile) HasLocation() bool {
	return p.CurrentLat != nil && p.CurrentLng != nil
}

func (p TechnicianProfile) OffersTrade(t Trade) bool {
	for _, tr := range p.Trades {
		if tr == t {
			return true
		}
	}
	return false
}
