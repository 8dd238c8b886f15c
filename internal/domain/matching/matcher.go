// Package matching ranks available technicians for a service request by
// great-circle proximity. It is pure: callers pass a fresh snapshot of the
// candidate pool on every invocation and nothing is cached here.
package matching

import (
	"math"
	"sort"
)

// DefaultShortlistSize caps how many technicians are offered a new job.
const DefaultShortlistSize = 25

const earthRadiusKm = 6371.0

// Candidate is one online technician considered for a request.
type Candidate struct {
	UserID   string
	Lat      float64
	Lng      float64
	RadiusKm float64
}

// Match is a shortlisted candidate with its computed distance.
type Match struct {
	UserID     string
	DistanceKm float64
}

// HaversineKm returns the great-circle distance in kilometers between two
// points.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }

// Shortlist filters candidates to those whose own service radius covers the
// request location and returns up to limit of them ordered by ascending
// distance. The radius check is asymmetric: the technician's declared radius
// governs, not the requester's. Ties are broken by user id so the result is
// deterministic for a given snapshot.
func Shortlist(lat, lng float64, candidates []Candidate, limit int) []Match {
	if limit <= 0 {
		limit = DefaultShortlistSize
	}

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		dist := HaversineKm(lat, lng, c.Lat, c.Lng)
		if dist > c.RadiusKm {
			continue
		}
		matches = append(matches, Match{UserID: c.UserID, DistanceKm: dist})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].DistanceKm != matches[j].DistanceKm {
			return matches[i].DistanceKm < matches[j].DistanceKm
		}
		return matches[i].UserID < matches[j].UserID
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
