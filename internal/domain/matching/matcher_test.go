package matching

import (
	"fmt"
	"math"
	"testing"
)

// Offsets around 1 degree of latitude ~= 111 km; 0.09 deg ~= 10 km.
const (
	baseLat = 40.7128
	baseLng = -74.0060
)

func offsetLat(km float64) float64 {
	return baseLat + km/111.0
}

func TestHaversineKm(t *testing.T) {
	t.Run("zero distance", func(t *testing.T) {
		if d := HaversineKm(baseLat, baseLng, baseLat, baseLng); d != 0 {
			t.Fatalf("expected 0, got %f", d)
		}
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		d := HaversineKm(baseLat, baseLng, baseLat+1, baseLng)
		if math.Abs(d-111.19) > 0.5 {
			t.Fatalf("expected ~111.19km, got %f", d)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		a := HaversineKm(baseLat, baseLng, baseLat+2, baseLng+2)
		b := HaversineKm(baseLat+2, baseLng+2, baseLat, baseLng)
		if math.Abs(a-b) > 1e-9 {
			t.Fatalf("expected symmetry, got %f vs %f", a, b)
		}
	})
}

func TestShortlist(t *testing.T) {
	t.Run("orders by ascending distance", func(t *testing.T) {
		candidates := []Candidate{
			{UserID: "far", Lat: offsetLat(20), Lng: baseLng, RadiusKm: 25},
			{UserID: "near", Lat: offsetLat(10), Lng: baseLng, RadiusKm: 15},
		}
		got := Shortlist(baseLat, baseLng, candidates, 0)
		if len(got) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(got))
		}
		if got[0].UserID != "near" || got[1].UserID != "far" {
			t.Fatalf("unexpected order: %+v", got)
		}
		if got[0].DistanceKm >= got[1].DistanceKm {
			t.Fatalf("distances not ascending: %+v", got)
		}
	})

	t.Run("excludes candidate outside its own radius", func(t *testing.T) {
		candidates := []Candidate{
			{UserID: "covers", Lat: offsetLat(10), Lng: baseLng, RadiusKm: 15},
			{UserID: "too-small-radius", Lat: offsetLat(10), Lng: baseLng, RadiusKm: 5},
		}
		got := Shortlist(baseLat, baseLng, candidates, 0)
		if len(got) != 1 || got[0].UserID != "covers" {
			t.Fatalf("expected only the covering candidate, got %+v", got)
		}
	})

	t.Run("caps at limit", func(t *testing.T) {
		var candidates []Candidate
		for i := 0; i < 40; i++ {
			candidates = append(candidates, Candidate{
				UserID:   fmt.Sprintf("tech-%02d", i),
				Lat:      offsetLat(float64(i) / 10),
				Lng:      baseLng,
				RadiusKm: 50,
			})
		}
		got := Shortlist(baseLat, baseLng, candidates, 0)
		if len(got) != DefaultShortlistSize {
			t.Fatalf("expected %d matches, got %d", DefaultShortlistSize, len(got))
		}
	})

	t.Run("ties broken by user id", func(t *testing.T) {
		candidates := []Candidate{
			{UserID: "b", Lat: baseLat, Lng: baseLng, RadiusKm: 10},
			{UserID: "a", Lat: baseLat, Lng: baseLng, RadiusKm: 10},
			{UserID: "c", Lat: baseLat, Lng: baseLng, RadiusKm: 10},
		}
		got := Shortlist(baseLat, baseLng, candidates, 0)
		if got[0].UserID != "a" || got[1].UserID != "b" || got[2].UserID != "c" {
			t.Fatalf("expected deterministic tie-break, got %+v", got)
		}
	})

	t.Run("empty pool", func(t *testing.T) {
		if got := Shortlist(baseLat, baseLng, nil, 0); len(got) != 0 {
			t.Fatalf("expected no matches, got %+v", got)
		}
	})
}
