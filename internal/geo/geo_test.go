package geo_test

import (
	"math"
	"strings"
	"testing"

	"camp-portal/internal/domain"
	"camp-portal/internal/geo"
)

func TestDistanceKnownPair(t *testing.T) {
	// Washington D.C. to New York City is roughly 328 km great-circle.
	dc := domain.Coordinate{Lat: 38.9072, Lon: -77.0369}
	nyc := domain.Coordinate{Lat: 40.7128, Lon: -74.0060}

	d := geo.Distance(dc, nyc)
	if math.Abs(d-328000) > 5000 {
		t.Fatalf("expected ~328km, got %.0fm", d)
	}
}

func TestDistanceZeroForSamePoint(t *testing.T) {
	p := domain.Coordinate{Lat: 38.9072, Lon: -77.0369}
	if d := geo.Distance(p, p); d != 0 {
		t.Fatalf("expected zero distance, got %f", d)
	}
}

func TestDirectionOctants(t *testing.T) {
	origin := domain.Coordinate{Lat: 10, Lon: 10}
	cases := []struct {
		to   domain.Coordinate
		want string
	}{
		{domain.Coordinate{Lat: 11, Lon: 11}, "North-East"},
		{domain.Coordinate{Lat: 11, Lon: 9}, "North-West"},
		{domain.Coordinate{Lat: 9, Lon: 11}, "South-East"},
		{domain.Coordinate{Lat: 9, Lon: 9}, "South-West"},
		{domain.Coordinate{Lat: 10, Lon: 11}, "East"},
		{domain.Coordinate{Lat: 10, Lon: 9}, "West"},
		{domain.Coordinate{Lat: 11, Lon: 10}, "North"},
		{domain.Coordinate{Lat: 9, Lon: 10}, "South"},
		{domain.Coordinate{Lat: 10, Lon: 10}, "Right here!"},
	}
	for _, c := range cases {
		if got := geo.Direction(origin, c.to); got != c.want {
			t.Fatalf("direction to %+v: expected %s, got %s", c.to, c.want, got)
		}
	}
}

func TestBuildReportFormatting(t *testing.T) {
	user := domain.Coordinate{Lat: 38.9000, Lon: -77.0300}
	arena := domain.Coordinate{Lat: 38.9072, Lon: -77.0369}

	report := geo.BuildReport(user, arena, "Arena")
	if report.Position != "Lat: 38.9000, Lon: -77.0300" {
		t.Fatalf("unexpected position line: %s", report.Position)
	}
	if !strings.HasPrefix(report.Distance, "Distance to Arena: ") || !strings.HasSuffix(report.Distance, " km") {
		t.Fatalf("unexpected distance line: %s", report.Distance)
	}
	if report.Direction != "Direction: North-West" {
		t.Fatalf("unexpected direction line: %s", report.Direction)
	}
}

func TestErrorMessages(t *testing.T) {
	cases := map[int]string{
		geo.CodePermissionDenied:    "Location access denied. Please enable it in your browser settings.",
		geo.CodePositionUnavailable: "Location information is unavailable.",
		geo.CodeTimeout:             "The request to get user location timed out.",
		42:                          "Unable to retrieve your location.",
	}
	for code, want := range cases {
		if got := geo.ErrorMessage(code); got != want {
			t.Fatalf("code %d: expected %q, got %q", code, want, got)
		}
	}
}
