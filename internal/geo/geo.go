// Package geo computes the camp-map readout: great-circle distance and a
// coarse compass direction from the camper's position to a camp location.
package geo

import (
	"fmt"
	"math"

	"camp-portal/internal/domain"
)

// EarthRadius is the mean Earth radius in metres used by the haversine formula.
const EarthRadius = 6371e3

// Browser geolocation error codes.
const (
	CodePermissionDenied    = 1
	CodePositionUnavailable = 2
	CodeTimeout             = 3
)

// Report is the rendered camp-map readout.
type Report struct {
	Position  string `json:"position"`
	Distance  string `json:"distance"`
	Direction string `json:"direction"`
}

// Distance returns the haversine distance between two coordinates in metres.
func Distance(from, to domain.Coordinate) float64 {
	phi1 := from.Lat * math.Pi / 180
	phi2 := to.Lat * math.Pi / 180
	dPhi := (to.Lat - from.Lat) * math.Pi / 180
	dLambda := (to.Lon - from.Lon) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadius * c
}

// Direction returns the coarse 8-way compass direction from one coordinate to
// another, or "Right here!" when they coincide.
func Direction(from, to domain.Coordinate) string {
	switch {
	case to.Lat > from.Lat && to.Lon > from.Lon:
		return "North-East"
	case to.Lat > from.Lat && to.Lon < from.Lon:
		return "North-West"
	case to.Lat < from.Lat && to.Lon > from.Lon:
		return "South-East"
	case to.Lat < from.Lat && to.Lon < from.Lon:
		return "South-West"
	case to.Lat == from.Lat && to.Lon > from.Lon:
		return "East"
	case to.Lat == from.Lat && to.Lon < from.Lon:
		return "West"
	case to.Lat > from.Lat:
		return "North"
	case to.Lat < from.Lat:
		return "South"
	}
	return "Right here!"
}

// BuildReport renders the readout for a camper heading to a named location.
func BuildReport(user, target domain.Coordinate, targetName string) Report {
	return Report{
		Position:  fmt.Sprintf("Lat: %.4f, Lon: %.4f", user.Lat, user.Lon),
		Distance:  fmt.Sprintf("Distance to %s: %.2f km", targetName, Distance(user, target)/1000),
		Direction: fmt.Sprintf("Direction: %s", Direction(user, target)),
	}
}

// ErrorMessage maps a browser geolocation error code to its user-facing line.
func ErrorMessage(code int) string {
	switch code {
	case CodePermissionDenied:
		return "Location access denied. Please enable it in your browser settings."
	case CodePositionUnavailable:
		return "Location information is unavailable."
	case CodeTimeout:
		return "The request to get user location timed out."
	}
	return "Unable to retrieve your location."
}
