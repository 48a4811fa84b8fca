// Package geo provides great-circle distance math for candidate filtering
// and scoring. Pure functions, no dependencies.
package geo

import "math"

const earthRadiusKm = 6371.0

// DistanceKm calculates the distance in kilometers between two geographic
// points using the haversine formula. Symmetric, and zero for identical
// coordinates. Inputs are degrees.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	deltaLat := toRadians(lat2 - lat1)
	deltaLon := toRadians(lon2 - lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(toRadians(lat1))*
			math.Cos(toRadians(lat2))*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
