package geo

import (
	"math"
	"sort"

	"truck-locator/models"
)

// EARTH_RADIUS_METERS is the mean Earth radius used for great-circle math.
const EARTH_RADIUS_METERS = 6371000.0

// Distance computes the haversine great-circle distance between two points,
// in meters.
func Distance(a, b models.LatLng) float64 {
	lat1 := degreesToRadians(a.Lat)
	lat2 := degreesToRadians(b.Lat)
	deltaLat := degreesToRadians(b.Lat - a.Lat)
	deltaLng := degreesToRadians(b.Lng - a.Lng)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EARTH_RADIUS_METERS * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// Rank returns the locations ordered ascending by distance from userPos,
// each annotated with DistanceFromUser. When known is false the input is
// returned in its original order with no annotation: sorting is a pure
// enhancement, never a requirement. The input slice is not modified.
func Rank(locations []models.Location, userPos models.LatLng, known bool) []models.Location {
	ranked := make([]models.Location, len(locations))
	copy(ranked, locations)

	if !known {
		for i := range ranked {
			ranked[i].DistanceFromUser = nil
		}
		return ranked
	}

	for i := range ranked {
		d := Distance(userPos, ranked[i].Position())
		ranked[i].DistanceFromUser = &d
	}

	// Stable: equal distances keep their catalog order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].DistanceFromUser < *ranked[j].DistanceFromUser
	})

	return ranked
}
