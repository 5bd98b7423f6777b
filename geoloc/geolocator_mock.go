package geoloc

import (
	"log"

	"truck-locator/models"
)

// GeolocatorMock embeds mocked logic for the geolocation capability. It
// either returns a fixed position or a configured classified failure.
type GeolocatorMock struct {
	Position models.LatLng
	Err      error
}

// NewGeolocatorMock creates a mock geolocator pinned to the given position.
func NewGeolocatorMock(position models.LatLng) *GeolocatorMock {
	return &GeolocatorMock{Position: position}
}

// NewFailingGeolocatorMock creates a mock geolocator that always fails with
// the given classified error.
func NewFailingGeolocatorMock(err error) *GeolocatorMock {
	return &GeolocatorMock{Err: err}
}

func (g *GeolocatorMock) GetCurrentPosition() (models.LatLng, error) {
	if g.Err != nil {
		log.Printf("[GeolocatorMock] Returning configured failure: %v", g.Err)
		return models.LatLng{}, g.Err
	}
	return g.Position, nil
}
