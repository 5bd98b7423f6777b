package geoloc

import (
	"errors"

	"truck-locator/models"
)

// Classified geolocation failures. All of them are non-fatal: the app
// continues without distance sorting or a user marker.
var (
	ErrPermissionDenied    = errors.New("user denied the request for geolocation")
	ErrPositionUnavailable = errors.New("location information is unavailable")
	ErrTimeout             = errors.New("the request to get user location timed out")
	ErrUnknown             = errors.New("an unknown geolocation error occurred")
)

// Geolocator is the host-provided one-shot position capability.
type Geolocator interface {
	GetCurrentPosition() (models.LatLng, error)
}
