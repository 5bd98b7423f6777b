package places

import (
	"truck-locator/models"
)

// AllowedPOITypes restricts nearby searches to the place types the product
// cares about.
var AllowedPOITypes = []string{
	"park", "tourist_attraction", "cafe", "restaurant", "shopping_mall",
}

// PlacesAPI defines the interface for the places-search capability.
// FindNearby is a filter, not a pass-through: only operational places with
// a location survive. FetchDetails is lazy, one place at a time, so the
// whole result set never pays the details cost up front.
type PlacesAPI interface {
	FindNearby(center models.LatLng, radiusMeters float64, maxResults int) ([]models.PointOfInterest, error)
	FetchDetails(placeID string) (*models.PlaceDetails, error)
	SetCredentials(apiKey string)
}
