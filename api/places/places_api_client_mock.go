package places

import (
	"fmt"

	"truck-locator/config"
	"truck-locator/models"
	"truck-locator/util"
)

// PlacesApiClientMock embeds mocked logic for the places api client. It
// serves the JSON fixtures under resources/ instead of calling out.
type PlacesApiClientMock struct {
}

// NewPlacesApiClientMock creates a new instance of PlacesApiClientMock
func NewPlacesApiClientMock() *PlacesApiClientMock {
	return &PlacesApiClientMock{}
}

// SetCredentials is a no-op; the mock needs no API key.
func (c *PlacesApiClientMock) SetCredentials(apiKey string) {}

// FindNearby serves the search fixture, run through the same operational
// filter as the real client.
func (c *PlacesApiClientMock) FindNearby(center models.LatLng, radiusMeters float64, maxResults int) ([]models.PointOfInterest, error) {
	response, err := util.ReadSearchNearbyResponseFromJSON(config.GetResourcePath(config.SEARCH_NEARBY_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read search nearby response from json")
		return nil, err
	}

	pois := FilterOperational(response.Places)
	if maxResults > 0 && len(pois) > maxResults {
		pois = pois[:maxResults]
	}
	return pois, nil
}

// FetchDetails serves the place-details fixture regardless of the id asked
// for, keeping the id the caller used.
func (c *PlacesApiClientMock) FetchDetails(placeID string) (*models.PlaceDetails, error) {
	place, err := util.ReadPlaceFromJSON(config.GetResourcePath(config.PLACE_DETAILS_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read place details response from json")
		return nil, err
	}

	details := detailsFromPlace(*place)
	details.ID = placeID
	return details, nil
}
