package places

import (
	"fmt"

	"truck-locator/api"
	"truck-locator/models"
)

const searchNearbyFieldMask = "places.id,places.displayName,places.location,places.types,places.businessStatus"
const placeDetailsFieldMask = "id,displayName,formattedAddress,rating,userRatingCount,websiteUri,regularOpeningHours"

// PlacesApiClient embeds the common HTTPClient
type PlacesApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties

	apiKey string
}

// NewPlacesApiClient creates a new instance of PlacesApiClient
func NewPlacesApiClient(httpClient *api.HTTPClient) *PlacesApiClient {
	return &PlacesApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials stores the API key credential sent on every call.
func (c *PlacesApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

func (c *PlacesApiClient) headers(fieldMask string) map[string]string {
	return map[string]string{
		"X-Goog-Api-Key":   c.apiKey,
		"X-Goog-FieldMask": fieldMask,
	}
}

// FindNearby runs a searchNearby restricted to the allowed POI types and
// keeps only operational candidates that carry a location.
func (c *PlacesApiClient) FindNearby(center models.LatLng, radiusMeters float64, maxResults int) ([]models.PointOfInterest, error) {
	if c.HTTPClient == nil || c.apiKey == "" {
		return nil, fmt.Errorf("places: %w", api.ErrServiceUnavailable)
	}

	request := models.SearchNearbyRequest{
		IncludedTypes:  AllowedPOITypes,
		MaxResultCount: maxResults,
		LocationRestriction: models.LocationRestriction{
			Circle: models.Circle{
				Center: models.PlaceLatLng{Latitude: center.Lat, Longitude: center.Lng},
				Radius: radiusMeters,
			},
		},
	}

	var response models.SearchNearbyResponse
	err := c.Request("POST", "/places:searchNearby", c.headers(searchNearbyFieldMask), request, &response)
	if err != nil {
		return nil, err
	}

	return FilterOperational(response.Places), nil
}

// FetchDetails retrieves the extended fields for a single place.
func (c *PlacesApiClient) FetchDetails(placeID string) (*models.PlaceDetails, error) {
	if c.HTTPClient == nil || c.apiKey == "" {
		return nil, fmt.Errorf("places: %w", api.ErrServiceUnavailable)
	}

	var place models.Place
	err := c.Request("GET", "/places/"+placeID, c.headers(placeDetailsFieldMask), nil, &place)
	if err != nil {
		return nil, err
	}

	return detailsFromPlace(place), nil
}

// FilterOperational normalizes raw candidates, dropping any that is not
// OPERATIONAL or has no location. The gateway is a filter, not a
// pass-through.
func FilterOperational(candidates []models.Place) []models.PointOfInterest {
	pois := make([]models.PointOfInterest, 0, len(candidates))
	for _, place := range candidates {
		if place.BusinessStatus != models.BusinessStatusOperational || place.Location == nil {
			continue
		}
		poi := models.PointOfInterest{
			ID:             place.ID,
			Location:       models.LatLng{Lat: place.Location.Latitude, Lng: place.Location.Longitude},
			Types:          place.Types,
			BusinessStatus: place.BusinessStatus,
		}
		if place.DisplayName != nil {
			poi.DisplayName = place.DisplayName.Text
		}
		pois = append(pois, poi)
	}
	return pois
}

func detailsFromPlace(place models.Place) *models.PlaceDetails {
	details := &models.PlaceDetails{
		ID:               place.ID,
		FormattedAddress: place.FormattedAddress,
		Rating:           place.Rating,
		UserRatingCount:  place.UserRatingCount,
		WebsiteURI:       place.WebsiteURI,
	}
	if place.DisplayName != nil {
		details.DisplayName = place.DisplayName.Text
	}
	if place.RegularOpeningHours != nil {
		details.OpenNow = place.RegularOpeningHours.OpenNow
	}
	return details
}
