package routes

import (
	"fmt"
	"strconv"
	"strings"

	"truck-locator/api"
	"truck-locator/geo"
	"truck-locator/models"
)

const computeRoutesFieldMask = "routes.duration,routes.distanceMeters,routes.polyline.encodedPolyline"

// RoutesApiClient embeds the common HTTPClient
type RoutesApiClient struct {
	*api.HTTPClient

	apiKey string
}

// NewRoutesApiClient creates a new instance of RoutesApiClient
func NewRoutesApiClient(httpClient *api.HTTPClient) *RoutesApiClient {
	return &RoutesApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials stores the API key credential sent on every call.
func (c *RoutesApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// ComputeRoute asks for a driving route between two points and returns the
// first alternative with its polyline decoded.
func (c *RoutesApiClient) ComputeRoute(origin, destination models.LatLng) (*models.Route, error) {
	if c.HTTPClient == nil || c.apiKey == "" {
		return nil, fmt.Errorf("routes: %w", api.ErrServiceUnavailable)
	}

	request := models.ComputeRoutesRequest{
		Origin:      waypoint(origin),
		Destination: waypoint(destination),
		TravelMode:  "DRIVE",
	}

	headers := map[string]string{
		"X-Goog-Api-Key":   c.apiKey,
		"X-Goog-FieldMask": computeRoutesFieldMask,
	}

	var response models.ComputeRoutesResponse
	err := c.Request("POST", ":computeRoutes", headers, request, &response)
	if err != nil {
		return nil, err
	}

	return RouteFromResponse(&response)
}

// RouteFromResponse normalizes a computeRoutes payload into a Route,
// decoding the encoded polyline into a coordinate path.
func RouteFromResponse(response *models.ComputeRoutesResponse) (*models.Route, error) {
	if len(response.Routes) == 0 {
		return nil, fmt.Errorf("routes: provider returned no route")
	}
	leg := response.Routes[0]

	path, err := geo.DecodePolyline(leg.Polyline.EncodedPolyline)
	if err != nil {
		return nil, fmt.Errorf("routes: %w", err)
	}

	return &models.Route{
		Path:            path,
		DistanceMeters:  leg.DistanceMeters,
		DurationSeconds: parseDurationSeconds(leg.Duration),
	}, nil
}

// parseDurationSeconds reads the provider's "165s" duration spelling. An
// unparseable value degrades to zero rather than failing the route.
func parseDurationSeconds(raw string) int {
	trimmed := strings.TrimSuffix(raw, "s")
	seconds, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0
	}
	return seconds
}

func waypoint(p models.LatLng) models.RouteWaypoint {
	return models.RouteWaypoint{
		Location: models.RouteLocation{
			LatLng: models.PlaceLatLng{Latitude: p.Lat, Longitude: p.Lng},
		},
	}
}
