package routes

import (
	"fmt"

	"truck-locator/config"
	"truck-locator/models"
	"truck-locator/util"
)

// RoutesApiClientMock embeds mocked logic for the routes api client,
// serving the computeRoutes fixture under resources/.
type RoutesApiClientMock struct {
}

// NewRoutesApiClientMock creates a new instance of RoutesApiClientMock
func NewRoutesApiClientMock() *RoutesApiClientMock {
	return &RoutesApiClientMock{}
}

// SetCredentials is a no-op; the mock needs no API key.
func (c *RoutesApiClientMock) SetCredentials(apiKey string) {}

func (c *RoutesApiClientMock) ComputeRoute(origin, destination models.LatLng) (*models.Route, error) {
	response, err := util.ReadComputeRoutesResponseFromJSON(config.GetResourcePath(config.COMPUTE_ROUTES_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read compute routes response from json")
		return nil, err
	}

	return RouteFromResponse(response)
}
