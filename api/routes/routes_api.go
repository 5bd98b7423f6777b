package routes

import (
	"truck-locator/models"
)

// RoutesAPI defines the interface for the driving-routes capability. The
// result carries the decoded path; rendering it is the map surface's job.
type RoutesAPI interface {
	ComputeRoute(origin, destination models.LatLng) (*models.Route, error)
	SetCredentials(apiKey string)
}
