package mapsurface

import (
	"truck-locator/models"
)

// MarkerClickCallback is invoked by the surface with the id of the clicked
// truck marker.
type MarkerClickCallback func(id models.LocationID)

// MapSurface is the outward contract to the rendering collaborator. The
// core only calls it and receives click callbacks; marker iconography and
// rendering are the collaborator's problem.
type MapSurface interface {
	ShowMarkers(locations []models.Location)
	ClearMarkers()
	ShowPOIMarkers(pois []models.PointOfInterest)
	ClearPOIMarkers()
	PanTo(position models.LatLng, zoom int)
	ShowRoute(path []models.LatLng)
	ClearRoute()
	OnMarkerClick(callback MarkerClickCallback)
}
