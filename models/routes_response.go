package models

// Wire types for the Routes API v2 computeRoutes call.

// ComputeRoutesRequest is the POST body for directions/v2:computeRoutes.
type ComputeRoutesRequest struct {
	Origin      RouteWaypoint `json:"origin"`
	Destination RouteWaypoint `json:"destination"`
	TravelMode  string        `json:"travelMode"`
}

type RouteWaypoint struct {
	Location RouteLocation `json:"location"`
}

type RouteLocation struct {
	LatLng PlaceLatLng `json:"latLng"`
}

// ComputeRoutesResponse is the computeRoutes response envelope.
type ComputeRoutesResponse struct {
	Routes []RouteLeg `json:"routes"`
}

// RouteLeg is one computed route alternative.
type RouteLeg struct {
	Duration       string        `json:"duration"` // e.g. "165s"
	DistanceMeters int           `json:"distanceMeters"`
	Polyline       RoutePolyline `json:"polyline"`
}

type RoutePolyline struct {
	EncodedPolyline string `json:"encodedPolyline"`
}

// Route is the normalized result handed to callers: the decoded path plus
// the aggregate metrics. Rendering the path belongs to the map surface.
type Route struct {
	Path            []LatLng `json:"path"`
	DistanceMeters  int      `json:"distance_meters"`
	DurationSeconds int      `json:"duration_seconds"`
}
