package models

// BusinessStatusOperational is the provider's marker for a place that is
// open for business. Anything else is dropped by the gateway.
const BusinessStatusOperational = "OPERATIONAL"

// PointOfInterest is a normalized nearby place kept by the POI gateway.
// Results are ephemeral: fetched per selection and discarded on the next one.
type PointOfInterest struct {
	ID             string   `json:"id"`
	DisplayName    string   `json:"display_name"`
	Location       LatLng   `json:"location"`
	Types          []string `json:"types"`
	BusinessStatus string   `json:"business_status"`
}

// PlaceDetails holds the extended fields fetched lazily for a single POI.
type PlaceDetails struct {
	ID               string   `json:"id"`
	DisplayName      string   `json:"display_name"`
	FormattedAddress string   `json:"formatted_address"`
	Rating           float64  `json:"rating,omitempty"`
	UserRatingCount  int      `json:"user_rating_count,omitempty"`
	WebsiteURI       string   `json:"website_uri,omitempty"`
	OpenNow          *bool    `json:"open_now,omitempty"`
}
