package models

// Wire types for the Places API (New), v1 surface. Field masks keep the
// payloads down to what the gateway actually consumes.

// PlaceLatLng is the provider's coordinate spelling (latitude/longitude,
// not lat/lng as in the catalog).
type PlaceLatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocalizedText is the provider's wrapper around translated strings.
type LocalizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

// Place is a single candidate from searchNearby or a place-details lookup.
type Place struct {
	ID                  string               `json:"id"`
	DisplayName         *LocalizedText       `json:"displayName,omitempty"`
	FormattedAddress    string               `json:"formattedAddress,omitempty"`
	Location            *PlaceLatLng         `json:"location,omitempty"`
	Types               []string             `json:"types,omitempty"`
	BusinessStatus      string               `json:"businessStatus,omitempty"`
	Rating              float64              `json:"rating,omitempty"`
	UserRatingCount     int                  `json:"userRatingCount,omitempty"`
	WebsiteURI          string               `json:"websiteUri,omitempty"`
	RegularOpeningHours *RegularOpeningHours `json:"regularOpeningHours,omitempty"`
}

// RegularOpeningHours carries the only opening-hours field the gateway
// asks for, the live open-now flag.
type RegularOpeningHours struct {
	OpenNow *bool `json:"openNow,omitempty"`
}

// SearchNearbyRequest is the POST body for places:searchNearby.
type SearchNearbyRequest struct {
	IncludedTypes       []string            `json:"includedTypes"`
	MaxResultCount      int                 `json:"maxResultCount"`
	LocationRestriction LocationRestriction `json:"locationRestriction"`
}

type LocationRestriction struct {
	Circle Circle `json:"circle"`
}

type Circle struct {
	Center PlaceLatLng `json:"center"`
	Radius float64     `json:"radius"`
}

// SearchNearbyResponse is the searchNearby response envelope.
type SearchNearbyResponse struct {
	Places []Place `json:"places"`
}
