package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// LatLng is a WGS84 coordinate pair in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the pair is inside the latitude/longitude ranges.
func (p LatLng) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// LocationID is a stable catalog identifier. The catalog JSON carries it
// either as a string or as an integer; both canonicalize to the string form.
type LocationID string

func (id *LocationID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = LocationID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = LocationID(n.String())
		return nil
	}
	return fmt.Errorf("location id must be a string or a number, got %s", string(data))
}

// Location represents a single food-truck site from the catalog.
type Location struct {
	ID          LocationID `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Description string     `json:"description,omitempty"`
	Lat         float64    `json:"lat"`
	Lng         float64    `json:"lng"`

	// OpeningHours maps a canonical English weekday name (Sunday..Saturday)
	// to either "closed" or an "HH:MM-HH:MM" window. An absent day means closed.
	OpeningHours map[string]string `json:"opening_hours,omitempty"`

	// DistanceFromUser is derived, never persisted. Nil when the user
	// position is unknown.
	DistanceFromUser *float64 `json:"distance_from_user,omitempty"`
}

// Position returns the location's coordinates as a LatLng.
func (l *Location) Position() LatLng {
	return LatLng{Lat: l.Lat, Lng: l.Lng}
}

func (l *Location) ToString() string {
	return fmt.Sprintf("Location(id=%s, name=%s, lat=%s, lng=%s)",
		l.ID, l.Name,
		strconv.FormatFloat(l.Lat, 'f', 6, 64),
		strconv.FormatFloat(l.Lng, 'f', 6, 64))
}
