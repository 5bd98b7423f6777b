package geo

import (
	"math"
	"testing"

	"truck-locator/models"
)

func TestDecodePolyline_ReferenceSequence(t *testing.T) {
	// The reference example from the encoded-polyline format description.
	path, err := DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []models.LatLng{
		{Lat: 38.5, Lng: -120.2},
		{Lat: 40.7, Lng: -120.95},
		{Lat: 43.252, Lng: -126.453},
	}

	if len(path) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(path))
	}
	for i := range want {
		if math.Abs(path[i].Lat-want[i].Lat) > 1e-9 || math.Abs(path[i].Lng-want[i].Lng) > 1e-9 {
			t.Errorf("point %d: got (%f, %f), want (%f, %f)",
				i, path[i].Lat, path[i].Lng, want[i].Lat, want[i].Lng)
		}
	}
}

func TestDecodePolyline_Empty(t *testing.T) {
	path, err := DecodePolyline("")
	if err != nil {
		t.Fatalf("expected no error for empty polyline, got %v", err)
	}
	if len(path) != 0 {
		t.Errorf("expected empty path, got %d points", len(path))
	}
}

func TestDecodePolyline_Truncated(t *testing.T) {
	// A continuation bit with nothing after it.
	if _, err := DecodePolyline("_p~iF~ps|U_"); err == nil {
		t.Error("expected an error for truncated polyline, got nil")
	}
}

func TestDecodePolyline_InvalidCharacter(t *testing.T) {
	if _, err := DecodePolyline("\x1f"); err == nil {
		t.Error("expected an error for invalid character, got nil")
	}
}
