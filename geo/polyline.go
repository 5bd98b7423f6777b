package geo

import (
	"fmt"

	"truck-locator/models"
)

// DecodePolyline decodes a Google encoded polyline into a coordinate
// sequence. This is the pure transform half of the routes capability;
// rendering the path is the map surface's job.
func DecodePolyline(encoded string) ([]models.LatLng, error) {
	var path []models.LatLng
	var lat, lng int64

	i := 0
	for i < len(encoded) {
		dLat, next, err := decodeVarint(encoded, i)
		if err != nil {
			return nil, err
		}
		lat += dLat
		i = next

		dLng, next, err := decodeVarint(encoded, i)
		if err != nil {
			return nil, err
		}
		lng += dLng
		i = next

		path = append(path, models.LatLng{
			Lat: float64(lat) / 1e5,
			Lng: float64(lng) / 1e5,
		})
	}

	return path, nil
}

// decodeVarint reads one zigzag-encoded delta starting at offset i and
// returns the delta plus the offset of the next chunk.
func decodeVarint(encoded string, i int) (int64, int, error) {
	var result int64
	var shift uint

	for {
		if i >= len(encoded) {
			return 0, 0, fmt.Errorf("truncated polyline at offset %d", i)
		}
		b := int64(encoded[i]) - 63
		if b < 0 {
			return 0, 0, fmt.Errorf("invalid polyline character %q at offset %d", encoded[i], i)
		}
		i++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}

	if result&1 != 0 {
		return ^(result >> 1), i, nil
	}
	return result >> 1, i, nil
}
