package redis

import (
	"encoding/json"
	"fmt"

	"truck-locator/db"
	"truck-locator/models"
)

const TRUCKS_GEO_KEY_V1 = "trucks_geo_v1"
const TRUCKS_GEO_MEMBER_FORMAT_V1 = "trucks_geo_member_v1:%s"

// POI_DETAILS_KEY_FORMAT caches lazily fetched place details per place id.
const POI_DETAILS_KEY_FORMAT = "poi_details_v1:%s"

// POI_DETAILS_TTL_SECONDS bounds how stale a cached details entry can get.
const POI_DETAILS_TTL_SECONDS = 3600

// RedisTruckDAO serves the catalog out of a Redis geo index and caches POI
// details. The in-memory catalog store stays authoritative; this is the
// radius-query serving layer kept in sync by the refresher.
type RedisTruckDAO struct {
	client db.RedisClient
}

// NewRedisTruckDAO initializes a RedisTruckDAO with the Redis client.
func NewRedisTruckDAO(client db.RedisClient) *RedisTruckDAO {
	return &RedisTruckDAO{client: client}
}

// UpsertTruck stores the location as a geo member with its JSON body.
func (dao *RedisTruckDAO) UpsertTruck(loc models.Location) error {
	ctx := dao.client.GetContext()
	memberKey := fmt.Sprintf(TRUCKS_GEO_MEMBER_FORMAT_V1, loc.ID)
	return dao.client.AddLocationWithJSON(ctx, TRUCKS_GEO_KEY_V1, memberKey, loc.Lat, loc.Lng, loc)
}

// GetNearbyTrucks retrieves trucks within a given radius (in meters).
func (dao *RedisTruckDAO) GetNearbyTrucks(lat, lng, radius float64) ([]models.Location, error) {
	trucksJSON, err := dao.client.GetLocationsWithinRadius(TRUCKS_GEO_KEY_V1, lat, lng, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisTruckDAO] failed to get trucks: %v", err)
	}

	trucks := make([]models.Location, len(trucksJSON))
	for i, truckJSON := range trucksJSON {
		if err := json.Unmarshal([]byte(truckJSON), &trucks[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal truck JSON: %v", err)
		}
	}
	return trucks, nil
}

// SetPoiDetails caches the details for a place by its id.
func (dao *RedisTruckDAO) SetPoiDetails(details *models.PlaceDetails) error {
	key := fmt.Sprintf(POI_DETAILS_KEY_FORMAT, details.ID)
	data, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to marshal details for place %s: %w", details.ID, err)
	}
	if err := dao.client.SetWithTTL(key, string(data), POI_DETAILS_TTL_SECONDS); err != nil {
		return fmt.Errorf("failed to set poi details in redis: %w", err)
	}
	return nil
}

// GetPoiDetails retrieves cached details for a place id. A cache miss is
// (nil, nil), not an error.
func (dao *RedisTruckDAO) GetPoiDetails(placeID string) (*models.PlaceDetails, error) {
	key := fmt.Sprintf(POI_DETAILS_KEY_FORMAT, placeID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, nil
	}
	var details models.PlaceDetails
	if err := json.Unmarshal([]byte(str), &details); err != nil {
		return nil, fmt.Errorf("failed to unmarshal poi details JSON: %w", err)
	}
	return &details, nil
}

// DeletePoiDetails drops the cached details for a place id.
func (dao *RedisTruckDAO) DeletePoiDetails(placeID string) error {
	key := fmt.Sprintf(POI_DETAILS_KEY_FORMAT, placeID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete poi details key %s: %w", key, err)
	}
	return nil
}
