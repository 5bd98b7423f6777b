package db

import "context"

// RedisClient defines the operations the serving layer needs from Redis:
// plain key-value for the POI details cache plus a geo index for radius
// queries over the catalog.
type RedisClient interface {
	Set(key, value string) error
	SetWithTTL(key, value string, ttlSeconds int) error
	Get(key string) (string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error
	GetLocationsWithinRadius(key string, lat, lng, radius float64) ([]string, error)
	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
