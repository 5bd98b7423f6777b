package db

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"truck-locator/geo"
	"truck-locator/models"
)

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	data    map[string]string            // Key-value store
	geoData map[string]map[string]GeoLoc // Geolocation data per geo key
	mu      sync.RWMutex                 // Mutex for thread-safe operations
	context context.Context
}

// GeoLoc represents a geolocation with latitude and longitude.
type GeoLoc struct {
	Latitude  float64
	Longitude float64
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		geoData: make(map[string]map[string]GeoLoc),
		context: ctx,
	}
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// SetWithTTL stores a key-value pair; the mock ignores the expiry.
func (m *MockRedisClient) SetWithTTL(key, value string, ttlSeconds int) error {
	return m.Set(key, value)
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value, nil
}

// AddLocationWithJSON adds a geo member with its JSON body in the mock Redis.
func (m *MockRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %v", err)
	}

	if _, exists := m.geoData[geoKey]; !exists {
		m.geoData[geoKey] = make(map[string]GeoLoc)
	}
	m.geoData[geoKey][memberKey] = GeoLoc{Latitude: lat, Longitude: lng}

	m.data[memberKey] = string(jsonData)
	return nil
}

// GetLocationsWithinRadius returns the JSON bodies of members within radius
// meters, using the same great-circle distance as the ranking code.
func (m *MockRedisClient) GetLocationsWithinRadius(key string, lat, lng, radius float64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	geoMembers, exists := m.geoData[key]
	if !exists {
		return nil, nil
	}

	center := models.LatLng{Lat: lat, Lng: lng}
	var results []string
	for memberKey, loc := range geoMembers {
		if geo.Distance(center, models.LatLng{Lat: loc.Latitude, Lng: loc.Longitude}) > radius {
			continue
		}
		if data, exists := m.data[memberKey]; exists {
			results = append(results, data)
		}
	}
	return results, nil
}

// GetContext returns the mock Redis client's context.
func (m *MockRedisClient) GetContext() context.Context {
	return m.context
}

// Ping simulates a Redis Ping operation.
func (m *MockRedisClient) Ping() error {
	return nil
}

func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	return []string{}, nil
}

func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
