package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Catalog refresher config
const CATALOG_REFRESHER_SCHEDULE_MINUTES = 60

// Google Maps Platform endpoints
const PLACES_ENDPOINT_BASE_V1 = "https://places.googleapis.com/v1"
const ROUTES_ENDPOINT_BASE_V2 = "https://routes.googleapis.com/directions/v2"

// GOOGLE_MAPS_API_KEY_ENV names the env var holding the API key credential.
const GOOGLE_MAPS_API_KEY_ENV = "GOOGLE_MAPS_API_KEY"

// POI search defaults
const POI_SEARCH_RADIUS_METERS = 750
const POI_SEARCH_MAX_RESULTS = 7

// Default serving radius for the nearby endpoint, in meters
const NEARBY_DEFAULT_RADIUS_METERS = 5000

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const LOCATIONS_RESOURCE = "locations.json"
const SEARCH_NEARBY_RESPONSE_RESOURCE = "search_nearby_response.json"
const PLACE_DETAILS_RESPONSE_RESOURCE = "place_details_response.json"
const COMPUTE_ROUTES_RESPONSE_RESOURCE = "compute_routes_response.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}

// GoogleMapsAPIKey reads the API key credential from the environment.
// Empty means the real places/routes clients cannot be used; the mock
// clients do not need it.
func GoogleMapsAPIKey() string {
	return os.Getenv(GOOGLE_MAPS_API_KEY_ENV)
}

// CatalogPath points at the static locations catalog.
func CatalogPath() string {
	return GetResourcePath(LOCATIONS_RESOURCE)
}
