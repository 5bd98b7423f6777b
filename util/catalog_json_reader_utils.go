package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"truck-locator/models"
)

// ReadLocationsFromJSON loads the catalog (an array of Location) from JSON
// on disk.
func ReadLocationsFromJSON(filePath string) ([]models.Location, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var locations []models.Location
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal locations: %w", err)
	}
	return locations, nil
}

// ReadSearchNearbyResponseFromJSON loads a SearchNearbyResponse from JSON
// on disk.
func ReadSearchNearbyResponseFromJSON(filePath string) (*models.SearchNearbyResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.SearchNearbyResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal SearchNearbyResponse: %w", err)
	}
	return &resp, nil
}

// ReadPlaceFromJSON loads a single Place from JSON on disk.
func ReadPlaceFromJSON(filePath string) (*models.Place, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var place models.Place
	if err := json.Unmarshal(data, &place); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Place: %w", err)
	}
	return &place, nil
}

// ReadComputeRoutesResponseFromJSON loads a ComputeRoutesResponse from JSON
// on disk.
func ReadComputeRoutesResponseFromJSON(filePath string) (*models.ComputeRoutesResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.ComputeRoutesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ComputeRoutesResponse: %w", err)
	}
	return &resp, nil
}
