package mapsurface

import (
	"log"
	"sync"

	"truck-locator/models"
)

// LogMapSurface is the headless implementation used by the server
// composition: it records what would be rendered and logs the calls. Tests
// read the recorded state back; a browser front-end would replace it.
type LogMapSurface struct {
	mu       sync.Mutex
	markers  []models.Location
	pois     []models.PointOfInterest
	route    []models.LatLng
	callback MarkerClickCallback
}

func NewLogMapSurface() *LogMapSurface {
	return &LogMapSurface{}
}

func (s *LogMapSurface) ShowMarkers(locations []models.Location) {
	s.mu.Lock()
	s.markers = locations
	s.mu.Unlock()
	log.Printf("[MapSurface] Showing %d truck markers", len(locations))
}

func (s *LogMapSurface) ClearMarkers() {
	s.mu.Lock()
	s.markers = nil
	s.mu.Unlock()
	log.Println("[MapSurface] Truck markers cleared")
}

func (s *LogMapSurface) ShowPOIMarkers(pois []models.PointOfInterest) {
	s.mu.Lock()
	s.pois = pois
	s.mu.Unlock()
	log.Printf("[MapSurface] Showing %d POI markers", len(pois))
}

func (s *LogMapSurface) ClearPOIMarkers() {
	s.mu.Lock()
	s.pois = nil
	s.mu.Unlock()
	log.Println("[MapSurface] POI markers cleared")
}

func (s *LogMapSurface) PanTo(position models.LatLng, zoom int) {
	log.Printf("[MapSurface] Panning to (%.6f, %.6f) zoom=%d", position.Lat, position.Lng, zoom)
}

func (s *LogMapSurface) ShowRoute(path []models.LatLng) {
	s.mu.Lock()
	s.route = path
	s.mu.Unlock()
	log.Printf("[MapSurface] Showing route with %d points", len(path))
}

func (s *LogMapSurface) ClearRoute() {
	s.mu.Lock()
	s.route = nil
	s.mu.Unlock()
	log.Println("[MapSurface] Route cleared")
}

func (s *LogMapSurface) OnMarkerClick(callback MarkerClickCallback) {
	s.mu.Lock()
	s.callback = callback
	s.mu.Unlock()
}

// ClickMarker simulates the collaborator firing a marker click.
func (s *LogMapSurface) ClickMarker(id models.LocationID) {
	s.mu.Lock()
	callback := s.callback
	s.mu.Unlock()
	if callback != nil {
		callback(id)
	}
}

// CurrentPOIMarkers returns the POI markers currently shown.
func (s *LogMapSurface) CurrentPOIMarkers() []models.PointOfInterest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pois
}

// CurrentRoute returns the route currently shown.
func (s *LogMapSurface) CurrentRoute() []models.LatLng {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.route
}
