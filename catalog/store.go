package catalog

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"truck-locator/models"
)

// ErrDataUnavailable means the catalog source was unreachable, returned a
// malformed payload, or yielded an empty set. An empty catalog is an error,
// not a valid state: the product has no meaning without at least one truck.
var ErrDataUnavailable = errors.New("truck catalog data unavailable")

// Source yields the raw catalog. FileSource is the file-backed
// implementation; tests inject fakes.
type Source interface {
	FetchLocations() ([]models.Location, error)
}

// Store holds the loaded catalog and the last known user position. The
// catalog is session-immutable after a successful Load; the store hands out
// defensive copies so callers can never mutate its internal state.
type Store struct {
	mu           sync.RWMutex
	locations    []models.Location
	userPosition models.LatLng
	positionSet  bool

	source Source
}

// NewStore constructs an empty store over the given source.
func NewStore(source Source) *Store {
	return &Store{source: source}
}

// Load fetches the canonical location list and atomically replaces the
// in-memory set. Returns a defensive copy of the loaded set.
func (s *Store) Load() ([]models.Location, error) {
	locations, err := s.source.FetchLocations()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("%w: source yielded an empty catalog", ErrDataUnavailable)
	}
	if err := validate(locations); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	s.mu.Lock()
	s.locations = copyLocations(locations)
	s.mu.Unlock()

	log.Printf("[CatalogStore] Loaded %d locations", len(locations))
	return copyLocations(locations), nil
}

// GetAll returns a defensive copy of the current catalog, empty before the
// first successful Load.
func (s *Store) GetAll() []models.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyLocations(s.locations)
}

// GetByID looks a single location up by its id.
func (s *Store) GetByID(id models.LocationID) (models.Location, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, loc := range s.locations {
		if loc.ID == id {
			return copyLocation(loc), true
		}
	}
	return models.Location{}, false
}

// SetUserPosition stores the last known user position. Refreshing replaces
// the previous value.
func (s *Store) SetUserPosition(pos models.LatLng) {
	s.mu.Lock()
	s.userPosition = pos
	s.positionSet = true
	s.mu.Unlock()
}

// GetUserPosition returns the last known user position. The second return
// is false while no position has been set; absence is a first-class state,
// not a default coordinate.
func (s *Store) GetUserPosition() (models.LatLng, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userPosition, s.positionSet
}

// validate rejects payloads that would break the catalog invariants:
// duplicate ids and out-of-range coordinates.
func validate(locations []models.Location) error {
	seen := make(map[models.LocationID]struct{}, len(locations))
	for _, loc := range locations {
		if loc.ID == "" {
			return fmt.Errorf("location %q has no id", loc.Name)
		}
		if _, dup := seen[loc.ID]; dup {
			return fmt.Errorf("duplicate location id %s", loc.ID)
		}
		seen[loc.ID] = struct{}{}

		if !loc.Position().Valid() {
			return fmt.Errorf("location %s has out-of-range coordinates (%f, %f)", loc.ID, loc.Lat, loc.Lng)
		}
	}
	return nil
}

func copyLocations(locations []models.Location) []models.Location {
	out := make([]models.Location, len(locations))
	for i, loc := range locations {
		out[i] = copyLocation(loc)
	}
	return out
}

// copyLocation deep-copies the maps and pointers so a caller mutating the
// returned value cannot reach the store's state.
func copyLocation(loc models.Location) models.Location {
	if loc.OpeningHours != nil {
		hours := make(map[string]string, len(loc.OpeningHours))
		for day, entry := range loc.OpeningHours {
			hours[day] = entry
		}
		loc.OpeningHours = hours
	}
	if loc.DistanceFromUser != nil {
		d := *loc.DistanceFromUser
		loc.DistanceFromUser = &d
	}
	return loc
}
