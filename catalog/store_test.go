package catalog

import (
	"errors"
	"testing"

	"truck-locator/models"
)

// fakeSource lets each test script the catalog payload.
type fakeSource struct {
	locations []models.Location
	err       error
}

func (s *fakeSource) FetchLocations() ([]models.Location, error) {
	return s.locations, s.err
}

func sampleLocations() []models.Location {
	return []models.Location{
		{
			ID:      "1",
			Name:    "Merienda on Mission",
			Address: "2898 Mission St",
			Lat:     37.751,
			Lng:     -122.418,
			OpeningHours: map[string]string{
				"Monday": "09:00-17:00",
			},
		},
		{
			ID:   "2",
			Name: "Embarcadero Bites",
			Lat:  37.793,
			Lng:  -122.391,
		},
	}
}

func TestStore_Load_Success(t *testing.T) {
	// Arrange
	store := NewStore(&fakeSource{locations: sampleLocations()})

	// Act
	loaded, err := store.Load()

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 locations, got %d", len(loaded))
	}

	all := store.GetAll()
	if len(all) != 2 {
		t.Fatalf("Expected GetAll to reflect the load, got %d locations", len(all))
	}
	if all[0].Name != "Merienda on Mission" {
		t.Errorf("Expected first location name preserved, got %s", all[0].Name)
	}
}

func TestStore_Load_EmptyCatalogIsAnError(t *testing.T) {
	store := NewStore(&fakeSource{locations: []models.Location{}})

	_, err := store.Load()

	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("Expected ErrDataUnavailable for empty catalog, got %v", err)
	}
	if len(store.GetAll()) != 0 {
		t.Error("Expected store to stay empty after failed load")
	}
}

func TestStore_Load_SourceFailure(t *testing.T) {
	store := NewStore(&fakeSource{err: errors.New("connection refused")})

	_, err := store.Load()

	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("Expected ErrDataUnavailable for unreachable source, got %v", err)
	}
}

func TestStore_Load_DuplicateIDs(t *testing.T) {
	locations := sampleLocations()
	locations[1].ID = locations[0].ID
	store := NewStore(&fakeSource{locations: locations})

	_, err := store.Load()

	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("Expected ErrDataUnavailable for duplicate ids, got %v", err)
	}
}

func TestStore_Load_OutOfRangeCoordinates(t *testing.T) {
	locations := sampleLocations()
	locations[0].Lat = 91
	store := NewStore(&fakeSource{locations: locations})

	_, err := store.Load()

	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("Expected ErrDataUnavailable for invalid coordinates, got %v", err)
	}
}

func TestStore_Load_KeepsPreviousCatalogOnFailure(t *testing.T) {
	source := &fakeSource{locations: sampleLocations()}
	store := NewStore(source)
	if _, err := store.Load(); err != nil {
		t.Fatalf("Expected first load to succeed, got %v", err)
	}

	// Source goes bad; the last good catalog stays served.
	source.locations = nil
	source.err = errors.New("boom")
	if _, err := store.Load(); err == nil {
		t.Fatal("Expected second load to fail")
	}

	if len(store.GetAll()) != 2 {
		t.Errorf("Expected previous catalog to survive a failed reload, got %d locations", len(store.GetAll()))
	}
}

func TestStore_GetAll_DefensiveCopy(t *testing.T) {
	store := NewStore(&fakeSource{locations: sampleLocations()})
	if _, err := store.Load(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Mutate everything reachable through the returned value.
	got := store.GetAll()
	got[0].Name = "Hacked"
	got[0].OpeningHours["Monday"] = "00:00-00:01"

	fresh := store.GetAll()
	if fresh[0].Name != "Merienda on Mission" {
		t.Error("Caller mutation of the name reached the store")
	}
	if fresh[0].OpeningHours["Monday"] != "09:00-17:00" {
		t.Error("Caller mutation of the hours map reached the store")
	}
}

func TestStore_GetByID(t *testing.T) {
	store := NewStore(&fakeSource{locations: sampleLocations()})
	if _, err := store.Load(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	loc, ok := store.GetByID("2")
	if !ok {
		t.Fatal("Expected to find location 2")
	}
	if loc.Name != "Embarcadero Bites" {
		t.Errorf("Expected Embarcadero Bites, got %s", loc.Name)
	}

	if _, ok := store.GetByID("missing"); ok {
		t.Error("Expected lookup miss for unknown id")
	}
}

func TestStore_UserPosition(t *testing.T) {
	store := NewStore(&fakeSource{})

	// Unknown is a first-class state, not a default coordinate.
	if _, known := store.GetUserPosition(); known {
		t.Error("Expected user position to be unknown before SetUserPosition")
	}

	pos := models.LatLng{Lat: 37.7749, Lng: -122.4194}
	store.SetUserPosition(pos)

	got, known := store.GetUserPosition()
	if !known {
		t.Fatal("Expected user position to be known after SetUserPosition")
	}
	if got != pos {
		t.Errorf("Expected %v, got %v", pos, got)
	}

	// Refreshing replaces the previous value.
	refreshed := models.LatLng{Lat: 37.8, Lng: -122.3}
	store.SetUserPosition(refreshed)
	if got, _ := store.GetUserPosition(); got != refreshed {
		t.Errorf("Expected refreshed position %v, got %v", refreshed, got)
	}
}
