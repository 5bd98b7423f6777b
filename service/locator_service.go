package service

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"truck-locator/api/places"
	"truck-locator/api/routes"
	"truck-locator/catalog"
	"truck-locator/config"
	daoredis "truck-locator/dao/redis"
	"truck-locator/geo"
	"truck-locator/geoloc"
	"truck-locator/hours"
	"truck-locator/mapsurface"
	"truck-locator/models"
)

// ErrTruckNotFound means the requested id is not in the loaded catalog.
var ErrTruckNotFound = errors.New("truck not found")

// TruckView is a catalog entry annotated for display: open flag plus the
// optional distance annotation.
type TruckView struct {
	models.Location
	Open bool `json:"open"`
}

// TruckDetails is the detail view for a selected truck: the full hours
// table keyed by weekday plus today's name, mirroring the sidebar the
// product renders.
type TruckDetails struct {
	TruckView
	Today string            `json:"today"`
	Hours map[string]string `json:"hours,omitempty"`
}

// LocatorService orchestrates the whole selection flow: catalog + ranking
// + open status on the read side, POI and route fetches plus map-surface
// pushes on the selection side.
type LocatorService struct {
	store      *catalog.Store
	truckDao   *daoredis.RedisTruckDAO
	placesAPI  places.PlacesAPI
	routesAPI  routes.RoutesAPI
	mapSurface mapsurface.MapSurface
	geolocator geoloc.Geolocator

	// selectionSeq implements last-request-wins for POI pushes: a stale
	// selection's results must never overwrite a later selection's.
	mu           sync.Mutex
	selectionSeq uint64
	detailSeq    uint64

	now func() time.Time
}

// NewLocatorService constructs the service with all collaborators injected.
func NewLocatorService(
	store *catalog.Store,
	truckDao *daoredis.RedisTruckDAO,
	placesAPI places.PlacesAPI,
	routesAPI routes.RoutesAPI,
	mapSurface mapsurface.MapSurface,
	geolocator geoloc.Geolocator,
) *LocatorService {
	s := &LocatorService{
		store:      store,
		truckDao:   truckDao,
		placesAPI:  placesAPI,
		routesAPI:  routesAPI,
		mapSurface: mapSurface,
		geolocator: geolocator,
		now:        time.Now,
	}
	mapSurface.OnMarkerClick(func(id models.LocationID) {
		if _, err := s.SelectTruck(id); err != nil {
			log.Printf("[LocatorService] Marker click for %s failed: %v", id, err)
		}
	})
	return s
}

// Init loads the catalog (fatal on failure), attempts geolocation
// (non-fatal) and pushes the truck markers outward.
func (s *LocatorService) Init() error {
	if _, err := s.store.Load(); err != nil {
		return err
	}

	if pos, err := s.geolocator.GetCurrentPosition(); err != nil {
		log.Printf("[LocatorService] Geolocation failed, continuing without distance sorting: %v", err)
	} else {
		s.store.SetUserPosition(pos)
		s.mapSurface.PanTo(pos, 14)
	}

	s.mapSurface.ShowMarkers(s.store.GetAll())
	return nil
}

// RefreshUserPosition re-invokes the geolocation capability and replaces
// the stored position on success.
func (s *LocatorService) RefreshUserPosition() (models.LatLng, error) {
	pos, err := s.geolocator.GetCurrentPosition()
	if err != nil {
		return models.LatLng{}, err
	}
	s.store.SetUserPosition(pos)
	return pos, nil
}

// ListTrucks returns the catalog ranked by distance from the last known
// user position (original order when unknown), annotated with the open
// flag, optionally restricted to trucks open right now.
func (s *LocatorService) ListTrucks(openNowOnly bool) []TruckView {
	userPos, known := s.store.GetUserPosition()
	ranked := geo.Rank(s.store.GetAll(), userPos, known)
	at := s.now()

	views := make([]TruckView, 0, len(ranked))
	for _, loc := range ranked {
		open := hours.IsOpen(loc.OpeningHours, at)
		if openNowOnly && !open {
			continue
		}
		views = append(views, TruckView{Location: loc, Open: open})
	}
	return views
}

// GetTruckDetails builds the detail view for one truck.
func (s *LocatorService) GetTruckDetails(id models.LocationID) (*TruckDetails, error) {
	loc, ok := s.store.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTruckNotFound, id)
	}

	at := s.now()
	view := TruckView{Location: loc, Open: hours.IsOpen(loc.OpeningHours, at)}
	if userPos, known := s.store.GetUserPosition(); known {
		d := geo.Distance(userPos, loc.Position())
		view.DistanceFromUser = &d
	}

	return &TruckDetails{
		TruckView: view,
		Today:     hours.DayOfWeek[int(at.Weekday())],
		Hours:     loc.OpeningHours,
	}, nil
}

// SelectTruck is the selection flow: pan the map to the truck, fetch its
// nearby POIs and push the markers outward. POI failures are scoped to
// this selection; the session continues. If another selection supersedes
// this one while the POI fetch is in flight, its results are dropped.
func (s *LocatorService) SelectTruck(id models.LocationID) ([]models.PointOfInterest, error) {
	loc, ok := s.store.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTruckNotFound, id)
	}

	s.mu.Lock()
	s.selectionSeq++
	seq := s.selectionSeq
	s.mu.Unlock()

	s.mapSurface.PanTo(loc.Position(), 15)
	s.mapSurface.ClearPOIMarkers()

	pois, err := s.placesAPI.FindNearby(loc.Position(), config.POI_SEARCH_RADIUS_METERS, config.POI_SEARCH_MAX_RESULTS)

	s.mu.Lock()
	stale := seq != s.selectionSeq
	s.mu.Unlock()
	if stale {
		log.Printf("[LocatorService] Dropping stale POI results for truck %s", id)
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	s.mapSurface.ShowPOIMarkers(pois)
	return pois, nil
}

// GetPoiDetails fetches extended fields for a single POI, lazily and
// cache-first: repeated lookups within the TTL skip the upstream call.
func (s *LocatorService) GetPoiDetails(placeID string) (*models.PlaceDetails, error) {
	if cached, err := s.truckDao.GetPoiDetails(placeID); err == nil && cached != nil {
		return cached, nil
	}

	details, err := s.placesAPI.FetchDetails(placeID)
	if err != nil {
		return nil, err
	}

	if err := s.truckDao.SetPoiDetails(details); err != nil {
		log.Printf("[LocatorService] Failed to cache details for %s: %v", placeID, err)
	}
	return details, nil
}

// DetailResult is the terminal state of one async detail fetch.
type DetailResult struct {
	Details *models.PlaceDetails
	Err     error
}

// FetchPoiDetailsAsync starts a detail fetch for the given place and
// returns immediately so the caller can show a loading placeholder. The
// result callback only fires if no newer fetch was started in the
// meantime: last request wins, an earlier in-flight result never
// overwrites a later selection.
func (s *LocatorService) FetchPoiDetailsAsync(placeID string, apply func(DetailResult)) {
	s.mu.Lock()
	s.detailSeq++
	seq := s.detailSeq
	s.mu.Unlock()

	go func() {
		details, err := s.GetPoiDetails(placeID)

		s.mu.Lock()
		stale := seq != s.detailSeq
		s.mu.Unlock()
		if stale {
			log.Printf("[LocatorService] Dropping stale detail result for place %s", placeID)
			return
		}
		apply(DetailResult{Details: details, Err: err})
	}()
}

// RouteToTruck computes a driving route from the given origin to the truck
// and pushes the decoded path to the map surface.
func (s *LocatorService) RouteToTruck(id models.LocationID, origin models.LatLng) (*models.Route, error) {
	loc, ok := s.store.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTruckNotFound, id)
	}

	route, err := s.routesAPI.ComputeRoute(origin, loc.Position())
	if err != nil {
		s.mapSurface.ClearRoute()
		return nil, err
	}

	s.mapSurface.ShowRoute(route.Path)
	return route, nil
}
