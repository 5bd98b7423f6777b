package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"truck-locator/api"
	"truck-locator/config"
	daoredis "truck-locator/dao/redis"
	"truck-locator/models"
	"truck-locator/service"
)

const (
	LAT_QUERY_ARG      = "lat"
	LNG_QUERY_ARG      = "lng"
	RADIUS_QUERY_ARG   = "radius"
	OPEN_NOW_QUERY_ARG = "open_now"
)

// TruckHandler serves the catalog, selection and POI endpoints.
type TruckHandler struct {
	locatorService *service.LocatorService
	truckDao       *daoredis.RedisTruckDAO
}

func NewTruckHandler(locatorService *service.LocatorService, truckDao *daoredis.RedisTruckDAO) *TruckHandler {
	return &TruckHandler{locatorService: locatorService, truckDao: truckDao}
}

// GetTrucks returns the catalog ranked by distance where the user position
// is known, with ?open_now=true applying the open-now filter.
func (h *TruckHandler) GetTrucks(w http.ResponseWriter, r *http.Request) {
	openNow := false
	if v := r.URL.Query().Get(OPEN_NOW_QUERY_ARG); v != "" {
		openNow, _ = strconv.ParseBool(v)
	}

	writeJSON(w, http.StatusOK, h.locatorService.ListTrucks(openNow))
}

// GetTrucksNearby serves a radius query out of the Redis geo index.
// Expects ?lat={float}&lng={float}&radius={meters, optional}.
func (h *TruckHandler) GetTrucksNearby(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	lat, err := parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lng, err := parseArgFloat64(vals, LNG_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LNG_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius := float64(config.NEARBY_DEFAULT_RADIUS_METERS)
	if vals.Get(RADIUS_QUERY_ARG) != "" {
		radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
		if err != nil {
			http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
			return
		}
	}

	trucks, err := h.truckDao.GetNearbyTrucks(lat, lng, radius)
	if err != nil {
		log.Println("Error loading nearby trucks:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, trucks)
}

// GetTruck returns the detail view for one truck: hours table, open flag,
// distance when known.
func (h *TruckHandler) GetTruck(w http.ResponseWriter, r *http.Request) {
	id := models.LocationID(mux.Vars(r)["id"])

	details, err := h.locatorService.GetTruckDetails(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// GetTruckPois runs the selection flow for a truck and returns its nearby
// POIs. A POI failure is scoped to this request; nothing else breaks.
func (h *TruckHandler) GetTruckPois(w http.ResponseWriter, r *http.Request) {
	id := models.LocationID(mux.Vars(r)["id"])

	pois, err := h.locatorService.SelectTruck(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if pois == nil {
		pois = []models.PointOfInterest{}
	}
	writeJSON(w, http.StatusOK, pois)
}

// GetPoiDetails returns the lazily fetched extended fields for one POI.
func (h *TruckHandler) GetPoiDetails(w http.ResponseWriter, r *http.Request) {
	placeID := mux.Vars(r)["placeId"]

	details, err := h.locatorService.GetPoiDetails(placeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// GetTruckRoute computes a driving route from ?lat=&lng= to the truck.
func (h *TruckHandler) GetTruckRoute(w http.ResponseWriter, r *http.Request) {
	id := models.LocationID(mux.Vars(r)["id"])
	vals := r.URL.Query()

	lat, err := parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lng, err := parseArgFloat64(vals, LNG_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LNG_QUERY_ARG, http.StatusBadRequest)
		return
	}

	route, err := h.locatorService.RouteToTruck(id, models.LatLng{Lat: lat, Lng: lng})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, route)
}

// Ping handles GET /ping
func (h *TruckHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

// writeServiceError maps the error taxonomy onto HTTP statuses: unknown id
// to 404, a missing capability to 503, an upstream failure to 502 carrying
// the upstream message.
func writeServiceError(w http.ResponseWriter, err error) {
	var upstream *api.UpstreamError
	switch {
	case errors.Is(err, service.ErrTruckNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, api.ErrServiceUnavailable):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	case errors.As(err, &upstream):
		http.Error(w, upstream.Error(), http.StatusBadGateway)
	default:
		log.Println("Unhandled service error:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}
