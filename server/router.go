package server

import (
	"github.com/gorilla/mux"

	"truck-locator/server/handlers"
)

type Router struct {
	truckHandler *handlers.TruckHandler
	router       *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	truckHandler *handlers.TruckHandler,
	router *mux.Router) *Router {
	return &Router{
		truckHandler: truckHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects optional ?open_now={bool}
	r.router.HandleFunc("/v1/trucks", r.truckHandler.GetTrucks).Methods("GET")

	// expects ?lat={latitude(float)}&lng={longitude(float)}&radius={meters(float)}
	r.router.HandleFunc("/v1/trucks/nearby", r.truckHandler.GetTrucksNearby).Methods("GET")

	r.router.HandleFunc("/v1/trucks/{id}", r.truckHandler.GetTruck).Methods("GET")
	r.router.HandleFunc("/v1/trucks/{id}/pois", r.truckHandler.GetTruckPois).Methods("GET")
	r.router.HandleFunc("/v1/trucks/{id}/route", r.truckHandler.GetTruckRoute).Methods("GET")
	r.router.HandleFunc("/v1/pois/{placeId}", r.truckHandler.GetPoiDetails).Methods("GET")

	r.router.HandleFunc("/ping", r.truckHandler.Ping).Methods("GET")
}
