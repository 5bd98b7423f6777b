package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"truck-locator/api"
	"truck-locator/api/places"
	"truck-locator/api/routes"
	"truck-locator/catalog"
	"truck-locator/config"
	daoredis "truck-locator/dao/redis"
	"truck-locator/db"
	"truck-locator/geoloc"
	"truck-locator/mapsurface"
	"truck-locator/models"
	"truck-locator/server"
	"truck-locator/server/handlers"
	services "truck-locator/service"
)

// defaultMockPosition centers the mock geolocator on downtown SF, where the
// sample catalog lives.
var defaultMockPosition = models.LatLng{Lat: 37.7749, Lng: -122.4194}

// Container holds all application dependencies.
type Container struct {
	RedisClient             db.RedisClient
	RedisTruckDao           *daoredis.RedisTruckDAO
	CatalogStore            *catalog.Store
	PlacesAPI               places.PlacesAPI
	RoutesAPI               routes.RoutesAPI
	Geolocator              geoloc.Geolocator
	MapSurface              *mapsurface.LogMapSurface
	LocatorService          *services.LocatorService
	CatalogRefresherService *services.CatalogRefresherService
	TruckHandler            *handlers.TruckHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	TruckLocatorHttpServer  *server.TruckLocatorHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis Client internals
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using mock redis client")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.REDIS_DB_ADDRESS,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewGeoRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// Initialize Redis Truck DAO
	redisTruckDao := daoredis.NewRedisTruckDAO(redisClient)

	// Initialize the catalog store over the static JSON source
	catalogStore := catalog.NewStore(catalog.NewFileSource(config.CatalogPath()))

	// Initialize provider clients - mocks outside prod
	var placesAPI places.PlacesAPI
	var routesAPI routes.RoutesAPI
	if env != "prod" {
		placesAPI = places.NewPlacesApiClientMock()
		routesAPI = routes.NewRoutesApiClientMock()
		log.Printf("Using mock places/routes api clients")
	} else {
		log.Printf("Using prod places/routes api clients")
		apiKey := config.GoogleMapsAPIKey()

		placesClient := places.NewPlacesApiClient(api.NewHTTPClient(config.PLACES_ENDPOINT_BASE_V1))
		placesClient.SetCredentials(apiKey)
		placesAPI = placesClient

		routesClient := routes.NewRoutesApiClient(api.NewHTTPClient(config.ROUTES_ENDPOINT_BASE_V2))
		routesClient.SetCredentials(apiKey)
		routesAPI = routesClient
	}

	// Geolocation is host-provided; the service composition has no browser
	// to ask, so it runs on the mock capability.
	geolocator := geoloc.NewGeolocatorMock(defaultMockPosition)

	// Map surface collaborator (headless in the server composition)
	mapSurface := mapsurface.NewLogMapSurface()

	// Initialize the core locator service
	locatorService := services.NewLocatorService(
		catalogStore, redisTruckDao, placesAPI, routesAPI, mapSurface, geolocator)

	// Initialize truck handler
	truckHandler := handlers.NewTruckHandler(locatorService, redisTruckDao)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(truckHandler, muxRouter)

	// initialize truck locator server
	truckLocatorHttpServer := server.NewTruckLocatorHttpServer(router, muxRouter)

	catalogRefresherService := services.NewCatalogRefresherService(catalogStore, redisTruckDao)

	return &Container{
		RedisClient:             redisClient,
		RedisTruckDao:           redisTruckDao,
		CatalogStore:            catalogStore,
		PlacesAPI:               placesAPI,
		RoutesAPI:               routesAPI,
		Geolocator:              geolocator,
		MapSurface:              mapSurface,
		LocatorService:          locatorService,
		CatalogRefresherService: catalogRefresherService,
		TruckHandler:            truckHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		TruckLocatorHttpServer:  truckLocatorHttpServer,
	}
}
