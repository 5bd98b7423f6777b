package service

import (
	"log"
	"time"

	"truck-locator/catalog"
	daoredis "truck-locator/dao/redis"
)

// CatalogRefresherService periodically reloads the catalog source and
// re-syncs the Redis geo index the nearby endpoint serves from. A failed
// reload keeps the previous catalog: the last good set stays served.
type CatalogRefresherService struct {
	store    *catalog.Store
	truckDao *daoredis.RedisTruckDAO
}

// NewCatalogRefresherService constructs a new refresher with dependencies.
func NewCatalogRefresherService(
	store *catalog.Store,
	truckDao *daoredis.RedisTruckDAO,
) *CatalogRefresherService {
	return &CatalogRefresherService{
		store:    store,
		truckDao: truckDao,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (cr *CatalogRefresherService) StartPeriodicJob(interval time.Duration) {
	go cr.startPeriodicJob(interval)
}

func (cr *CatalogRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[CatalogRefresherService] Running periodic catalog refresh.")
		if err := cr.RefreshCatalog(); err != nil {
			log.Printf("[CatalogRefresherService] RefreshCatalog returned error: %v", err)
		} else {
			log.Println("[CatalogRefresherService] RefreshCatalog completed successfully.")
		}
	}
}

// RefreshCatalog reloads the source and upserts every location into the
// geo index. Individual upsert failures are logged and skipped; the rest
// of the sync continues.
func (cr *CatalogRefresherService) RefreshCatalog() error {
	locations, err := cr.store.Load()
	if err != nil {
		return err
	}

	for _, loc := range locations {
		if err := cr.truckDao.UpsertTruck(loc); err != nil {
			log.Printf("[CatalogRefresherService] Upsert failed for %s: %v", loc.ID, err)
		}
	}
	log.Printf("[CatalogRefresherService] Synced %d locations into the geo index", len(locations))
	return nil
}
