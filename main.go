package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"truck-locator/config"
	"truck-locator/di"
	"truck-locator/util"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)

	// Catalog failures are fatal to initialization: the product has no
	// meaning without at least one truck. Everything downstream degrades
	// instead of failing.
	if err := container.LocatorService.Init(); err != nil {
		log.Fatalf("Failed to initialize locator service: %v", err)
	}

	// Debug visualization of the loaded catalog, opt-in via env.
	if os.Getenv("PLOT_CATALOG") != "" {
		userPos, known := container.CatalogStore.GetUserPosition()
		util.PlotCatalog(container.CatalogStore.GetAll(), userPos, known)
	}

	fmt.Println("syncing geo index!")
	if err := container.CatalogRefresherService.RefreshCatalog(); err != nil {
		log.Fatalf("Failed to sync catalog into the geo index: %v", err)
	}

	fmt.Println("starting periodic job!")
	container.CatalogRefresherService.StartPeriodicJob(config.CATALOG_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.TruckLocatorHttpServer.Start()
}
