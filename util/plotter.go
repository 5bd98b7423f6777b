package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"truck-locator/models"
)

// PlotCatalog generates an HTML file rendering the catalog locations, plus
// the user position when known. Debug visualization for eyeballing the
// loaded data without a map front-end.
func PlotCatalog(locations []models.Location, userPos models.LatLng, userKnown bool) {
	points := make([]opts.GeoData, 0, len(locations)+1)
	for _, loc := range locations {
		points = append(points, opts.GeoData{
			Name:  loc.Name,
			Value: []float64{loc.Lng, loc.Lat},
		})
	}

	// Create a new Geo chart.
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Truck Catalog Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Trucks", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	if userKnown {
		geo.AddSeries("You", types.ChartScatter, []opts.GeoData{
			{Name: "You", Value: []float64{userPos.Lng, userPos.Lat}},
		})
	}

	f, err := os.Create("truck_catalog_map.html")
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := geo.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Catalog map generated: truck_catalog_map.html")
}
