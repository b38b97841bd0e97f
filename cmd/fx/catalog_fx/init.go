package catalog_fx

import (
	"context"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"roamly/internal/catalog"
	"roamly/internal/infra"
	"roamly/internal/models/db_models"
	"roamly/internal/repositories"
	"roamly/pkg/utils"
)

var Module = fx.Provide(
	provideCatalog)

// provideCatalog loads the POI catalog once. POSTGRES_URL selects the
// poi_records table; otherwise the CSV seed at POIS_CSV (default
// pois_boston_seed.csv) is read. The catalog is immutable afterwards.
func provideCatalog() *catalog.Catalog {
	if os.Getenv("POSTGRES_URL") != "" {
		return loadFromPostgres()
	}

	path := os.Getenv("POIS_CSV")
	if path == "" {
		path = "pois_boston_seed.csv"
	}

	cat, err := catalog.LoadCSV(path)
	if err != nil {
		log.Fatalf("Failed to load POI catalog from %s: %v", path, err)
	}
	log.Printf("Loaded %d POIs from %s", cat.Len(), path)
	return cat
}

func loadFromPostgres() *catalog.Catalog {
	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	repo := repositories.NewPOIRecordRepository(db)
	records, err := repo.ListAll(context.Background())
	if err != nil {
		log.Fatalf("Failed to load POI catalog from postgres: %v", err)
	}

	pois := make([]catalog.POI, 0, len(records))
	for _, r := range records {
		pois = append(pois, recordToPOI(r))
	}
	log.Printf("Loaded %d POIs from postgres", len(pois))
	return catalog.New(pois)
}

func recordToPOI(r db_models.POIRecord) catalog.POI {
	return catalog.POI{
		ID:            r.ExternalID,
		Name:          r.Name,
		Lat:           r.Latitude,
		Lon:           r.Longitude,
		Category:      strings.ToLower(r.Category),
		PriceTier:     r.PriceTier,
		AvgDwellMin:   r.AvgDwellMin,
		AdmissionCost: r.AdmissionCost,
		OpenFrom:      utils.MinuteOfDay(r.OpenFrom),
		OpenTo:        utils.MinuteOfDay(r.OpenTo),
		Tags:          r.Tags,
	}
}
