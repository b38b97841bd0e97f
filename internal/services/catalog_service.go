package services

import (
	"context"

	"roamly/internal/catalog"
	"roamly/internal/models/response_models"
	"roamly/pkg/utils"
)

type CatalogServiceInterface interface {
	ListPois(ctx context.Context) ([]response_models.POI, error)
	GetPoiById(ctx context.Context, id string) (response_models.POI, error)
}

type CatalogService struct {
	catalog *catalog.Catalog
}

func NewCatalogService(cat *catalog.Catalog) CatalogServiceInterface {
	return &CatalogService{catalog: cat}
}

func (s *CatalogService) ListPois(ctx context.Context) ([]response_models.POI, error) {
	pois := s.catalog.All()

	out := make([]response_models.POI, 0, len(pois))
	for _, poi := range pois {
		out = append(out, toResponsePOI(poi))
	}
	return out, nil
}

func (s *CatalogService) GetPoiById(ctx context.Context, id string) (response_models.POI, error) {
	poi, ok := s.catalog.ByID(id)
	if !ok {
		return response_models.POI{}, utils.ErrPOINotFound
	}
	return toResponsePOI(poi), nil
}

func toResponsePOI(poi catalog.POI) response_models.POI {
	return response_models.POI{
		ID:            poi.ID,
		Name:          poi.Name,
		Latitude:      poi.Lat,
		Longitude:     poi.Lon,
		Category:      poi.Category,
		PriceTier:     poi.PriceTier,
		AvgDwellMin:   poi.AvgDwellMin,
		AdmissionCost: poi.AdmissionCost,
		OpenFrom:      utils.FormatMinute(poi.OpenFrom),
		OpenTo:        utils.FormatMinute(poi.OpenTo),
		Tags:          poi.Tags,
	}
}
