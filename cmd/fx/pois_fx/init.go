package pois_fx

import (
	"go.uber.org/fx"

	"roamly/internal/api/controllers"
	"roamly/internal/catalog"
	"roamly/internal/services"
)

var Module = fx.Provide(
	provideCatalogService, providePoisController)

func provideCatalogService(cat *catalog.Catalog) services.CatalogServiceInterface {
	return services.NewCatalogService(cat)
}

func providePoisController(catalogService services.CatalogServiceInterface) *controllers.POIsController {
	return controllers.NewPOIsController(catalogService)
}
