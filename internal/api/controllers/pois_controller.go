package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"roamly/internal/services"
	"roamly/pkg/utils"
)

type POIsController struct {
	catalogService services.CatalogServiceInterface
}

func NewPOIsController(catalogService services.CatalogServiceInterface) *POIsController {
	return &POIsController{catalogService: catalogService}
}

func (p *POIsController) ListPois(c *gin.Context) {
	pois, err := p.catalogService.ListPois(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"pois": pois}, "POIs fetched successfully")
}

func (p *POIsController) GetPoiById(c *gin.Context) {
	poiId := c.Param("id")
	if poiId == "" {
		utils.RespondError(c, http.StatusBadRequest, "POI ID is required")
		return
	}

	poi, err := p.catalogService.GetPoiById(c.Request.Context(), poiId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, poi, "POI fetched successfully")
}
