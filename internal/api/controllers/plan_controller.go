package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"roamly/internal/models/request_models"
	"roamly/internal/services"
	"roamly/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{planService: planService}
}

// CreatePlan godoc
// @Summary Build an itinerary
// @Description Plan a bounded-budget visiting schedule over the POI catalog
// @Tags Plan
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Plan payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /plan [post]
func (p *PlanController) CreatePlan(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	itinerary, err := p.planService.BuildItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary built successfully")
}
