package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"roamly/internal/models/request_models"
	"roamly/internal/services"
	"roamly/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// AddFeedback godoc
// @Summary Rate a visited POI
// @Description Record a 1-5 rating; ratings feed the learned category bonus
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.FeedbackRequest true "Feedback payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /feedback [post]
func (f *FeedbackController) AddFeedback(c *gin.Context) {
	var req request_models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := f.feedbackService.SubmitRating(c.Request.Context(), req.ItineraryID, req.PoiID, req.Rating)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"ok": true}, "Feedback recorded")
}
