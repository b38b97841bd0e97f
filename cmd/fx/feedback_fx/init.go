package feedback_fx

import (
	"go.uber.org/fx"

	"roamly/internal/api/controllers"
	"roamly/internal/catalog"
	"roamly/internal/preferences"
	"roamly/internal/services"
)

var Module = fx.Provide(
	provideFeedbackService, provideFeedbackController,
)

func provideFeedbackService(cat *catalog.Catalog, ratings *preferences.RatingBook) services.FeedbackServiceInterface {
	return services.NewFeedbackService(cat, ratings)
}

func provideFeedbackController(feedbackService services.FeedbackServiceInterface) *controllers.FeedbackController {
	return controllers.NewFeedbackController(feedbackService)
}
