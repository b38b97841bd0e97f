package planner_fx

import (
	"go.uber.org/fx"

	"roamly/internal/api/controllers"
	"roamly/internal/catalog"
	"roamly/internal/preferences"
	"roamly/internal/services"
)

var Module = fx.Provide(
	provideRatingBook, providePlanService, providePlanController)

func provideRatingBook() *preferences.RatingBook {
	return preferences.NewRatingBook()
}

func providePlanService(cat *catalog.Catalog, ratings *preferences.RatingBook) services.PlanServiceInterface {
	return services.NewPlanService(cat, ratings)
}

func providePlanController(planService services.PlanServiceInterface) *controllers.PlanController {
	return controllers.NewPlanController(planService)
}
