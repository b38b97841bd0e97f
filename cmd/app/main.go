package main

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"log"
	"os"
	"roamly/cmd/fx/catalog_fx"
	"roamly/cmd/fx/feedback_fx"
	"roamly/cmd/fx/planner_fx"
	"roamly/cmd/fx/pois_fx"
	"roamly/internal/api/controllers"
	"roamly/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		catalog_fx.Module,
		planner_fx.Module,
		feedback_fx.Module,
		pois_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8000"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	planController *controllers.PlanController,
	feedbackController *controllers.FeedbackController,
	poisController *controllers.POIsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, planController, feedbackController, poisController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	planController *controllers.PlanController,
	feedbackController *controllers.FeedbackController,
	poisController *controllers.POIsController) {

	r.POST("/plan", planController.CreatePlan)
	r.POST("/feedback", feedbackController.AddFeedback)

	poisGroup := r.Group("/pois")
	poisGroup.GET("", poisController.ListPois)
	poisGroup.GET("/:id", poisController.GetPoiById)
}
