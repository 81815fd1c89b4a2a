package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"voyago/cmd/fx/accountfx"
	"voyago/cmd/fx/cachefx"
	"voyago/cmd/fx/controllersfx"
	"voyago/cmd/fx/corefx"
	"voyago/cmd/fx/dbfx"
	"voyago/cmd/fx/decisionfx"
	"voyago/cmd/fx/destinationfx"
	"voyago/cmd/fx/narrativefx"
	"voyago/cmd/fx/plannerfx"
	"voyago/cmd/fx/tripfx"
	"voyago/internal/api/controllers"
	"voyago/internal/infra"
	"voyago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		corefx.Module,
		dbfx.Module,
		cachefx.Module,
		accountfx.Module,
		tripfx.Module,
		plannerfx.Module,
		decisionfx.Module,
		narrativefx.Module,
		destinationfx.Module,
		controllersfx.Module,

		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		fx.Provide(ProvideRouter),
		fx.Invoke(infra.AutoMigrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at :" + os.Getenv("PORT"))
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	plannerController *controllers.PlannerController,
	decisionController *controllers.DecisionController,
	destinationController *controllers.DestinationController,
	narrativeController *controllers.NarrativeController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		tripController,
		plannerController,
		decisionController,
		destinationController,
		narrativeController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	plannerController *controllers.PlannerController,
	decisionController *controllers.DecisionController,
	destinationController *controllers.DestinationController,
	narrativeController *controllers.NarrativeController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	destinations := r.Group("/destinations")
	destinations.GET("/suggest", destinationController.Suggest)
	destinations.POST("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), destinationController.Upsert)

	trips := r.Group("/trips", middleware.JWTAuthMiddleware())
	trips.POST("", tripController.CreateTrip)
	trips.GET("", tripController.ListTrips)
	trips.GET("/:tripId", tripController.GetTrip)
	trips.PUT("/:tripId/schedule", tripController.SaveSchedule)
	trips.PUT("/:tripId/hotels", tripController.SaveHotelStays)
	trips.POST("/:tripId/routes/generate", plannerController.GenerateRoutes)
	trips.POST("/:tripId/routes/rank", plannerController.RankRoutes)
	trips.POST("/:tripId/routes/accept", plannerController.AcceptRoute)
	trips.POST("/:tripId/activities/evaluate", decisionController.EvaluateActivity)
	trips.POST("/:tripId/hotels/evaluate", decisionController.EvaluateHotel)

	r.POST("/routes/diff", plannerController.DiffRoutes)
	r.POST("/narrative/summarize", narrativeController.Summarize)
}
