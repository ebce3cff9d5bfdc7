package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"travo/cmd/fx/account_fx"
	"travo/cmd/fx/assistant_fx"
	"travo/cmd/fx/catalog_fx"
	"travo/cmd/fx/planner_fx"
	"travo/internal/api/controllers"
	"travo/pkg/middleware"
	"travo/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		assistant_fx.Module,
		planner_fx.Module,
		catalog_fx.Module,
		account_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := utils.GetEnvWithDefault("PORT", "8080")
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
	chatController *controllers.ChatController,
	plannerController *controllers.PlannerController,
	destinationController *controllers.DestinationController,
	itineraryController *controllers.ItineraryController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, chatController, plannerController, destinationController, itineraryController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	chatController *controllers.ChatController,
	plannerController *controllers.PlannerController,
	destinationController *controllers.DestinationController,
	itineraryController *controllers.ItineraryController,
	accountController *controllers.AccountController) {

	chatGroup := r.Group("/chat")
	chatGroup.POST("/message", chatController.PostMessage)
	chatGroup.POST("/option", chatController.PostOption)

	plannerGroup := r.Group("/planner")
	plannerGroup.POST("/plan", plannerController.GeneratePlan)
	plannerGroup.GET("/handoff/:sessionId", plannerController.ConsumeHandoff)

	destinationGroup := r.Group("/destinations")
	destinationGroup.GET("", destinationController.ListDestinations)
	destinationGroup.GET("/:id", destinationController.GetDestination)
	destinationGroup.GET("/:id/suggestions", destinationController.GetSuggestions)

	itineraryGroup := r.Group("/itineraries")
	itineraryGroup.GET("", itineraryController.ListItineraries)
	itineraryGroup.GET("/:id", itineraryController.GetItinerary)
	itineraryGroup.POST("", middleware.JWTAuthMiddleware(), itineraryController.CreateItinerary)
	itineraryGroup.POST("/generate", middleware.JWTAuthMiddleware(), itineraryController.GenerateItinerary)

	authGroup := r.Group("/auth")
	authGroup.POST("/login", accountController.Login)
	authGroup.POST("/signup", accountController.SignUp)
}
