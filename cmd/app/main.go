package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	bookingfx "homestead/cmd/fx/booking_fx"
	catalogfx "homestead/cmd/fx/catalog_fx"
	dbfx "homestead/cmd/fx/db_fx"
	identityfx "homestead/cmd/fx/identity_fx"
	loggerfx "homestead/cmd/fx/logger_fx"
	loyaltyfx "homestead/cmd/fx/loyalty_fx"
	neighborhoodfx "homestead/cmd/fx/neighborhood_fx"
	profilefx "homestead/cmd/fx/profile_fx"
	"homestead/internal/api/controllers"
	"homestead/internal/models/db_models"
	"homestead/pkg/middleware"
)

func main() {
	godotenv.Load()

	app := fx.New(
		loggerfx.Module,
		dbfx.Module,
		identityfx.Module,
		catalogfx.Module,
		neighborhoodfx.Module,
		loyaltyfx.Module,
		bookingfx.Module,
		profilefx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "5000"
				}
				logger.Info("Starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	propertyController *controllers.PropertyController,
	neighborhoodController *controllers.NeighborhoodController,
	bookingController *controllers.BookingController,
	rewardController *controllers.RewardController,
	userController *controllers.UserController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		authController, propertyController, neighborhoodController,
		bookingController, rewardController, userController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	propertyController *controllers.PropertyController,
	neighborhoodController *controllers.NeighborhoodController,
	bookingController *controllers.BookingController,
	rewardController *controllers.RewardController,
	userController *controllers.UserController) {

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Real estate backend running"})
	})

	authGroup := r.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)

	propertyGroup := r.Group("/properties")
	propertyGroup.GET("/search", propertyController.Search)
	agentProperties := propertyGroup.Group("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(db_models.RoleAgent))
	agentProperties.GET("/agent-properties", propertyController.AgentProperties)
	agentProperties.POST("/create", propertyController.Create)
	agentProperties.PUT("/:id", propertyController.Update)
	agentProperties.DELETE("/:id", propertyController.Delete)

	neighborhoodGroup := r.Group("/neighborhoods")
	neighborhoodGroup.GET("", neighborhoodController.List)
	neighborhoodGroup.GET("/:id", neighborhoodController.Get)

	bookingGroup := r.Group("/bookings", middleware.JWTAuthMiddleware())
	renterBookings := bookingGroup.Group("", middleware.RoleMiddleware(db_models.RoleRenter))
	renterBookings.POST("/create", bookingController.Create)
	renterBookings.GET("/my-bookings", bookingController.MyBookings)
	bookingGroup.GET("/agent-bookings", middleware.RoleMiddleware(db_models.RoleAgent), bookingController.AgentBookings)
	// cancellation is open to the renter or the managing agent; the
	// service decides which one the caller is
	bookingGroup.DELETE("/:id", bookingController.Cancel)

	rewardGroup := r.Group("/rewards", middleware.JWTAuthMiddleware())
	rewardGroup.GET("", rewardController.ListPrograms)
	rewardGroup.GET("/my-reward", rewardController.MyProgram)
	rewardGroup.GET("/my-points", rewardController.MyPoints)
	rewardGroup.POST("/join", middleware.RoleMiddleware(db_models.RoleRenter), rewardController.Join)
	rewardGroup.POST("/redeem", middleware.RoleMiddleware(db_models.RoleRenter), rewardController.Redeem)
	rewardGroup.DELETE("/leave", rewardController.Leave)

	userGroup := r.Group("/users", middleware.JWTAuthMiddleware())
	userGroup.GET("/profile", userController.Profile)
	userGroup.POST("/address", userController.AddAddress)
	userGroup.GET("/addresses", userController.ListAddresses)
	userGroup.DELETE("/address/:id", userController.DeleteAddress)
	userGroup.POST("/card", userController.AddCard)
	userGroup.GET("/cards", userController.ListCards)
	userGroup.DELETE("/card/:id", userController.DeleteCard)
}
