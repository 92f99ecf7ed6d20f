package main

import (
	"fmt"
	"log"
	"net/http"

	"cyberdeck/backend/internal/auth"
	"cyberdeck/backend/internal/config"
	"cyberdeck/backend/internal/database"
	"cyberdeck/backend/internal/handler"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "cyberdeck/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Cyberdeck API
// @version         1.0
// @description     This is the API for the Cyberdeck game store.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
		}

		// Public catalog routes; a token, when present, marks owned games
		gameRoutes := apiV1.Group("/games")
		gameRoutes.Use(auth.OptionalAuthMiddleware())
		{
			gameRoutes.GET("", handler.GetGames)
			gameRoutes.GET("/:id", handler.GetGameByID)
		}

		// Review routes: reading is public, writing requires a session
		reviewRoutes := apiV1.Group("/reviews")
		{
			reviewRoutes.GET("", handler.GetReviews)
			reviewRoutes.POST("", auth.AuthMiddleware(), handler.CreateReview)
		}

		// Library routes (protected)
		libraryRoutes := apiV1.Group("/library")
		libraryRoutes.Use(auth.AuthMiddleware())
		{
			libraryRoutes.GET("", handler.GetLibrary)
			libraryRoutes.POST("/add", handler.AddToLibrary)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", handler.GetMe)
		}

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			adminRoutes.GET("/stats", handler.GetAdminStats)

			// Games CRUD (admin-only parts)
			adminGameRoutes := adminRoutes.Group("/games")
			{
				adminGameRoutes.POST("", handler.CreateGame)
				adminGameRoutes.PUT("/:id", handler.UpdateGame)
				adminGameRoutes.DELETE("/:id", handler.DeleteGame)
			}

			// Review moderation
			adminRoutes.DELETE("/reviews/:id", handler.DeleteReview)
		}
	}

	fmt.Printf("Server is running on %s\n", config.AppConfig.ServerAddress)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ServerAddress))
}
