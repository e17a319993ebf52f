package routes

import (
	"log"

	"placeverse/internal/api/handlers"
	"placeverse/internal/api/middleware"
	"placeverse/internal/app"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// Create handlers
	authHandler := handlers.NewAuthHandler(app.UserService, app.Validator)
	jobHandler := handlers.NewJobHandler(app.JobService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(app.ApplicationService, app.Validator)
	uploadHandler := handlers.NewUploadHandler(app.ResumeStore, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(apiV1, authHandler, authMiddleware)
	RegisterJobRoutes(apiV1, jobHandler, authMiddleware)
	RegisterApplicationRoutes(apiV1, applicationHandler, authMiddleware)
	RegisterUploadRoutes(apiV1, uploadHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
