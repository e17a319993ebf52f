package routes

import (
	"placeverse/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers all identity and profile routes.
func RegisterAuthRoutes(
	rg *gin.RouterGroup,
	authHandler handlers.AuthHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)

		// Routes below require a valid access token
		authGroup.POST("/logout", authMiddleware, authHandler.Logout)
		authGroup.GET("/me", authMiddleware, authHandler.Me)
		authGroup.PUT("/me/profile", authMiddleware, authHandler.UpdateProfile)
	}
}
