package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"placeverse/internal/models"
	"placeverse/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "userID"   // Key to store user ID in context
	roleCtx             = "userRole" // Key to store role in context
)

// JWTAuthMiddleware creates a Gin middleware for JWT authentication.
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			log.Println("Auth middleware: Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			log.Println("Auth middleware: Invalid Authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		tokenString := headerParts[1]

		// Parse and validate the token
		token, err := jwt.ParseWithClaims(tokenString, &services.AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		claims, ok := token.Claims.(*services.AccessClaims)
		if !ok || !token.Valid {
			log.Println("Auth middleware: Invalid token claims or token is not valid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			log.Printf("Auth middleware: Error parsing user ID from token subject '%s': %v", claims.Subject, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identifier in token"})
			return
		}

		// Store identity in context for downstream handlers
		c.Set(userCtx, userID)
		c.Set(roleCtx, models.Role(claims.Role))
		c.Next()
	}
}

// RequireRole gates a route group to specific roles. Must run after
// JWTAuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := GetUserRoleFromContext(c)
		if err != nil {
			log.Printf("Role middleware: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		log.Printf("Role middleware: role %s denied (requires %v)", role, roles)
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}

// GetUserIDFromContext returns the authenticated user's ID.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	userIDAny, exists := c.Get(userCtx)
	if !exists {
		return uuid.Nil, errors.New("user ID not found in context")
	}

	userID, ok := userIDAny.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user ID in context is of invalid type")
	}

	return userID, nil
}

// GetUserRoleFromContext returns the authenticated user's role.
func GetUserRoleFromContext(c *gin.Context) (models.Role, error) {
	roleAny, exists := c.Get(roleCtx)
	if !exists {
		return "", errors.New("user role not found in context")
	}

	role, ok := roleAny.(models.Role)
	if !ok {
		return "", errors.New("user role in context is of invalid type")
	}

	return role, nil
}
