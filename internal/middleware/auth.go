package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"studyrooms/internal/models"
	"studyrooms/internal/service"
)

// AuthMiddleware authenticates API requests via the Authorization header.
// It checks for the presence and validity of a bearer access token and puts
// the token claims into the request context for handlers to use.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// Format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireRole checks if the authenticated user has the specified role.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "role not found in token"})
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok || role != requiredRole {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireStaff is a convenience guard for staff-only endpoints.
func RequireStaff() gin.HandlerFunc {
	return RequireRole(models.RoleStaff)
}

// CallerIdentity extracts the authenticated caller's id and staff flag from
// the context populated by AuthMiddleware.
func CallerIdentity(c *gin.Context) (string, bool) {
	userID := c.GetString("userID")
	return userID, c.GetString("role") == models.RoleStaff
}
