package middleware

import (
	"net/http"
	"spendtrack/internal/auth"
	"spendtrack/internal/models"
	"spendtrack/internal/repository"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	authService *auth.Service
	userRepo    repository.UserRepository
}

func NewAuthMiddleware(authService *auth.Service, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		userRepo:    userRepo,
	}
}

// unauthenticated writes the guard rejection envelope and aborts
func unauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, models.MessageResponse{Message: "Unauthenticated."})
	c.Abort()
}

// AuthRequired rejects any request without a valid bearer token. Every
// failure mode yields the same envelope so callers cannot probe token state.
func (m *AuthMiddleware) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthenticated(c)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthenticated(c)
			return
		}

		claims, err := m.authService.ValidateToken(parts[1])
		if err != nil {
			unauthenticated(c)
			return
		}

		userIDStr, ok := claims["user_id"].(string)
		if !ok {
			unauthenticated(c)
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			unauthenticated(c)
			return
		}

		user, err := m.userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			unauthenticated(c)
			return
		}

		c.Set("user", user)
		c.Set("is_admin", user.IsAdmin())

		c.Next()
	}
}

// AdminRequired rejects authenticated callers below the admin type,
// echoing the caller back in the denial envelope.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("is_admin")
		if !exists || !isAdmin.(bool) {
			c.JSON(http.StatusUnauthorized, models.PermissionDeniedResponse{
				Message: "Permission Denied",
				User:    auth.GetUserFromContext(c),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
