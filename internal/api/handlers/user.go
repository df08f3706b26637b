package handlers

import (
	"net/http"
	"spendtrack/internal/auth"
	"spendtrack/internal/models"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related requests
type UserHandler struct{}

// NewUserHandler creates a new UserHandler
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// CurrentUser godoc
// @Summary Get the authenticated user
// @Description Returns the user owning the presented bearer token
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} models.MessageResponse "Unauthenticated"
// @Router /user [get]
func (h *UserHandler) CurrentUser(c *gin.Context) {
	user := auth.GetUserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.MessageResponse{Message: "Unauthenticated."})
		return
	}

	c.JSON(http.StatusOK, user)
}
