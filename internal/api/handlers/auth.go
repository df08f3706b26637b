package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"spendtrack/internal/auth"
	"spendtrack/internal/config"
	"spendtrack/internal/models"
	"spendtrack/internal/repository"
	"spendtrack/internal/validation"
	"time"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	userRepo         repository.UserRepository
	authService      *auth.Service
	auditRepo        repository.AuditLogRepository
	loginAttemptRepo repository.LoginAttemptRepository
	config           *config.Config
}

// NewAuthHandler creates a new authentication handler with the given dependencies
func NewAuthHandler(
	userRepo repository.UserRepository,
	authService *auth.Service,
	auditRepo repository.AuditLogRepository,
	loginAttemptRepo repository.LoginAttemptRepository,
	config *config.Config,
) *AuthHandler {
	return &AuthHandler{
		userRepo:         userRepo,
		authService:      authService,
		auditRepo:        auditRepo,
		loginAttemptRepo: loginAttemptRepo,
		config:           config,
	}
}

// Login godoc
// @Summary User login
// @Description Authenticate user and return access and refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.LoginResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 422 {object} models.ValidationErrorResponse "Validation failure"
// @Failure 429 {object} models.ErrorResponse "Too many failed attempts"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	ipAddress := c.ClientIP()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validation.HandleBindError(c, err)
		return
	}

	user, err := h.userRepo.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
		return
	}

	// Lock out accounts with too many recent failures
	cutoff := time.Now().Add(-repository.LockoutDuration)
	recentAttempts, err := h.loginAttemptRepo.GetRecentAttempts(c.Request.Context(), user.ID, cutoff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to process login"})
		return
	}
	if recentAttempts >= repository.MaxLoginAttempts {
		c.JSON(http.StatusTooManyRequests, models.ErrorResponse{Error: "too many failed login attempts"})
		return
	}

	if err := h.authService.ComparePasswords(user.Password, req.Password); err != nil {
		if err := h.loginAttemptRepo.Create(c.Request.Context(), user.ID, false, ipAddress, time.Now()); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to process login"})
			return
		}
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
		return
	}

	if err := h.loginAttemptRepo.ClearAttempts(c.Request.Context(), user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to process login"})
		return
	}

	if err := h.userRepo.UpdateLastLogin(c.Request.Context(), user.ID, time.Now()); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update login time"})
		return
	}

	h.audit(c, user, models.AuditActionLogin, fmt.Sprintf("User %s logged in", user.Email))

	accessToken, err := h.authService.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to generate access token"})
		return
	}

	refreshToken, err := h.authService.GenerateRefreshToken(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to generate refresh token"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Register godoc
// @Summary Register a new user
// @Description Creates a new user account. The first registered user becomes an admin.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration details"
// @Success 201 {object} models.User "User created"
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 403 {object} models.ErrorResponse "Registration closed"
// @Failure 409 {object} models.ErrorResponse "Email already registered"
// @Failure 422 {object} models.ValidationErrorResponse "Validation failure"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	if !h.config.Auth.RegistrationOpen {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "registration is closed"})
		return
	}

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validation.HandleBindError(c, err)
		return
	}

	hashed, err := h.authService.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to process registration"})
		return
	}

	count, err := h.userRepo.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to process registration"})
		return
	}

	// The first account bootstraps the admin
	userType := models.UserTypeStandard
	if count == 0 {
		userType = models.UserTypeAdmin
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Type:     userType,
	}

	if err := h.userRepo.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create user"})
		return
	}

	h.audit(c, user, models.AuditActionCreate, fmt.Sprintf("User %s registered", user.Email))

	c.JSON(http.StatusCreated, user)
}

// Refresh godoc
// @Summary Refresh access token
// @Description Exchanges a valid refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.TokenRefreshRequest true "Refresh token"
// @Success 200 {object} models.LoginResponse "New token pair"
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 401 {object} models.ErrorResponse "Invalid or expired refresh token"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req models.TokenRefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validation.HandleBindError(c, err)
		return
	}

	userID, err := h.authService.ValidateRefreshToken(c.Request.Context(), req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid refresh token"})
		return
	}

	user, err := h.userRepo.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid refresh token"})
		return
	}

	// Rotate: the presented token is spent
	if err := h.authService.DeleteRefreshToken(c.Request.Context(), req.Token); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to refresh token"})
		return
	}

	accessToken, err := h.authService.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to generate access token"})
		return
	}

	refreshToken, err := h.authService.GenerateRefreshToken(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to generate refresh token"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Logout godoc
// @Summary Log out
// @Description Revokes all refresh tokens for the authenticated user
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.MessageResponse "Logged out"
// @Failure 401 {object} models.MessageResponse "Unauthenticated"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	user := auth.GetUserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.MessageResponse{Message: "Unauthenticated."})
		return
	}

	if err := h.authService.DeleteAllRefreshTokens(c.Request.Context(), user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to log out"})
		return
	}

	h.audit(c, user, models.AuditActionLogout, fmt.Sprintf("User %s logged out", user.Email))

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Logged out."})
}

func (h *AuthHandler) audit(c *gin.Context, user *models.User, action models.AuditAction, description string) {
	entry := models.CreateAuditLogRequest{
		UserID:      &user.ID,
		Action:      action,
		EntityType:  "user",
		EntityID:    user.ID.String(),
		Description: description,
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	}
	if err := h.auditRepo.Create(c.Request.Context(), &entry); err != nil {
		log.Printf("Failed to write audit log entry: %v", err)
	}
}
