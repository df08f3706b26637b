package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"spendtrack/internal/auth"
	"spendtrack/internal/config"
	"spendtrack/internal/models"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter(t *testing.T) (*gin.Engine, *AuthMiddleware) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.JWTExpiration = 15

	// The repo is only touched once a token validates; rejection paths
	// never reach it.
	mw := NewAuthMiddleware(auth.NewService(cfg, nil), nil)

	r := gin.New()
	return r, mw
}

func TestAuthRequired_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"malformed header", "Bearer"},
		{"garbage token", "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, mw := authTestRouter(t)
			r.GET("/protected", mw.AuthRequired(), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var resp models.MessageResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Unauthenticated.", resp.Message)
		})
	}
}

func TestAdminRequired_DeniesNonAdmin(t *testing.T) {
	r, mw := authTestRouter(t)

	user := &models.User{ID: uuid.New(), Name: "Standard", Type: models.UserTypeStandard}
	r.GET("/admin", func(c *gin.Context) {
		c.Set("user", user)
		c.Set("is_admin", user.IsAdmin())
	}, mw.AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp models.PermissionDeniedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Permission Denied", resp.Message)
	require.NotNil(t, resp.User)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestAdminRequired_AllowsAdmin(t *testing.T) {
	r, mw := authTestRouter(t)

	user := &models.User{ID: uuid.New(), Name: "Admin", Type: models.UserTypeAdmin}
	r.GET("/admin", func(c *gin.Context) {
		c.Set("user", user)
		c.Set("is_admin", user.IsAdmin())
	}, mw.AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
