package auth

import (
	"spendtrack/internal/config"
	"spendtrack/internal/models"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T) *Service {
	t.Helper()
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.JWTExpiration = 15
	return NewService(cfg, nil)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(t)

	user := &models.User{
		ID:    uuid.New(),
		Email: "admin@example.com",
		Type:  models.UserTypeAdmin,
	}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID.String(), claims["user_id"])
	assert.Equal(t, user.Email, claims["email"])
	assert.Equal(t, true, claims["is_admin"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := testService(t)

	user := &models.User{ID: uuid.New(), Email: "user@example.com"}
	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	other := &config.Config{}
	other.Auth.JWTSecret = "different-secret"
	other.Auth.JWTExpiration = 15

	_, err = NewService(other, nil).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.JWTExpiration = -1
	svc := NewService(cfg, nil)

	user := &models.User{ID: uuid.New(), Email: "user@example.com"}
	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := testService(t)
	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashAndComparePasswords(t *testing.T) {
	svc := testService(t)

	hash, err := svc.HashPassword("mypassword123")
	require.NoError(t, err)
	require.NotEqual(t, "mypassword123", hash)

	assert.NoError(t, svc.ComparePasswords(hash, "mypassword123"))
	assert.Error(t, svc.ComparePasswords(hash, "wrongpassword"))
}
