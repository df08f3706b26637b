package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	var cfg Config
	require.NoError(t, cfg.LoadFromEnv())

	assert.Equal(t, "8080", cfg.API.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "spendtrack", cfg.Database.DBName)
	assert.Equal(t, 15, cfg.Auth.JWTExpiration)
	assert.True(t, cfg.Auth.RegistrationOpen)
	assert.Equal(t, "0 3 * * *", cfg.Retention.Schedule)
	assert.Equal(t, 90, cfg.Retention.AuditLogMaxAgeDays)
	assert.Equal(t, 1000, cfg.RateLimit.Requests)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("API_PORT", "9090")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("JWT_EXPIRATION_MINUTES", "30")
	t.Setenv("REGISTRATION_OPEN", "false")
	t.Setenv("AUDIT_LOG_MAX_AGE_DAYS", "7")

	var cfg Config
	require.NoError(t, cfg.LoadFromEnv())

	assert.Equal(t, "9090", cfg.API.Port)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, 30, cfg.Auth.JWTExpiration)
	assert.False(t, cfg.Auth.RegistrationOpen)
	assert.Equal(t, 7, cfg.Retention.AuditLogMaxAgeDays)
}

func TestLoadFromEnv_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	var cfg Config
	err := cfg.LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestConnString(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "app",
		Password: "secret",
		DBName:   "spendtrack",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=spendtrack sslmode=disable", d.ConnString())
}
