// Package testutil provides utilities for testing
package testutil

import (
	"context"
	"database/sql"
	"spendtrack/internal/auth"
	"spendtrack/internal/config"
	"spendtrack/internal/models"
	"spendtrack/internal/repository"
	"spendtrack/internal/repository/postgres"
	"spendtrack/internal/testutil/db"
	"spendtrack/internal/validation"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// LoadTestConfig loads the test configuration
func LoadTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return db.LoadTestConfig(t)
}

// TestContext holds common test dependencies
type TestContext struct {
	T                *testing.T
	DB               *sql.DB
	Config           *config.Config
	UserRepo         repository.UserRepository
	CurrencyRepo     repository.CurrencyRepository
	ExpenditureRepo  repository.ExpenditureRepository
	LoginAttemptRepo repository.LoginAttemptRepository
	AuditRepo        repository.AuditLogRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	AuthService      *auth.Service
}

// NewTestContext creates a new test context with all dependencies
func NewTestContext(t *testing.T) *TestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)
	validation.Initialize()

	cfg := LoadTestConfig(t)
	testDB := db.SetupTestDB(t, &cfg.Database)

	userRepo := postgres.NewUserRepository(testDB)
	currencyRepo := postgres.NewCurrencyRepository(testDB)
	expenditureRepo := postgres.NewExpenditureRepository(testDB)
	loginAttemptRepo := postgres.NewLoginAttemptRepository(testDB)
	auditRepo := postgres.NewAuditLogRepository(testDB)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(testDB)

	authService := auth.NewService(cfg, refreshTokenRepo)

	tc := &TestContext{
		T:                t,
		DB:               testDB,
		Config:           cfg,
		UserRepo:         userRepo,
		CurrencyRepo:     currencyRepo,
		ExpenditureRepo:  expenditureRepo,
		LoginAttemptRepo: loginAttemptRepo,
		AuditRepo:        auditRepo,
		RefreshTokenRepo: refreshTokenRepo,
		AuthService:      authService,
	}

	t.Cleanup(func() {
		tc.cleanup()
	})

	return tc
}

// cleanup performs necessary cleanup after tests
func (tc *TestContext) cleanup() {
	if tc.DB != nil {
		if err := db.CleanupTestDB(tc.DB); err != nil {
			tc.T.Errorf("Failed to cleanup test database: %v", err)
		}
		tc.DB.Close()
	}
}

// CreateTestUser creates a test user with the given details and returns the created user
func (tc *TestContext) CreateTestUser(name, email, password string, userType int) *models.User {
	tc.T.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(tc.T, err, "Failed to hash password")

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Type:     userType,
	}

	err = tc.UserRepo.Create(context.Background(), user)
	require.NoError(tc.T, err, "Failed to create test user")

	return user
}

// GetTestJWT generates a JWT token for testing
func (tc *TestContext) GetTestJWT(userID uuid.UUID) string {
	tc.T.Helper()

	user, err := tc.UserRepo.GetByID(context.Background(), userID)
	require.NoError(tc.T, err, "Failed to get user")

	token, err := tc.AuthService.GenerateToken(user)
	require.NoError(tc.T, err, "Failed to generate test JWT")
	return token
}

// CreateTestCurrency creates a test currency and returns it
func (tc *TestContext) CreateTestCurrency(name, acronym string) *models.Currency {
	tc.T.Helper()

	currency := &models.Currency{
		Name:    name,
		Acronym: acronym,
	}

	err := tc.CurrencyRepo.Create(context.Background(), currency)
	require.NoError(tc.T, err, "Failed to create test currency")

	return currency
}

// CreateTestExpenditure creates a test expenditure owned by the given user and returns it
func (tc *TestContext) CreateTestExpenditure(userID uuid.UUID, amount string, description string, currencyID *int64) *models.Expenditure {
	tc.T.Helper()

	expenditure := &models.Expenditure{
		UserID:      userID,
		CurrencyID:  currencyID,
		Amount:      decimal.RequireFromString(amount),
		Description: description,
	}

	err := tc.ExpenditureRepo.Create(context.Background(), expenditure)
	require.NoError(tc.T, err, "Failed to create test expenditure")

	return expenditure
}

// TruncateTable empties the given table, restarting any identity sequences
func (tc *TestContext) TruncateTable(table string) {
	tc.T.Helper()

	_, err := tc.DB.Exec("TRUNCATE TABLE " + table + " RESTART IDENTITY CASCADE")
	require.NoError(tc.T, err, "Failed to truncate table")
}
