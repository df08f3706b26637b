// Package routes handles the setup and configuration of API routes
package routes

import (
	"database/sql"
	_ "spendtrack/docs" // swagger docs
	"spendtrack/internal/api/handlers"
	"spendtrack/internal/api/middleware"
	"spendtrack/internal/auth"
	"spendtrack/internal/config"
	"spendtrack/internal/repository/postgres"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes and their handlers
func SetupRoutes(cfg *config.Config, db *sql.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.Compression(middleware.DefaultCompressionConfig()))

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Swagger assets sit outside the rate limiter
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Use(middleware.NewRateLimiter(cfg).Middleware())

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	auditRepo := postgres.NewAuditLogRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)
	loginAttemptRepo := postgres.NewLoginAttemptRepository(db)
	currencyRepo := postgres.NewCurrencyRepository(db)
	expenditureRepo := postgres.NewExpenditureRepository(db)

	// Services
	authService := auth.NewService(cfg, refreshTokenRepo)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(authService, userRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(userRepo, authService, auditRepo, loginAttemptRepo, cfg)
	userHandler := handlers.NewUserHandler()
	currencyHandler := handlers.NewCurrencyHandler(currencyRepo, auditRepo)
	expenditureHandler := handlers.NewExpenditureHandler(expenditureRepo, auditRepo)
	auditLogHandler := handlers.NewAuditLogHandler(auditRepo)

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		// Auth routes
		api.POST("/login", authHandler.Login)
		api.POST("/register", authHandler.Register)
		api.POST("/refresh", authHandler.Refresh)
		api.POST("/logout", authMiddleware.AuthRequired(), authHandler.Logout)
		api.GET("/user", authMiddleware.AuthRequired(), userHandler.CurrentUser)

		// Currency routes: reads are public, writes need a token and
		// deletion needs an admin
		currencies := api.Group("/currencies")
		{
			currencies.GET("", currencyHandler.ListCurrencies)
			currencies.POST("", authMiddleware.AuthRequired(), currencyHandler.CreateCurrency)
			currencies.PUT("/:id", authMiddleware.AuthRequired(), currencyHandler.UpdateCurrency)
			currencies.DELETE("/:id", authMiddleware.AuthRequired(), authMiddleware.AdminRequired(), currencyHandler.DeleteCurrency)
		}

		// Expenditure routes: reads are public, mutations are scoped to
		// the owner (or an admin) inside the handler
		expenditures := api.Group("/expenditures")
		{
			expenditures.GET("", expenditureHandler.ListExpenditures)
			expenditures.POST("", authMiddleware.AuthRequired(), expenditureHandler.CreateExpenditure)
			expenditures.PUT("/:id", authMiddleware.AuthRequired(), expenditureHandler.UpdateExpenditure)
			expenditures.DELETE("/:id", authMiddleware.AuthRequired(), expenditureHandler.DeleteExpenditure)
		}

		// Audit trail is admin-only
		api.GET("/audit-logs", authMiddleware.AuthRequired(), authMiddleware.AdminRequired(), auditLogHandler.ListAuditLogs)
	}

	return r
}
