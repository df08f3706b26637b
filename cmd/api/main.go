// Package main provides the entry point for the SpendTrack API server
// @title SpendTrack API
// @version 1.0
// @description SpendTrack expenditure tracking API server.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token authentication
// @Security BearerAuth
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"spendtrack/internal/api/routes"
	"spendtrack/internal/config"
	"spendtrack/internal/database"
	"spendtrack/internal/repository/postgres"
	"spendtrack/internal/retention"
	"spendtrack/internal/validation"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	envFile := flag.String("env", ".env", "Path to env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && *envFile == ".env" {
		log.Printf("Warning: %v", err)
	}

	cfg := &config.Config{}
	if err := cfg.LoadFromEnv(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.Database); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	validation.Initialize()

	// Background retention job
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	retentionJob := retention.NewJob(
		cfg.Retention,
		postgres.NewAuditLogRepository(db),
		postgres.NewRefreshTokenRepository(db),
	)
	go func() {
		if err := retentionJob.Start(ctx); err != nil {
			log.Printf("Retention job stopped: %v", err)
		}
	}()

	router := routes.SetupRoutes(cfg, db)

	port, err := strconv.Atoi(cfg.API.Port)
	if err != nil {
		log.Fatalf("Invalid port number: %v", err)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server on port %d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	cancel()

	// Give outstanding requests 5 seconds to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
