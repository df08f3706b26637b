// Package retention handles scheduled cleanup of aged records
package retention

import (
	"context"
	"fmt"
	"log"
	"spendtrack/internal/config"
	"spendtrack/internal/repository"
	"time"

	"github.com/robfig/cron/v3"
)

// Job prunes audit log entries past their retention window and removes
// expired refresh tokens on a cron schedule.
type Job struct {
	config           config.RetentionConfig
	auditLogRepo     repository.AuditLogRepository
	refreshTokenRepo repository.RefreshTokenRepository
	cron             *cron.Cron
}

// NewJob creates a new retention job
func NewJob(cfg config.RetentionConfig, auditLogRepo repository.AuditLogRepository, refreshTokenRepo repository.RefreshTokenRepository) *Job {
	// Cron scheduler with seconds disabled
	c := cron.New(cron.WithParser(cron.NewParser(
		cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
	)))

	return &Job{
		config:           cfg,
		auditLogRepo:     auditLogRepo,
		refreshTokenRepo: refreshTokenRepo,
		cron:             c,
	}
}

// Run executes a single cleanup pass
func (j *Job) Run(ctx context.Context) error {
	maxAge := time.Duration(j.config.AuditLogMaxAgeDays) * 24 * time.Hour
	if err := j.auditLogRepo.CleanupOld(ctx, maxAge); err != nil {
		return fmt.Errorf("failed to prune audit logs: %w", err)
	}

	removed, err := j.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove expired refresh tokens: %w", err)
	}
	if removed > 0 {
		log.Printf("Removed %d expired refresh tokens", removed)
	}

	return nil
}

// Start schedules the job and blocks until the context is cancelled
func (j *Job) Start(ctx context.Context) error {
	if j.config.Schedule == "" {
		return fmt.Errorf("retention job has no schedule configured")
	}

	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		log.Println("Running scheduled retention cleanup")
		if err := j.Run(ctx); err != nil {
			log.Printf("Error running retention cleanup: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule retention job: %w", err)
	}

	j.cron.Start()
	log.Printf("Retention job scheduled with schedule %s", j.config.Schedule)

	<-ctx.Done()
	log.Println("Stopping retention scheduler...")
	j.cron.Stop()

	return nil
}
