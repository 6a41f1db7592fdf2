package services

import (
	"context"
	"log"
	"time"

	"kampus-admin/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled background jobs
type CronService struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	scheduler        *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(refreshTokenRepo repositories.RefreshTokenRepository) *CronService {
	return &CronService{
		refreshTokenRepo: refreshTokenRepo,
		scheduler:        cron.New(),
	}
}

// Start registers and launches all scheduled jobs
func (s *CronService) Start() {
	// Purge expired refresh tokens daily at 03:00
	s.scheduler.AddFunc("0 3 * * *", s.purgeExpiredTokens)

	s.scheduler.Start()
	log.Println("🚀 CronService started")
}

// Stop gracefully stops the scheduler
func (s *CronService) Stop() {
	s.scheduler.Stop()
	log.Println("🛑 CronService stopped")
}

// purgeExpiredTokens deletes refresh tokens past their expiry. Revoked but
// unexpired tokens stay until they expire, so replay of a rotated token can
// still be detected.
func (s *CronService) purgeExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := s.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		log.Printf("❌ Refresh token purge error: %v", err)
		return
	}

	if deleted > 0 {
		log.Printf("🗑️ Purged %d expired refresh tokens", deleted)
	}
}
