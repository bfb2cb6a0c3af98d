package scheduler

import (
	"context"

	"campus-teamup/internal/logger"
	"campus-teamup/internal/service"

	"github.com/robfig/cron/v3"
)

// Every minute; the cache TTL is short, so the warm job just keeps the pool
// from going cold between ranking requests.
const warmPoolSpec = "@every 1m"

// Scheduler runs the periodic cache-warm job for the public card pool.
type Scheduler struct {
	cron         *cron.Cron
	matchService *service.MatchService
}

func NewScheduler(matchService *service.MatchService) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		matchService: matchService,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(warmPoolSpec, func() {
		ctx := context.Background()
		if err := s.matchService.WarmPool(ctx); err != nil {
			logger.Warn().Err(err).Msg("public card pool warm failed")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Info().Str("spec", warmPoolSpec).Msg("scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	logger.Info().Msg("scheduler stopped")
}
