package scheduler

import (
	"context"
	"fmt"
	"time"

	"tftladder/ingestion/internal/cache"
	"tftladder/ingestion/internal/client"
	"tftladder/ingestion/internal/config"
	"tftladder/ingestion/internal/metrics"
	"tftladder/ingestion/internal/repository"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Flow names accepted by RunFlow and used as metric labels
const (
	FlowPlayers     = "players"
	FlowLeaderboard = "leaderboard"
	FlowStatic      = "static"
)

// Scheduler sequences the three ingestion flows on their fixed intervals:
// player refresh daily, leaderboard every six hours, static catalog weekly.
// Flows are independent, idempotent and safely re-runnable; a failed cycle
// simply waits for the next tick.
type Scheduler struct {
	cfg    *config.Config
	client *client.Client
	db     *repository.Database
	cache  *cache.RedisCache
	cron   *cron.Cron
}

// NewScheduler creates a new scheduler instance
func NewScheduler(cfg *config.Config, client *client.Client, db *repository.Database, redisCache *cache.RedisCache) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		client: client,
		db:     db,
		cache:  redisCache,
		cron:   cron.New(),
	}
}

// Start registers the cron jobs and starts the scheduler
func (s *Scheduler) Start(ctx context.Context) error {
	log.Info().Msg("Scheduler starting...")

	jobs := []struct {
		flow string
		spec string
	}{
		{FlowPlayers, s.cfg.PlayerRefreshCron},
		{FlowLeaderboard, s.cfg.LeaderboardCron},
		{FlowStatic, s.cfg.StaticDataCron},
	}

	for _, job := range jobs {
		flow := job.flow
		if _, err := s.cron.AddFunc(job.spec, func() {
			if err := s.RunFlow(ctx, flow); err != nil {
				log.Error().Err(err).Str("flow", flow).Msg("Scheduled flow failed")
			}
		}); err != nil {
			return fmt.Errorf("failed to schedule %s flow: %w", flow, err)
		}
		log.Info().Str("flow", flow).Str("schedule", job.spec).Msg("Flow scheduled")
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for any running job to finish
func (s *Scheduler) Stop() {
	log.Info().Msg("Stopping scheduler...")
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	log.Info().Msg("Scheduler stopped")
}

// RunFlow runs one named flow to completion
func (s *Scheduler) RunFlow(ctx context.Context, flow string) error {
	start := time.Now()

	var err error
	switch flow {
	case FlowPlayers:
		err = s.RefreshPlayers(ctx)
	case FlowLeaderboard:
		err = s.RefreshLeaderboard(ctx)
	case FlowStatic:
		err = s.RefreshStaticData(ctx)
	default:
		return fmt.Errorf("unknown flow %q", flow)
	}

	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.FlowRunsTotal.WithLabelValues(flow, status).Inc()
	metrics.FlowDuration.WithLabelValues(flow).Observe(time.Since(start).Seconds())

	log.Info().
		Str("flow", flow).
		Str("status", status).
		Dur("duration", time.Since(start)).
		Msg("Flow cycle complete")

	return err
}
