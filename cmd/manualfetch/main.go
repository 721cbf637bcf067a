// Command manualfetch runs one ingestion flow to completion and exits.
// Useful for backfilling after downtime or testing a flow against a fresh
// database without waiting for the cron schedule.
package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"tftladder/ingestion/internal/cache"
	"tftladder/ingestion/internal/client"
	"tftladder/ingestion/internal/config"
	"tftladder/ingestion/internal/repository"
	"tftladder/ingestion/internal/scheduler"

	"github.com/rs/zerolog/log"
)

func main() {
	flowName := flag.String("flow", "", fmt.Sprintf("flow to run: %s",
		strings.Join([]string{scheduler.FlowPlayers, scheduler.FlowLeaderboard, scheduler.FlowStatic}, ", ")))
	flag.Parse()

	if *flowName == "" {
		log.Fatal().Msg("-flow is required")
	}

	ctx := context.Background()
	cfg := config.MustLoad()

	apiClient := client.NewClient(client.Options{
		RiotBaseURL:    cfg.RiotBaseURL,
		ProfileBaseURL: cfg.ProfileBaseURL,
		DDragonBaseURL: cfg.DDragonBaseURL,
		APIKey:         cfg.RiotAPIKey,
		Timeout:        cfg.APITimeout,
	})

	db, err := repository.NewDatabase(ctx, repository.Config{
		Host:     cfg.DatabaseHost,
		Port:     strconv.Itoa(cfg.DatabasePort),
		User:     cfg.DatabaseUser,
		Password: cfg.DatabasePassword,
		Database: cfg.DatabaseName,
		SSLMode:  cfg.DatabaseSSLMode,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	log.Info().Msg("Validating service health...")
	if err := db.Health(ctx); err != nil {
		log.Fatal().Err(err).Msg("Database health check failed")
	}

	redisCache, err := cache.NewRedisCache(ctx, cache.Config{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to connect to Redis - continuing without cache")
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	sched := scheduler.NewScheduler(cfg, apiClient, db, redisCache)

	if err := sched.RunFlow(ctx, *flowName); err != nil {
		log.Fatal().Err(err).Str("flow", *flowName).Msg("Flow failed")
	}

	log.Info().Str("flow", *flowName).Msg("Manual fetch complete.")
}
