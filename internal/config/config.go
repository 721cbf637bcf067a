package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	// Riot API (leaderboard + match detail endpoints)
	RiotAPIKey  string `envconfig:"RIOT_API_KEY" required:"true"`
	RiotRegion  string `envconfig:"RIOT_REGION" default:"vn2"`
	RiotBaseURL string `envconfig:"RIOT_BASE_URL" default:"https://vn2.api.riotgames.com"`

	// Profile API (community stats site, unauthenticated)
	ProfileBaseURL string `envconfig:"PROFILE_BASE_URL" default:"https://api.metatft.com/public"`
	ProfileSource  string `envconfig:"PROFILE_SOURCE" default:"full_profile"`
	GameSet        string `envconfig:"GAME_SET" default:"TFTSet14"`

	// Data Dragon CDN (static catalog)
	DDragonBaseURL string `envconfig:"DDRAGON_BASE_URL" default:"https://ddragon.leagueoflegends.com"`

	// HTTP client
	APITimeout time.Duration `envconfig:"API_TIMEOUT" default:"30s"`

	// Database
	DatabaseHost     string `envconfig:"DATABASE_HOST" default:"localhost"`
	DatabasePort     int    `envconfig:"DATABASE_PORT" default:"5432"`
	DatabaseName     string `envconfig:"DATABASE_NAME" default:"tftladder"`
	DatabaseUser     string `envconfig:"DATABASE_USER" default:"tft_user"`
	DatabasePassword string `envconfig:"DATABASE_PASSWORD" required:"true"`
	DatabaseSSLMode  string `envconfig:"DATABASE_SSL_MODE" default:"disable"`

	// Redis
	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// Application
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Tracked players, comma-separated riot IDs ("Name#TAG,Other#TAG2")
	TrackedPlayers []string `envconfig:"TRACKED_PLAYERS" default:""`

	// Number of recent matches ingested per player refresh
	MatchWindow int `envconfig:"MATCH_WINDOW" default:"5"`

	// Scheduler
	EnableScheduler    bool   `envconfig:"ENABLE_SCHEDULER" default:"true"`
	InitialSyncEnabled bool   `envconfig:"INITIAL_SYNC_ENABLED" default:"true"`
	PlayerRefreshCron  string `envconfig:"PLAYER_REFRESH_CRON" default:"0 3 * * *"`
	LeaderboardCron    string `envconfig:"LEADERBOARD_CRON" default:"0 */6 * * *"`
	StaticDataCron     string `envconfig:"STATIC_DATA_CRON" default:"0 4 * * 1"`

	// Monitoring
	EnableMetrics bool `envconfig:"ENABLE_METRICS" default:"true"`
	MetricsPort   int  `envconfig:"METRICS_PORT" default:"9090"`
}

// Load loads configuration from environment variables
// It first attempts to load from .env file if in development mode
func Load() (*Config, error) {
	// Try to load .env file (ignore error if doesn't exist)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.RiotAPIKey == "" {
		return fmt.Errorf("RIOT_API_KEY is required")
	}

	if c.DatabasePassword == "" {
		return fmt.Errorf("DATABASE_PASSWORD is required")
	}

	if c.MatchWindow < 1 {
		return fmt.Errorf("MATCH_WINDOW must be at least 1")
	}

	for _, id := range c.TrackedPlayers {
		if id == "" {
			continue
		}
		if _, _, err := SplitRiotID(id); err != nil {
			return err
		}
	}

	return nil
}

// SplitRiotID splits a "Name#TAG" riot ID into its name and tag parts.
func SplitRiotID(riotID string) (name, tag string, err error) {
	idx := strings.LastIndex(riotID, "#")
	if idx <= 0 || idx == len(riotID)-1 {
		return "", "", fmt.Errorf("invalid riot ID %q: expected Name#TAG", riotID)
	}
	return riotID[:idx], riotID[idx+1:], nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// MustLoad loads configuration or panics on error
// Use this in main() where we want to fail fast
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
