package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	// NBA Stats API
	NBAStatsBaseURL string        `envconfig:"NBA_STATS_BASE_URL" default:"https://stats.nba.com/stats"`
	NBAStatsTimeout time.Duration `envconfig:"NBA_STATS_TIMEOUT" default:"30s"`
	RequestDelay    time.Duration `envconfig:"NBA_REQUEST_DELAY" default:"600ms"`

	// Ingestion scope
	TeamID     string `envconfig:"NBA_TEAM_ID" default:"1610612743"`
	Season     string `envconfig:"NBA_SEASON" default:"2023-24"`
	SeasonType string `envconfig:"NBA_SEASON_TYPE" default:"Regular Season"`

	// Database
	DatabaseHost     string `envconfig:"DATABASE_HOST" default:"localhost"`
	DatabasePort     int    `envconfig:"DATABASE_PORT" default:"5432"`
	DatabaseName     string `envconfig:"DATABASE_NAME" default:"nuggets_db"`
	DatabaseUser     string `envconfig:"DATABASE_USER" default:"nuggets"`
	DatabasePassword string `envconfig:"DATABASE_PASSWORD" required:"true"`
	DatabaseSSLMode  string `envconfig:"DATABASE_SSL_MODE" default:"disable"`

	// Destination tables
	DatabaseSchema     string `envconfig:"DATABASE_SCHEMA" default:"public"`
	GamesTable         string `envconfig:"GAMES_TABLE" default:"raw_nba_games"`
	PlayerGameLogTable string `envconfig:"PLAYER_GAME_LOG_TABLE" default:"raw_nba_player_game_logs"`
	BoxScoresTable     string `envconfig:"BOX_SCORES_TABLE" default:"raw_nba_boxscores"`

	// Redis (box score response cache)
	CacheEnabled  bool          `envconfig:"CACHE_ENABLED" default:"false"`
	CacheTTL      time.Duration `envconfig:"CACHE_TTL" default:"24h"`
	RedisHost     string        `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int           `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`

	// Application
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Scheduler (worker mode)
	EnableScheduler bool   `envconfig:"ENABLE_SCHEDULER" default:"false"`
	RefreshCron     string `envconfig:"REFRESH_CRON" default:"0 7 * * *"`

	// Monitoring
	EnableMetrics  bool   `envconfig:"ENABLE_METRICS" default:"true"`
	MetricsPort    int    `envconfig:"METRICS_PORT" default:"9090"`
	PushgatewayURL string `envconfig:"PUSHGATEWAY_URL" default:""`
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
	if c.DatabasePassword == "" {
		return fmt.Errorf("DATABASE_PASSWORD is required")
	}

	if c.TeamID == "" {
		return fmt.Errorf("NBA_TEAM_ID is required")
	}

	if c.Season == "" {
		return fmt.Errorf("NBA_SEASON is required")
	}

	if c.RequestDelay < 0 {
		return fmt.Errorf("NBA_REQUEST_DELAY must not be negative")
	}

	if c.EnableScheduler && c.RefreshCron == "" {
		return fmt.Errorf("REFRESH_CRON is required when the scheduler is enabled")
	}

	return nil
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
