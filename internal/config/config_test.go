package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://stats.nba.com/stats", cfg.NBAStatsBaseURL)
	assert.Equal(t, 600*time.Millisecond, cfg.RequestDelay)
	assert.Equal(t, "1610612743", cfg.TeamID)
	assert.Equal(t, "2023-24", cfg.Season)
	assert.Equal(t, "public", cfg.DatabaseSchema)
	assert.Equal(t, "raw_nba_games", cfg.GamesTable)
	assert.Equal(t, "raw_nba_player_game_logs", cfg.PlayerGameLogTable)
	assert.Equal(t, "raw_nba_boxscores", cfg.BoxScoresTable)
	assert.False(t, cfg.CacheEnabled)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadRequiresPassword(t *testing.T) {
	t.Setenv("DATABASE_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateRejectsNegativeDelay(t *testing.T) {
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("NBA_REQUEST_DELAY", "-1s")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateRequiresCronWhenScheduled(t *testing.T) {
	cfg := &Config{
		DatabasePassword: "secret",
		TeamID:           "1610612743",
		Season:           "2023-24",
		EnableScheduler:  true,
		RefreshCron:      "",
	}

	assert.Error(t, cfg.Validate())
}

func TestDatabaseDSN(t *testing.T) {
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("DATABASE_PORT", "5433")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t,
		"host=db.internal port=5433 user=nuggets password=secret dbname=nuggets_db sslmode=disable",
		cfg.DatabaseDSN(),
	)
}

func TestRedisAddr(t *testing.T) {
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cache.internal:6380", cfg.RedisAddr())
}
