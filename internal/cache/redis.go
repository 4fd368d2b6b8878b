// Package cache provides a Redis-backed cache for box score responses.
// Final games never change, so a cached response is as good as a fresh
// fetch and saves a round trip to the stats API on re-runs.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nuggets_v2/ingestion/internal/client"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Config holds Redis connection settings
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisCache stores raw box score result tables keyed by game ID. Every
// read or write failure is treated as a miss; the cache never fails a run.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCache connects to Redis and verifies the connection. Callers are
// expected to degrade to running without a cache when this fails.
func NewRedisCache(ctx context.Context, cfg Config) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	log.Info().Str("addr", cfg.Addr).Dur("ttl", cfg.TTL).Msg("Redis cache connected")

	return &RedisCache{rdb: rdb, ttl: cfg.TTL}, nil
}

func boxScoreKey(gameID string) string {
	return "boxscore:" + gameID
}

// GetBoxScore returns the cached result table for a game, if present
func (c *RedisCache) GetBoxScore(ctx context.Context, gameID string) (*client.ResultTable, bool) {
	data, err := c.rdb.Get(ctx, boxScoreKey(gameID)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Warn().Err(err).Str("game_id", gameID).Msg("Cache read failed, treating as miss")
		return nil, false
	}

	var tbl client.ResultTable
	if err := json.Unmarshal(data, &tbl); err != nil {
		log.Warn().Err(err).Str("game_id", gameID).Msg("Cached box score is malformed, treating as miss")
		return nil, false
	}

	return &tbl, true
}

// SetBoxScore caches a game's result table. Failures are logged and ignored.
func (c *RedisCache) SetBoxScore(ctx context.Context, gameID string, tbl *client.ResultTable) {
	data, err := json.Marshal(tbl)
	if err != nil {
		log.Warn().Err(err).Str("game_id", gameID).Msg("Failed to marshal box score for cache")
		return
	}

	if err := c.rdb.Set(ctx, boxScoreKey(gameID), data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("game_id", gameID).Msg("Cache write failed")
	}
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.rdb.Close()
}
