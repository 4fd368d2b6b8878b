// Command ingestboxscores loads per-player box scores for every game in the
// raw games table, one fetch per game, replacing the raw box score table.
// Run ingestgames first so the game list is current.
package main

import (
	"context"
	"os"
	"time"

	"nuggets_v2/ingestion/internal/cache"
	"nuggets_v2/ingestion/internal/client"
	"nuggets_v2/ingestion/internal/config"
	"nuggets_v2/ingestion/internal/metrics"
	"nuggets_v2/ingestion/internal/pipeline"
	"nuggets_v2/ingestion/internal/repository"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.MustLoad()
	setupLogger(cfg)

	log.Info().
		Dur("request_delay", cfg.RequestDelay).
		Msg("Starting box score ingestion")

	ctx := context.Background()

	db, err := repository.NewDatabase(ctx, cfg.DatabaseDSN(), repository.Tables{
		Schema:         cfg.DatabaseSchema,
		GameLogs:       cfg.GamesTable,
		PlayerGameLogs: cfg.PlayerGameLogTable,
		BoxScores:      cfg.BoxScoresTable,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	api := client.NewClient(cfg.NBAStatsBaseURL, cfg.NBAStatsTimeout)
	throttle := rate.NewLimiter(rate.Every(cfg.RequestDelay), 1)

	var respCache pipeline.ResponseCache
	if cfg.CacheEnabled {
		rc, err := cache.NewRedisCache(ctx, cache.Config{
			Addr:     cfg.RedisAddr(),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.CacheTTL,
		})
		if err != nil {
			log.Warn().Err(err).Msg("Failed to connect to Redis - continuing without cache")
		} else {
			defer rc.Close()
			respCache = rc
		}
	}

	res, err := pipeline.NewBoxscores(db.GameLogs, api, db.BoxScores, throttle, respCache).Run(ctx)
	pushMetrics(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Box score ingestion failed")
	}

	log.Info().
		Int("games", res.Items).
		Int("failed", res.Failures).
		Int64("rows", res.Rows).
		Msg("Box score ingestion finished")
}

func setupLogger(cfg *config.Config) {
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func pushMetrics(cfg *config.Config) {
	if cfg.PushgatewayURL == "" {
		return
	}
	if err := metrics.Push(cfg.PushgatewayURL, "ingestboxscores"); err != nil {
		log.Warn().Err(err).Msg("Failed to push metrics")
	}
}
