// Command ingestgames loads one team's season game log into the raw games
// table, replacing its prior contents.
package main

import (
	"context"
	"os"
	"time"

	"nuggets_v2/ingestion/internal/client"
	"nuggets_v2/ingestion/internal/config"
	"nuggets_v2/ingestion/internal/metrics"
	"nuggets_v2/ingestion/internal/pipeline"
	"nuggets_v2/ingestion/internal/repository"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.MustLoad()
	setupLogger(cfg)

	log.Info().
		Str("team_id", cfg.TeamID).
		Str("season", cfg.Season).
		Msg("Starting game log ingestion")

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

	res, err := pipeline.NewGames(cfg, api, db.GameLogs).Run(ctx)
	pushMetrics(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Game log ingestion failed")
	}

	log.Info().Int64("rows", res.Rows).Msg("Game log ingestion finished")
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
	if err := metrics.Push(cfg.PushgatewayURL, "ingestgames"); err != nil {
		log.Warn().Err(err).Msg("Failed to push metrics")
	}
}
