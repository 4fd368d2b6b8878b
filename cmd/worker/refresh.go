package main

import (
	"context"
	"errors"
	"time"

	"nuggets_v2/ingestion/internal/client"
	"nuggets_v2/ingestion/internal/config"
	"nuggets_v2/ingestion/internal/pipeline"
	"nuggets_v2/ingestion/internal/repository"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// fullRefresh runs the three pipelines in dependency order. Games goes
// first because box scores read their work list from the raw games table;
// player game logs are independent and run regardless. A pipeline failure
// is logged and does not stop the independent pipelines, but box scores
// are skipped when the game list refresh failed.
func fullRefresh(ctx context.Context, cfg *config.Config, api *client.Client, db *repository.Database, respCache pipeline.ResponseCache) error {
	started := time.Now()
	var errs []error

	gamesOK := true
	if _, err := pipeline.NewGames(cfg, api, db.GameLogs).Run(ctx); err != nil {
		log.Error().Err(err).Msg("Game log ingestion failed")
		errs = append(errs, err)
		gamesOK = false
	}

	if ctx.Err() != nil {
		return errors.Join(append(errs, ctx.Err())...)
	}

	if _, err := pipeline.NewPlayerLogs(cfg, api, db.PlayerGameLogs).Run(ctx); err != nil {
		log.Error().Err(err).Msg("Player game log ingestion failed")
		errs = append(errs, err)
	}

	if ctx.Err() != nil {
		return errors.Join(append(errs, ctx.Err())...)
	}

	if !gamesOK {
		log.Warn().Msg("Skipping box scores: game list refresh failed")
	} else {
		throttle := rate.NewLimiter(rate.Every(cfg.RequestDelay), 1)
		if _, err := pipeline.NewBoxscores(db.GameLogs, api, db.BoxScores, throttle, respCache).Run(ctx); err != nil {
			log.Error().Err(err).Msg("Box score ingestion failed")
			errs = append(errs, err)
		}
	}

	log.Info().
		Dur("duration", time.Since(started)).
		Int("failed_pipelines", len(errs)).
		Msg("Full refresh finished")

	return errors.Join(errs...)
}
