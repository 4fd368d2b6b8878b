package pipeline

import (
	"context"
	"fmt"
	"time"

	"nuggets_v2/ingestion/internal/client"
	"nuggets_v2/ingestion/internal/config"
	"nuggets_v2/ingestion/internal/metrics"
	"nuggets_v2/ingestion/internal/models"
	"nuggets_v2/ingestion/internal/transform"

	"github.com/rs/zerolog/log"
)

// PlayerGameLogSource fetches the league-wide player game log
type PlayerGameLogSource interface {
	LeaguePlayerGameLog(ctx context.Context, season, seasonType string) (*client.ResultTable, error)
}

// PlayerGameLogSink replace-writes the raw player game log table
type PlayerGameLogSink interface {
	Replace(ctx context.Context, rows []models.PlayerGameLogRow) (int64, error)
}

// PlayerLogs loads the league-wide player game log into the raw player game
// log table
type PlayerLogs struct {
	season     string
	seasonType string
	source     PlayerGameLogSource
	sink       PlayerGameLogSink
}

// NewPlayerLogs creates the player game log pipeline
func NewPlayerLogs(cfg *config.Config, source PlayerGameLogSource, sink PlayerGameLogSink) *PlayerLogs {
	return &PlayerLogs{
		season:     cfg.Season,
		seasonType: cfg.SeasonType,
		source:     source,
		sink:       sink,
	}
}

// Run fetches the player game log once, reshapes it and replaces the
// destination table. An empty season is a clean no-op.
func (p *PlayerLogs) Run(ctx context.Context) (Result, error) {
	res := Result{Items: 1}
	started := time.Now()

	log.Info().
		Str("season", p.season).
		Str("season_type", p.seasonType).
		Msg("Fetching league player game log")

	tbl, err := p.source.LeaguePlayerGameLog(ctx, p.season, p.seasonType)
	if err != nil {
		metrics.RecordRun("playerlogs", metrics.StatusError, time.Since(started))
		return res, fmt.Errorf("failed to fetch player game log: %w", err)
	}

	rows, err := transform.PlayerGameLogs(tbl, p.season)
	if err != nil {
		metrics.RecordRun("playerlogs", metrics.StatusError, time.Since(started))
		return res, fmt.Errorf("failed to reshape player game log: %w", err)
	}

	if len(rows) == 0 {
		log.Warn().Str("season", p.season).Msg("No player game log data collected. Exiting.")
		metrics.RecordRun("playerlogs", metrics.StatusEmpty, time.Since(started))
		return res, nil
	}

	copied, err := p.sink.Replace(ctx, rows)
	if err != nil {
		metrics.RecordRun("playerlogs", metrics.StatusError, time.Since(started))
		return res, fmt.Errorf("failed to write player game logs: %w", err)
	}
	res.Rows = copied

	metrics.RecordRowsReplaced("playerlogs", copied)
	metrics.RecordRun("playerlogs", metrics.StatusSuccess, time.Since(started))

	log.Info().
		Int64("rows", copied).
		Dur("duration", time.Since(started)).
		Msg("Player game log ingestion complete")

	return res, nil
}
