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

// GameLogSource fetches a team's season game log
type GameLogSource interface {
	TeamGameLog(ctx context.Context, teamID, season, seasonType string) (*client.ResultTable, error)
}

// GameLogSink replace-writes the raw games table
type GameLogSink interface {
	Replace(ctx context.Context, rows []models.GameLogRow) (int64, error)
}

// Games loads one team's season game log into the raw games table
type Games struct {
	teamID     string
	season     string
	seasonType string
	source     GameLogSource
	sink       GameLogSink
}

// NewGames creates the games pipeline
func NewGames(cfg *config.Config, source GameLogSource, sink GameLogSink) *Games {
	return &Games{
		teamID:     cfg.TeamID,
		season:     cfg.Season,
		seasonType: cfg.SeasonType,
		source:     source,
		sink:       sink,
	}
}

// Run fetches the season game log once, reshapes it and replaces the
// destination table. An empty season is a clean no-op.
func (p *Games) Run(ctx context.Context) (Result, error) {
	res := Result{Items: 1}
	started := time.Now()

	log.Info().
		Str("team_id", p.teamID).
		Str("season", p.season).
		Str("season_type", p.seasonType).
		Msg("Fetching team game log")

	tbl, err := p.source.TeamGameLog(ctx, p.teamID, p.season, p.seasonType)
	if err != nil {
		metrics.RecordRun("games", metrics.StatusError, time.Since(started))
		return res, fmt.Errorf("failed to fetch team game log: %w", err)
	}

	rows, err := transform.TeamGames(tbl, p.season)
	if err != nil {
		metrics.RecordRun("games", metrics.StatusError, time.Since(started))
		return res, fmt.Errorf("failed to reshape team game log: %w", err)
	}

	if len(rows) == 0 {
		log.Warn().Str("season", p.season).Msg("No game data collected. Exiting.")
		metrics.RecordRun("games", metrics.StatusEmpty, time.Since(started))
		return res, nil
	}

	copied, err := p.sink.Replace(ctx, rows)
	if err != nil {
		metrics.RecordRun("games", metrics.StatusError, time.Since(started))
		return res, fmt.Errorf("failed to write game logs: %w", err)
	}
	res.Rows = copied

	metrics.RecordRowsReplaced("games", copied)
	metrics.RecordRun("games", metrics.StatusSuccess, time.Since(started))

	log.Info().
		Int64("rows", copied).
		Dur("duration", time.Since(started)).
		Msg("Game log ingestion complete")

	return res, nil
}
