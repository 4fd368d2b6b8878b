package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nuggets_v2/ingestion/internal/client"
	"nuggets_v2/ingestion/internal/metrics"
	"nuggets_v2/ingestion/internal/models"
	"nuggets_v2/ingestion/internal/transform"

	"github.com/rs/zerolog/log"
)

// GameIDSource lists the game identifiers to fetch box scores for
type GameIDSource interface {
	GameIDs(ctx context.Context) ([]string, error)
}

// BoxScoreSource fetches one game's traditional box score
type BoxScoreSource interface {
	BoxScoreTraditional(ctx context.Context, gameID string) (*client.ResultTable, error)
}

// BoxScoreSink replace-writes the raw box score table
type BoxScoreSink interface {
	Replace(ctx context.Context, rows []models.BoxScoreRow) (int64, error)
}

// ResponseCache stores raw box score result tables between runs. A lookup
// failure is reported as a miss, never as an error.
type ResponseCache interface {
	GetBoxScore(ctx context.Context, gameID string) (*client.ResultTable, bool)
	SetBoxScore(ctx context.Context, gameID string, tbl *client.ResultTable)
}

// Boxscores loads per-player box scores for every game present in the raw
// games table. One fetch per game, in game ID order; a failed game is
// logged and skipped, and the accumulated rows are written once at the end.
type Boxscores struct {
	games    GameIDSource
	source   BoxScoreSource
	sink     BoxScoreSink
	throttle Throttle
	cache    ResponseCache // optional
}

// NewBoxscores creates the box score pipeline. cache may be nil.
func NewBoxscores(games GameIDSource, source BoxScoreSource, sink BoxScoreSink, throttle Throttle, cache ResponseCache) *Boxscores {
	return &Boxscores{
		games:    games,
		source:   source,
		sink:     sink,
		throttle: throttle,
		cache:    cache,
	}
}

// Run drives one box score fetch per game. Per-game failures are skipped;
// an empty accumulator is a clean no-op; the single replace-write at the
// end is all-or-nothing.
func (p *Boxscores) Run(ctx context.Context) (Result, error) {
	var res Result
	started := time.Now()

	ids, err := p.games.GameIDs(ctx)
	if err != nil {
		metrics.RecordRun("boxscores", metrics.StatusError, time.Since(started))
		return res, fmt.Errorf("failed to read game ids: %w", err)
	}

	if len(ids) == 0 {
		log.Warn().Msg("No games found. Exiting.")
		metrics.RecordRun("boxscores", metrics.StatusEmpty, time.Since(started))
		return res, nil
	}

	log.Info().Int("count", len(ids)).Msg("Fetching box scores")

	var dataset []models.BoxScoreRow
	for _, gameID := range ids {
		res.Items++

		tbl, err := p.fetch(ctx, gameID)
		if err != nil {
			// Cancellation aborts the run; anything else skips the game
			if ctx.Err() != nil {
				metrics.RecordRun("boxscores", metrics.StatusError, time.Since(started))
				return res, fmt.Errorf("box score fetch aborted: %w", err)
			}
			res.Failures++
			metrics.RecordFetchFailure("boxscores")
			logFetchFailure(gameID, err)
			continue
		}

		rows, err := transform.BoxScore(tbl, gameID)
		if err != nil {
			res.Failures++
			metrics.RecordFetchFailure("boxscores")
			log.Warn().Err(err).Str("game_id", gameID).Msg("Failed to reshape box score. Skipping game.")
			continue
		}

		if len(rows) == 0 {
			log.Debug().Str("game_id", gameID).Msg("No box score rows returned")
			continue
		}

		dataset = append(dataset, rows...)
		log.Debug().Str("game_id", gameID).Int("rows", len(rows)).Msg("Box score fetched")
	}

	if len(dataset) == 0 {
		log.Warn().
			Int("games", len(ids)).
			Int("failed", res.Failures).
			Msg("No box score data collected. Exiting.")
		metrics.RecordRun("boxscores", metrics.StatusEmpty, time.Since(started))
		return res, nil
	}

	copied, err := p.sink.Replace(ctx, dataset)
	if err != nil {
		metrics.RecordRun("boxscores", metrics.StatusError, time.Since(started))
		return res, fmt.Errorf("failed to write box scores: %w", err)
	}
	res.Rows = copied

	metrics.RecordRowsReplaced("boxscores", copied)
	metrics.RecordRun("boxscores", metrics.StatusSuccess, time.Since(started))

	log.Info().
		Int("games", len(ids)).
		Int("failed", res.Failures).
		Int64("rows", copied).
		Dur("duration", time.Since(started)).
		Msg("Box score ingestion complete")

	return res, nil
}

// fetch returns one game's box score table, consulting the cache first. A
// cache hit skips both the throttle wait and the API request.
func (p *Boxscores) fetch(ctx context.Context, gameID string) (*client.ResultTable, error) {
	if p.cache != nil {
		if tbl, ok := p.cache.GetBoxScore(ctx, gameID); ok {
			metrics.RecordCacheHit()
			return tbl, nil
		}
		metrics.RecordCacheMiss()
	}

	if err := p.throttle.Wait(ctx); err != nil {
		return nil, fmt.Errorf("throttle wait: %w", err)
	}

	tbl, err := p.source.BoxScoreTraditional(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		p.cache.SetBoxScore(ctx, gameID, tbl)
	}

	return tbl, nil
}

// logFetchFailure reports a skipped game, keeping the failure classes the
// client distinguishes visible in the log.
func logFetchFailure(gameID string, err error) {
	var apiErr *client.APIError
	var rsErr *client.ResultSetError

	switch {
	case errors.As(err, &apiErr) && apiErr.IsRateLimited():
		log.Warn().Str("game_id", gameID).Int("status", apiErr.StatusCode).Msg("Stats API throttled the request. Skipping game.")
	case errors.As(err, &apiErr):
		log.Warn().Str("game_id", gameID).Int("status", apiErr.StatusCode).Msg("Stats API request failed. Skipping game.")
	case errors.As(err, &rsErr):
		log.Warn().Str("game_id", gameID).Str("missing", rsErr.Name).Msg("Box score response missing player table. Skipping game.")
	default:
		log.Warn().Err(err).Str("game_id", gameID).Msg("Failed to fetch box score. Skipping game.")
	}
}
