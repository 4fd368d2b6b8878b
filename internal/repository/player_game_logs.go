package repository

import (
	"context"
	"fmt"

	"nuggets_v2/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// PlayerGameLogRepository handles the raw league-wide player game log table
type PlayerGameLogRepository struct {
	db *Database
}

var playerGameLogColumns = []string{
	"SEASON_ID", "player_id", "player_name", "team_id", "TEAM_ABBREVIATION", "team_name",
	"game_id", "GAME_DATE", "MATCHUP", "WL",
	"MIN", "FGM", "FGA", "FG_PCT", "FG3M", "FG3A", "FG3_PCT",
	"FTM", "FTA", "FT_PCT", "OREB", "DREB", "REB",
	"AST", "STL", "BLK", "TOV", "PF", "PTS",
	"PLUS_MINUS", "FANTASY_PTS", "VIDEO_AVAILABLE",
	"season",
}

const playerGameLogDDL = `
	"SEASON_ID" text,
	player_id bigint,
	player_name text,
	team_id bigint,
	"TEAM_ABBREVIATION" text,
	team_name text,
	game_id text,
	"GAME_DATE" text,
	"MATCHUP" text,
	"WL" text,
	"MIN" bigint,
	"FGM" bigint,
	"FGA" bigint,
	"FG_PCT" double precision,
	"FG3M" bigint,
	"FG3A" bigint,
	"FG3_PCT" double precision,
	"FTM" bigint,
	"FTA" bigint,
	"FT_PCT" double precision,
	"OREB" bigint,
	"DREB" bigint,
	"REB" bigint,
	"AST" bigint,
	"STL" bigint,
	"BLK" bigint,
	"TOV" bigint,
	"PF" bigint,
	"PTS" bigint,
	"PLUS_MINUS" double precision,
	"FANTASY_PTS" double precision,
	"VIDEO_AVAILABLE" bigint,
	season text
`

func (r *PlayerGameLogRepository) table() pgx.Identifier {
	return pgx.Identifier{r.db.tables.Schema, r.db.tables.PlayerGameLogs}
}

// Replace swaps the table's full contents for the given rows inside one
// transaction.
func (r *PlayerGameLogRepository) Replace(ctx context.Context, rows []models.PlayerGameLogRow) (int64, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("refusing to replace %s with zero rows", r.table().Sanitize())
	}

	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", r.table().Sanitize())); err != nil {
		return 0, fmt.Errorf("failed to drop %s: %w", r.table().Sanitize(), err)
	}

	if _, err := tx.Exec(ctx, fmt.Sprintf("CREATE TABLE %s (%s)", r.table().Sanitize(), playerGameLogDDL)); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", r.table().Sanitize(), err)
	}

	copied, err := tx.CopyFrom(ctx, r.table(), playerGameLogColumns, pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
		p := rows[i]
		return []any{
			p.SeasonID, p.PlayerID, p.PlayerName, p.TeamID, p.TeamAbbreviation, p.TeamName,
			p.GameID, p.GameDate, p.Matchup, p.WinLoss,
			p.Minutes, p.FieldGoalsMade, p.FieldGoalsAttempted, p.FieldGoalPct,
			p.ThreePointersMade, p.ThreePointersAttempted, p.ThreePointPct,
			p.FreeThrowsMade, p.FreeThrowsAttempted, p.FreeThrowPct,
			p.OffensiveRebounds, p.DefensiveRebounds, p.Rebounds,
			p.Assists, p.Steals, p.Blocks, p.Turnovers, p.PersonalFouls, p.Points,
			p.PlusMinus, p.FantasyPoints, p.VideoAvailable,
			p.Season,
		}, nil
	}))
	if err != nil {
		return 0, fmt.Errorf("failed to copy rows into %s: %w", r.table().Sanitize(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit replace of %s: %w", r.table().Sanitize(), err)
	}

	log.Debug().
		Str("table", r.table().Sanitize()).
		Int64("rows", copied).
		Msg("Replaced player game log table")

	return copied, nil
}
