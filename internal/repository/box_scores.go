package repository

import (
	"context"
	"fmt"

	"nuggets_v2/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// BoxScoreRepository handles the raw per-player box score table
type BoxScoreRepository struct {
	db *Database
}

var boxScoreColumns = []string{
	"game_id", "TEAM_ID", "TEAM_ABBREVIATION", "TEAM_CITY",
	"PLAYER_ID", "PLAYER_NAME", "NICKNAME", "START_POSITION", "COMMENT",
	"MIN", "FGM", "FGA", "FG_PCT", "FG3M", "FG3A", "FG3_PCT",
	"FTM", "FTA", "FT_PCT", "OREB", "DREB", "REB",
	"AST", "STL", "BLK", "TO", "PF", "PTS", "PLUS_MINUS",
}

const boxScoreDDL = `
	game_id text,
	"TEAM_ID" bigint,
	"TEAM_ABBREVIATION" text,
	"TEAM_CITY" text,
	"PLAYER_ID" bigint,
	"PLAYER_NAME" text,
	"NICKNAME" text,
	"START_POSITION" text,
	"COMMENT" text,
	"MIN" text,
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
	"TO" bigint,
	"PF" bigint,
	"PTS" bigint,
	"PLUS_MINUS" double precision
`

func (r *BoxScoreRepository) table() pgx.Identifier {
	return pgx.Identifier{r.db.tables.Schema, r.db.tables.BoxScores}
}

// Replace swaps the table's full contents for the given rows inside one
// transaction.
func (r *BoxScoreRepository) Replace(ctx context.Context, rows []models.BoxScoreRow) (int64, error) {
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

	if _, err := tx.Exec(ctx, fmt.Sprintf("CREATE TABLE %s (%s)", r.table().Sanitize(), boxScoreDDL)); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", r.table().Sanitize(), err)
	}

	copied, err := tx.CopyFrom(ctx, r.table(), boxScoreColumns, pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
		b := rows[i]
		return []any{
			b.GameID, b.TeamID, b.TeamAbbreviation, b.TeamCity,
			b.PlayerID, b.PlayerName, b.Nickname, b.StartPosition, b.Comment,
			b.Minutes, b.FieldGoalsMade, b.FieldGoalsAttempted, b.FieldGoalPct,
			b.ThreePointersMade, b.ThreePointersAttempted, b.ThreePointPct,
			b.FreeThrowsMade, b.FreeThrowsAttempted, b.FreeThrowPct,
			b.OffensiveRebounds, b.DefensiveRebounds, b.Rebounds,
			b.Assists, b.Steals, b.Blocks, b.Turnovers, b.PersonalFouls, b.Points,
			b.PlusMinus,
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
		Msg("Replaced box score table")

	return copied, nil
}
