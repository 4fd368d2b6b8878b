package repository

import (
	"context"
	"fmt"

	"nuggets_v2/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// GameLogRepository handles the raw team game log table
type GameLogRepository struct {
	db *Database
}

// Destination columns in write order. Unrenamed stat columns keep the API's
// casing, so they are quoted in the DDL.
var gameLogColumns = []string{
	"Team_ID", "game_id", "game_date", "matchup", "win_loss",
	"W", "L", "W_PCT",
	"MIN", "FGM", "FGA", "FG_PCT", "FG3M", "FG3A", "FG3_PCT",
	"FTM", "FTA", "FT_PCT", "OREB", "DREB", "REB",
	"AST", "STL", "BLK", "TOV", "PF", "team_points",
	"season",
}

const gameLogDDL = `
	"Team_ID" bigint,
	game_id text,
	game_date text,
	matchup text,
	win_loss text,
	"W" bigint,
	"L" bigint,
	"W_PCT" double precision,
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
	team_points bigint,
	season text
`

func (r *GameLogRepository) table() pgx.Identifier {
	return pgx.Identifier{r.db.tables.Schema, r.db.tables.GameLogs}
}

// Replace swaps the table's full contents for the given rows. Drop, create
// and copy run in one transaction, so a failure leaves the prior contents
// untouched and readers never observe a partial table.
func (r *GameLogRepository) Replace(ctx context.Context, rows []models.GameLogRow) (int64, error) {
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

	if _, err := tx.Exec(ctx, fmt.Sprintf("CREATE TABLE %s (%s)", r.table().Sanitize(), gameLogDDL)); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", r.table().Sanitize(), err)
	}

	copied, err := tx.CopyFrom(ctx, r.table(), gameLogColumns, pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
		g := rows[i]
		return []any{
			g.TeamID, g.GameID, g.GameDate, g.Matchup, g.WinLoss,
			g.Wins, g.Losses, g.WinPct,
			g.Minutes, g.FieldGoalsMade, g.FieldGoalsAttempted, g.FieldGoalPct,
			g.ThreePointersMade, g.ThreePointersAttempted, g.ThreePointPct,
			g.FreeThrowsMade, g.FreeThrowsAttempted, g.FreeThrowPct,
			g.OffensiveRebounds, g.DefensiveRebounds, g.Rebounds,
			g.Assists, g.Steals, g.Blocks, g.Turnovers, g.PersonalFouls, g.TeamPoints,
			g.Season,
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
		Msg("Replaced game log table")

	return copied, nil
}

// GameIDs returns the distinct game identifiers present in the raw games
// table, in ascending order
func (r *GameLogRepository) GameIDs(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf("SELECT DISTINCT game_id FROM %s ORDER BY game_id", r.table().Sanitize())

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query game ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan game id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game ids: %w", err)
	}

	return ids, nil
}

// Count returns the total number of game log rows
func (r *GameLogRepository) Count(ctx context.Context) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", r.table().Sanitize())

	var count int
	err := r.db.Pool.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count game logs: %w", err)
	}

	return count, nil
}
