//go:build integration

package repository

import (
	"testing"

	"nuggets_v2/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGameLogRow(gameID, season string) models.GameLogRow {
	return models.GameLogRow{
		TeamID:                 1610612743,
		GameID:                 gameID,
		GameDate:               "APR 14, 2024",
		Matchup:                "DEN vs. MEM",
		WinLoss:                "W",
		Wins:                   57,
		Losses:                 25,
		WinPct:                 0.695,
		Minutes:                240,
		FieldGoalsMade:         43,
		FieldGoalsAttempted:    89,
		FieldGoalPct:           0.483,
		ThreePointersMade:      12,
		ThreePointersAttempted: 31,
		ThreePointPct:          0.387,
		FreeThrowsMade:         18,
		FreeThrowsAttempted:    22,
		FreeThrowPct:           0.818,
		OffensiveRebounds:      10,
		DefensiveRebounds:      33,
		Rebounds:               43,
		Assists:                29,
		Steals:                 8,
		Blocks:                 6,
		Turnovers:              13,
		PersonalFouls:          18,
		TeamPoints:             116,
		Season:                 season,
	}
}

func TestGameLogReplace(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	rows := []models.GameLogRow{
		sampleGameLogRow("0022300001", "2023-24"),
		sampleGameLogRow("0022300002", "2023-24"),
	}

	copied, err := db.GameLogs.Replace(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, int64(2), copied)

	count, err := db.GameLogs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// A second replace swaps contents wholesale, never appends
	copied, err = db.GameLogs.Replace(ctx, rows[:1])
	require.NoError(t, err)
	assert.Equal(t, int64(1), copied)

	count, err = db.GameLogs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGameLogReplaceOverwritesUnrelatedTable(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	// Pre-existing table with a different shape and junk rows
	_, err := db.Pool.Exec(ctx, `DROP TABLE IF EXISTS public.raw_nba_games_test`)
	require.NoError(t, err)
	_, err = db.Pool.Exec(ctx, `CREATE TABLE public.raw_nba_games_test (junk text)`)
	require.NoError(t, err)
	_, err = db.Pool.Exec(ctx, `INSERT INTO public.raw_nba_games_test VALUES ('x'), ('y')`)
	require.NoError(t, err)

	_, err = db.GameLogs.Replace(ctx, []models.GameLogRow{sampleGameLogRow("0022300010", "2023-24")})
	require.NoError(t, err)

	var count int
	err = db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM public.raw_nba_games_test`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "Replace should discard pre-existing rows")

	var gameID string
	err = db.Pool.QueryRow(ctx, `SELECT game_id FROM public.raw_nba_games_test`).Scan(&gameID)
	require.NoError(t, err)
	assert.Equal(t, "0022300010", gameID)
}

func TestGameIDsDistinctAndOrdered(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	rows := []models.GameLogRow{
		sampleGameLogRow("0022300002", "2023-24"),
		sampleGameLogRow("0022300001", "2023-24"),
		sampleGameLogRow("0022300001", "2023-24"),
	}

	_, err := db.GameLogs.Replace(ctx, rows)
	require.NoError(t, err)

	ids, err := db.GameLogs.GameIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"0022300001", "0022300002"}, ids)
}

func TestGameLogReplaceRejectsEmpty(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	_, err := db.GameLogs.Replace(ctx, nil)
	assert.Error(t, err, "Replacing with zero rows should be refused")
}
