//go:build integration

package repository

import (
	"testing"

	"nuggets_v2/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerGameLogReplace(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	rows := []models.PlayerGameLogRow{
		{
			SeasonID:            "22023",
			PlayerID:            203999,
			PlayerName:          "Nikola Jokic",
			TeamID:              1610612743,
			TeamAbbreviation:    "DEN",
			TeamName:            "Denver Nuggets",
			GameID:              "0022300001",
			GameDate:            "2023-10-24",
			Matchup:             "DEN vs. LAL",
			WinLoss:             "W",
			Minutes:             36,
			FieldGoalsMade:      12,
			FieldGoalsAttempted: 17,
			FieldGoalPct:        ptrF(0.706),
			Points:              29,
			PlusMinus:           ptrF(8),
			Season:              "2023-24",
		},
		{
			SeasonID:         "22023",
			PlayerID:         1629008,
			PlayerName:       "Michael Porter Jr.",
			TeamID:           1610612743,
			TeamAbbreviation: "DEN",
			TeamName:         "Denver Nuggets",
			GameID:           "0022300001",
			GameDate:         "2023-10-24",
			Matchup:          "DEN vs. LAL",
			WinLoss:          "W",
			Minutes:          31,
			// No three point attempts: percentage stays NULL
			ThreePointPct: nil,
			Points:        12,
			Season:        "2023-24",
		},
	}

	copied, err := db.PlayerGameLogs.Replace(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, int64(2), copied)

	var pct *float64
	err = db.Pool.QueryRow(ctx,
		`SELECT "FG3_PCT" FROM public.raw_nba_player_game_logs_test WHERE player_id = 1629008`).Scan(&pct)
	require.NoError(t, err)
	assert.Nil(t, pct)

	var season string
	err = db.Pool.QueryRow(ctx,
		`SELECT season FROM public.raw_nba_player_game_logs_test WHERE player_id = 203999`).Scan(&season)
	require.NoError(t, err)
	assert.Equal(t, "2023-24", season)
}
