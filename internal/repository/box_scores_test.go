//go:build integration

package repository

import (
	"testing"

	"nuggets_v2/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrI(v int64) *int64     { return &v }
func ptrF(v float64) *float64 { return &v }
func ptrS(v string) *string   { return &v }

func TestBoxScoreReplaceWithDNPRow(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	rows := []models.BoxScoreRow{
		{
			GameID:              "0022300001",
			TeamID:              1610612743,
			TeamAbbreviation:    "DEN",
			TeamCity:            "Denver",
			PlayerID:            203999,
			PlayerName:          "Nikola Jokic",
			StartPosition:       ptrS("C"),
			Comment:             ptrS(""),
			Minutes:             ptrS("36:25"),
			FieldGoalsMade:      ptrI(12),
			FieldGoalsAttempted: ptrI(19),
			FieldGoalPct:        ptrF(0.632),
			Rebounds:            ptrI(14),
			Assists:             ptrI(9),
			Points:              ptrI(28),
			PlusMinus:           ptrF(11),
		},
		{
			// Did not play: null minutes and null counting stats
			GameID:           "0022300001",
			TeamID:           1610612743,
			TeamAbbreviation: "DEN",
			TeamCity:         "Denver",
			PlayerID:         1630999,
			PlayerName:       "End Of Bench",
			Comment:          ptrS("DNP - Coach's Decision"),
		},
	}

	copied, err := db.BoxScores.Replace(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, int64(2), copied)

	var minutes *string
	err = db.Pool.QueryRow(ctx,
		`SELECT "MIN" FROM public.raw_nba_boxscores_test WHERE "PLAYER_ID" = 1630999`).Scan(&minutes)
	require.NoError(t, err)
	assert.Nil(t, minutes, "DNP minutes should load as NULL")

	var points int64
	err = db.Pool.QueryRow(ctx,
		`SELECT "PTS" FROM public.raw_nba_boxscores_test WHERE "PLAYER_ID" = 203999`).Scan(&points)
	require.NoError(t, err)
	assert.Equal(t, int64(28), points)
}

func TestBoxScoreReplaceIsFullReplace(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	first := []models.BoxScoreRow{
		{GameID: "0022300001", TeamID: 1, TeamAbbreviation: "DEN", TeamCity: "Denver", PlayerID: 1, PlayerName: "A"},
		{GameID: "0022300001", TeamID: 1, TeamAbbreviation: "DEN", TeamCity: "Denver", PlayerID: 2, PlayerName: "B"},
	}
	second := []models.BoxScoreRow{
		{GameID: "0022300002", TeamID: 1, TeamAbbreviation: "DEN", TeamCity: "Denver", PlayerID: 3, PlayerName: "C"},
	}

	_, err := db.BoxScores.Replace(ctx, first)
	require.NoError(t, err)

	_, err = db.BoxScores.Replace(ctx, second)
	require.NoError(t, err)

	var count int
	err = db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM public.raw_nba_boxscores_test`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var gameID string
	err = db.Pool.QueryRow(ctx, `SELECT game_id FROM public.raw_nba_boxscores_test`).Scan(&gameID)
	require.NoError(t, err)
	assert.Equal(t, "0022300002", gameID)
}
