package pipeline

import (
	"context"
	"errors"
	"testing"

	"nuggets_v2/ingestion/internal/client"
	"nuggets_v2/ingestion/internal/config"
	"nuggets_v2/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGameLogSource struct {
	tbl    *client.ResultTable
	err    error
	teamID string
	season string
}

func (f *fakeGameLogSource) TeamGameLog(ctx context.Context, teamID, season, seasonType string) (*client.ResultTable, error) {
	f.teamID = teamID
	f.season = season
	return f.tbl, f.err
}

type fakeGameLogSink struct {
	rows  []models.GameLogRow
	calls int
}

func (f *fakeGameLogSink) Replace(ctx context.Context, rows []models.GameLogRow) (int64, error) {
	f.calls++
	f.rows = rows
	return int64(len(rows)), nil
}

func gamesConfig() *config.Config {
	return &config.Config{
		TeamID:     "1610612743",
		Season:     "2023-24",
		SeasonType: "Regular Season",
	}
}

func teamGameLogTable(gameIDs ...string) *client.ResultTable {
	tbl := &client.ResultTable{
		Name:    "TeamGameLog",
		Headers: []string{"Team_ID", "Game_ID", "GAME_DATE", "MATCHUP", "WL", "PTS"},
	}
	for _, id := range gameIDs {
		tbl.RowSet = append(tbl.RowSet, []any{float64(1610612743), id, "APR 14, 2024", "DEN vs. MEM", "W", float64(116)})
	}
	return tbl
}

func TestGamesWritesRenamedSeasonStampedRows(t *testing.T) {
	source := &fakeGameLogSource{tbl: teamGameLogTable("0022300001", "0022300002")}
	sink := &fakeGameLogSink{}

	res, err := NewGames(gamesConfig(), source, sink).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Rows)
	assert.Equal(t, "1610612743", source.teamID)

	require.Len(t, sink.rows, 2)
	assert.Equal(t, "0022300001", sink.rows[0].GameID)
	assert.Equal(t, "W", sink.rows[0].WinLoss)
	assert.Equal(t, int64(116), sink.rows[0].TeamPoints)
	assert.Equal(t, "2023-24", sink.rows[0].Season, "Every row carries the season stamp")
}

func TestGamesEmptySeasonIsCleanNoop(t *testing.T) {
	source := &fakeGameLogSource{tbl: teamGameLogTable()}
	sink := &fakeGameLogSink{}

	res, err := NewGames(gamesConfig(), source, sink).Run(context.Background())

	require.NoError(t, err)
	assert.Zero(t, res.Rows)
	assert.Zero(t, sink.calls, "An empty season never reaches the sink")
}

func TestGamesFetchFailureIsFatal(t *testing.T) {
	source := &fakeGameLogSource{err: errors.New("gateway timeout")}
	sink := &fakeGameLogSink{}

	_, err := NewGames(gamesConfig(), source, sink).Run(context.Background())

	assert.Error(t, err, "The season fetch has no per-item fault isolation to fall back on")
	assert.Zero(t, sink.calls)
}
