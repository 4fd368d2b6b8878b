package pipeline

import (
	"context"
	"errors"
	"testing"

	"nuggets_v2/ingestion/internal/client"
	"nuggets_v2/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlayerLogSource struct {
	tbl *client.ResultTable
	err error
}

func (f *fakePlayerLogSource) LeaguePlayerGameLog(ctx context.Context, season, seasonType string) (*client.ResultTable, error) {
	return f.tbl, f.err
}

type fakePlayerLogSink struct {
	rows  []models.PlayerGameLogRow
	calls int
}

func (f *fakePlayerLogSink) Replace(ctx context.Context, rows []models.PlayerGameLogRow) (int64, error) {
	f.calls++
	f.rows = rows
	return int64(len(rows)), nil
}

func leagueGameLogTable(players ...string) *client.ResultTable {
	tbl := &client.ResultTable{
		Name:    "LeagueGameLog",
		Headers: []string{"PLAYER_ID", "PLAYER_NAME", "TEAM_ID", "TEAM_NAME", "GAME_ID", "PTS"},
	}
	for i, name := range players {
		tbl.RowSet = append(tbl.RowSet, []any{float64(200 + i), name, float64(1610612743), "Denver Nuggets", "0022300001", float64(25)})
	}
	return tbl
}

func TestPlayerLogsWritesRenamedSeasonStampedRows(t *testing.T) {
	source := &fakePlayerLogSource{tbl: leagueGameLogTable("Jokic", "Murray")}
	sink := &fakePlayerLogSink{}

	res, err := NewPlayerLogs(gamesConfig(), source, sink).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Rows)

	require.Len(t, sink.rows, 2)
	assert.Equal(t, "Jokic", sink.rows[0].PlayerName)
	assert.Equal(t, "Denver Nuggets", sink.rows[0].TeamName)
	assert.Equal(t, "0022300001", sink.rows[0].GameID)
	assert.Equal(t, "2023-24", sink.rows[1].Season)
}

func TestPlayerLogsEmptySeasonIsCleanNoop(t *testing.T) {
	source := &fakePlayerLogSource{tbl: leagueGameLogTable()}
	sink := &fakePlayerLogSink{}

	res, err := NewPlayerLogs(gamesConfig(), source, sink).Run(context.Background())

	require.NoError(t, err)
	assert.Zero(t, res.Rows)
	assert.Zero(t, sink.calls)
}

func TestPlayerLogsFetchFailureIsFatal(t *testing.T) {
	source := &fakePlayerLogSource{err: errors.New("service unavailable")}
	sink := &fakePlayerLogSink{}

	_, err := NewPlayerLogs(gamesConfig(), source, sink).Run(context.Background())

	assert.Error(t, err)
	assert.Zero(t, sink.calls)
}
