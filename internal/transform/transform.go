// Package transform reshapes raw stats API result sets into typed warehouse
// rows: a fixed column rename per pipeline, a season stamp for season-scoped
// loads, and the game ID join key guaranteed on every box score row.
package transform

import (
	"encoding/json"
	"fmt"

	"nuggets_v2/ingestion/internal/client"
	"nuggets_v2/ingestion/internal/models"
)

// Rename maps applied to records before decoding. Destination names never
// appear as map keys, so applying a map a second time changes nothing.
var (
	GameLogRenames = map[string]string{
		"Game_ID":   "game_id",
		"GAME_DATE": "game_date",
		"MATCHUP":   "matchup",
		"WL":        "win_loss",
		"PTS":       "team_points",
	}

	PlayerGameLogRenames = map[string]string{
		"PLAYER_ID":   "player_id",
		"PLAYER_NAME": "player_name",
		"TEAM_ID":     "team_id",
		"TEAM_NAME":   "team_name",
		"GAME_ID":     "game_id",
	}

	BoxScoreRenames = map[string]string{
		"GAME_ID": "game_id",
	}
)

// RenameColumns returns a copy of rec with source column names replaced
// according to renames. Unmapped columns pass through unchanged.
func RenameColumns(rec map[string]any, renames map[string]string) map[string]any {
	out := make(map[string]any, len(rec))
	for name, value := range rec {
		if dest, ok := renames[name]; ok {
			name = dest
		}
		out[name] = value
	}
	return out
}

// decodeRecord round-trips a renamed record through JSON into a typed row.
// A value that does not fit its field's type is a validation failure.
func decodeRecord(rec map[string]any, out any) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	return nil
}

// TeamGames converts a TeamGameLog result set into typed game rows, applying
// the warehouse renames and stamping every row with the season label.
func TeamGames(tbl *client.ResultTable, season string) ([]models.GameLogRow, error) {
	records := tbl.Records()
	rows := make([]models.GameLogRow, 0, len(records))
	for i, rec := range records {
		var row models.GameLogRow
		if err := decodeRecord(RenameColumns(rec, GameLogRenames), &row); err != nil {
			return nil, fmt.Errorf("game log record %d: %w", i, err)
		}
		row.Season = season
		rows = append(rows, row)
	}
	return rows, nil
}

// PlayerGameLogs converts a LeagueGameLog result set into typed player game
// rows, stamped with the season label.
func PlayerGameLogs(tbl *client.ResultTable, season string) ([]models.PlayerGameLogRow, error) {
	records := tbl.Records()
	rows := make([]models.PlayerGameLogRow, 0, len(records))
	for i, rec := range records {
		var row models.PlayerGameLogRow
		if err := decodeRecord(RenameColumns(rec, PlayerGameLogRenames), &row); err != nil {
			return nil, fmt.Errorf("player game log record %d: %w", i, err)
		}
		row.Season = season
		rows = append(rows, row)
	}
	return rows, nil
}

// BoxScore converts a PlayerStats result set into typed box score rows. The
// game ID is attached from the work item whenever the payload omits it, so
// every row carries the join key.
func BoxScore(tbl *client.ResultTable, gameID string) ([]models.BoxScoreRow, error) {
	records := tbl.Records()
	rows := make([]models.BoxScoreRow, 0, len(records))
	for i, rec := range records {
		var row models.BoxScoreRow
		if err := decodeRecord(RenameColumns(rec, BoxScoreRenames), &row); err != nil {
			return nil, fmt.Errorf("box score record %d for game %s: %w", i, gameID, err)
		}
		if row.GameID == "" {
			row.GameID = gameID
		}
		rows = append(rows, row)
	}
	return rows, nil
}
