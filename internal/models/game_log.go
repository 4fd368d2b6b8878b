package models

// GameLogRow is one team game from the season game log, carrying warehouse
// column names. Columns the loader does not rename keep the stats API's
// field names, including their casing.
type GameLogRow struct {
	TeamID   int64  `json:"Team_ID" db:"Team_ID"`
	GameID   string `json:"game_id" db:"game_id"`
	GameDate string `json:"game_date" db:"game_date"`
	Matchup  string `json:"matchup" db:"matchup"`
	WinLoss  string `json:"win_loss" db:"win_loss"`

	// Running record
	Wins   int64   `json:"W" db:"W"`
	Losses int64   `json:"L" db:"L"`
	WinPct float64 `json:"W_PCT" db:"W_PCT"`

	// Team box totals
	Minutes                int64   `json:"MIN" db:"MIN"`
	FieldGoalsMade         int64   `json:"FGM" db:"FGM"`
	FieldGoalsAttempted    int64   `json:"FGA" db:"FGA"`
	FieldGoalPct           float64 `json:"FG_PCT" db:"FG_PCT"`
	ThreePointersMade      int64   `json:"FG3M" db:"FG3M"`
	ThreePointersAttempted int64   `json:"FG3A" db:"FG3A"`
	ThreePointPct          float64 `json:"FG3_PCT" db:"FG3_PCT"`
	FreeThrowsMade         int64   `json:"FTM" db:"FTM"`
	FreeThrowsAttempted    int64   `json:"FTA" db:"FTA"`
	FreeThrowPct           float64 `json:"FT_PCT" db:"FT_PCT"`
	OffensiveRebounds      int64   `json:"OREB" db:"OREB"`
	DefensiveRebounds      int64   `json:"DREB" db:"DREB"`
	Rebounds               int64   `json:"REB" db:"REB"`
	Assists                int64   `json:"AST" db:"AST"`
	Steals                 int64   `json:"STL" db:"STL"`
	Blocks                 int64   `json:"BLK" db:"BLK"`
	Turnovers              int64   `json:"TOV" db:"TOV"`
	PersonalFouls          int64   `json:"PF" db:"PF"`
	TeamPoints             int64   `json:"team_points" db:"team_points"`

	// Stamped by the transformer; not part of the API payload
	Season string `json:"season" db:"season"`
}
