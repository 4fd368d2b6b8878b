package models

// BoxScoreRow is one player's line from a traditional box score. Stat fields
// are pointers: players who did not play come back with null minutes and
// null counting stats, and those nulls are loaded as-is.
type BoxScoreRow struct {
	GameID           string  `json:"game_id" db:"game_id"`
	TeamID           int64   `json:"TEAM_ID" db:"TEAM_ID"`
	TeamAbbreviation string  `json:"TEAM_ABBREVIATION" db:"TEAM_ABBREVIATION"`
	TeamCity         string  `json:"TEAM_CITY" db:"TEAM_CITY"`
	PlayerID         int64   `json:"PLAYER_ID" db:"PLAYER_ID"`
	PlayerName       string  `json:"PLAYER_NAME" db:"PLAYER_NAME"`
	Nickname         *string `json:"NICKNAME" db:"NICKNAME"`
	StartPosition    *string `json:"START_POSITION" db:"START_POSITION"`
	Comment          *string `json:"COMMENT" db:"COMMENT"`

	// Playing time arrives as "MM:SS", null for DNPs
	Minutes *string `json:"MIN" db:"MIN"`

	// Box line
	FieldGoalsMade         *int64   `json:"FGM" db:"FGM"`
	FieldGoalsAttempted    *int64   `json:"FGA" db:"FGA"`
	FieldGoalPct           *float64 `json:"FG_PCT" db:"FG_PCT"`
	ThreePointersMade      *int64   `json:"FG3M" db:"FG3M"`
	ThreePointersAttempted *int64   `json:"FG3A" db:"FG3A"`
	ThreePointPct          *float64 `json:"FG3_PCT" db:"FG3_PCT"`
	FreeThrowsMade         *int64   `json:"FTM" db:"FTM"`
	FreeThrowsAttempted    *int64   `json:"FTA" db:"FTA"`
	FreeThrowPct           *float64 `json:"FT_PCT" db:"FT_PCT"`
	OffensiveRebounds      *int64   `json:"OREB" db:"OREB"`
	DefensiveRebounds      *int64   `json:"DREB" db:"DREB"`
	Rebounds               *int64   `json:"REB" db:"REB"`
	Assists                *int64   `json:"AST" db:"AST"`
	Steals                 *int64   `json:"STL" db:"STL"`
	Blocks                 *int64   `json:"BLK" db:"BLK"`
	Turnovers              *int64   `json:"TO" db:"TO"`
	PersonalFouls          *int64   `json:"PF" db:"PF"`
	Points                 *int64   `json:"PTS" db:"PTS"`
	PlusMinus              *float64 `json:"PLUS_MINUS" db:"PLUS_MINUS"`
}

// Played reports whether the player saw the floor in this game
func (r *BoxScoreRow) Played() bool {
	return r.Minutes != nil && *r.Minutes != ""
}
