package models

// PlayerGameLogRow is one player's line from the league-wide game log.
// Percentage fields are pointers because the stats API returns null when a
// player recorded no attempts.
type PlayerGameLogRow struct {
	SeasonID         string `json:"SEASON_ID" db:"SEASON_ID"`
	PlayerID         int64  `json:"player_id" db:"player_id"`
	PlayerName       string `json:"player_name" db:"player_name"`
	TeamID           int64  `json:"team_id" db:"team_id"`
	TeamAbbreviation string `json:"TEAM_ABBREVIATION" db:"TEAM_ABBREVIATION"`
	TeamName         string `json:"team_name" db:"team_name"`
	GameID           string `json:"game_id" db:"game_id"`
	GameDate         string `json:"GAME_DATE" db:"GAME_DATE"`
	Matchup          string `json:"MATCHUP" db:"MATCHUP"`
	WinLoss          string `json:"WL" db:"WL"`

	// Box line
	Minutes                int64    `json:"MIN" db:"MIN"`
	FieldGoalsMade         int64    `json:"FGM" db:"FGM"`
	FieldGoalsAttempted    int64    `json:"FGA" db:"FGA"`
	FieldGoalPct           *float64 `json:"FG_PCT" db:"FG_PCT"`
	ThreePointersMade      int64    `json:"FG3M" db:"FG3M"`
	ThreePointersAttempted int64    `json:"FG3A" db:"FG3A"`
	ThreePointPct          *float64 `json:"FG3_PCT" db:"FG3_PCT"`
	FreeThrowsMade         int64    `json:"FTM" db:"FTM"`
	FreeThrowsAttempted    int64    `json:"FTA" db:"FTA"`
	FreeThrowPct           *float64 `json:"FT_PCT" db:"FT_PCT"`
	OffensiveRebounds      int64    `json:"OREB" db:"OREB"`
	DefensiveRebounds      int64    `json:"DREB" db:"DREB"`
	Rebounds               int64    `json:"REB" db:"REB"`
	Assists                int64    `json:"AST" db:"AST"`
	Steals                 int64    `json:"STL" db:"STL"`
	Blocks                 int64    `json:"BLK" db:"BLK"`
	Turnovers              int64    `json:"TOV" db:"TOV"`
	PersonalFouls          int64    `json:"PF" db:"PF"`
	Points                 int64    `json:"PTS" db:"PTS"`
	PlusMinus              *float64 `json:"PLUS_MINUS" db:"PLUS_MINUS"`
	FantasyPoints          *float64 `json:"FANTASY_PTS" db:"FANTASY_PTS"`
	VideoAvailable         int64    `json:"VIDEO_AVAILABLE" db:"VIDEO_AVAILABLE"`

	// Stamped by the transformer; not part of the API payload
	Season string `json:"season" db:"season"`
}
