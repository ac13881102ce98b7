package postgres

import (
	"database/sql"
	"time"
)

type fixtureTableModel struct {
	ID         int64         `db:"id"`
	PublicID   string        `db:"public_id"`
	LeagueID   string        `db:"league_public_id"`
	Gameweek   int           `db:"gameweek"`
	HomeTeamID string        `db:"home_team_public_id"`
	AwayTeamID string        `db:"away_team_public_id"`
	KickoffAt  time.Time     `db:"kickoff_at"`
	HomeScore  sql.NullInt64 `db:"home_score"`
	AwayScore  sql.NullInt64 `db:"away_score"`
	Status     string        `db:"status"`
	FinishedAt *time.Time    `db:"finished_at"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
	DeletedAt  *time.Time    `db:"deleted_at"`
}

type playerTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	LeagueID  string     `db:"league_public_id"`
	TeamID    string     `db:"team_public_id"`
	Name      string     `db:"name"`
	Position  string     `db:"position"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type playerMatchStatTableModel struct {
	ID              int64      `db:"id"`
	FixtureID       string     `db:"fixture_public_id"`
	PlayerID        string     `db:"player_public_id"`
	TeamID          string     `db:"team_public_id"`
	MinutesPlayed   int        `db:"minutes_played"`
	Goals           int        `db:"goals"`
	Assists         int        `db:"assists"`
	CleanSheet      bool       `db:"clean_sheet"`
	GoalsConceded   int        `db:"goals_conceded"`
	YellowCards     int        `db:"yellow_cards"`
	RedCards        int        `db:"red_cards"`
	PenaltiesSaved  int        `db:"penalties_saved"`
	PenaltiesMissed int        `db:"penalties_missed"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

type rosterTableModel struct {
	ID        int64      `db:"id"`
	LeagueID  string     `db:"league_public_id"`
	TeamID    string     `db:"team_public_id"`
	Gameweek  int        `db:"gameweek"`
	Chip      string     `db:"chip"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type rosterEntryTableModel struct {
	ID        int64      `db:"id"`
	RosterID  int64      `db:"roster_id"`
	PlayerID  string     `db:"player_public_id"`
	Position  string     `db:"position"`
	Role      string     `db:"role"`
	Slot      int        `db:"slot"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type playerGameweekPointsTableModel struct {
	ID            int64     `db:"id"`
	LeagueID      string    `db:"league_public_id"`
	PlayerID      string    `db:"player_public_id"`
	Gameweek      int       `db:"gameweek"`
	Position      string    `db:"position"`
	MinutesPlayed int       `db:"minutes_played"`
	Matches       int       `db:"matches"`
	BasePoints    int       `db:"base_points"`
	BonusPoints   int       `db:"bonus_points"`
	TotalPoints   int       `db:"total_points"`
	Breakdown     []byte    `db:"breakdown"`
	CalculatedAt  time.Time `db:"calculated_at"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type playerGameweekPointsInsertModel struct {
	LeagueID      string    `db:"league_public_id"`
	PlayerID      string    `db:"player_public_id"`
	Gameweek      int       `db:"gameweek"`
	Position      string    `db:"position"`
	MinutesPlayed int       `db:"minutes_played"`
	Matches       int       `db:"matches"`
	BasePoints    int       `db:"base_points"`
	BonusPoints   int       `db:"bonus_points"`
	TotalPoints   int       `db:"total_points"`
	Breakdown     string    `db:"breakdown"`
	CalculatedAt  time.Time `db:"calculated_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type teamGameweekPointsTableModel struct {
	ID           int64     `db:"id"`
	LeagueID     string    `db:"league_public_id"`
	TeamID       string    `db:"team_public_id"`
	Gameweek     int       `db:"gameweek"`
	Chip         string    `db:"chip"`
	Points       float64   `db:"points"`
	Provisional  bool      `db:"provisional"`
	Entries      []byte    `db:"entries"`
	CalculatedAt time.Time `db:"calculated_at"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type teamGameweekPointsInsertModel struct {
	LeagueID     string    `db:"league_public_id"`
	TeamID       string    `db:"team_public_id"`
	Gameweek     int       `db:"gameweek"`
	Chip         string    `db:"chip"`
	Points       float64   `db:"points"`
	Provisional  bool      `db:"provisional"`
	Entries      string    `db:"entries"`
	CalculatedAt time.Time `db:"calculated_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
