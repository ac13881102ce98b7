package scoring

import (
	"time"

	"github.com/riskibarqy/fantasy-scoring/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/player"
)

// PlayerGameweekPoints is the stored record for one player in one gameweek,
// keyed by (league, player, gameweek). Points are pre-multiplier.
type PlayerGameweekPoints struct {
	LeagueID      string          `json:"league_id"`
	PlayerID      string          `json:"player_id"`
	Gameweek      int             `json:"gameweek"`
	Position      player.Position `json:"position"`
	MinutesPlayed int             `json:"minutes_played"`
	Matches       int             `json:"matches"`
	BasePoints    int             `json:"base_points"`
	BonusPoints   int             `json:"bonus_points"`
	TotalPoints   int             `json:"total_points"`
	Breakdown     Breakdown       `json:"breakdown"`
	CalculatedAt  time.Time       `json:"calculated_at"`
}

// EntryPoints is a roster entry's share of a team gameweek result.
// CountedPoints is what the entry adds to the team total.
type EntryPoints struct {
	PlayerID      string          `json:"player_id"`
	Position      player.Position `json:"position"`
	Role          fantasy.Role    `json:"role"`
	BasePoints    int             `json:"base_points"`
	BonusPoints   int             `json:"bonus_points"`
	Multiplier    float64         `json:"multiplier"`
	FinalPoints   float64         `json:"final_points"`
	CountedPoints float64         `json:"counted_points"`
	Breakdown     Breakdown       `json:"breakdown"`
}

// TeamGameweekPoints is the stored record for one fantasy team in one
// gameweek, keyed by (league, team, gameweek).
type TeamGameweekPoints struct {
	LeagueID     string        `json:"league_id"`
	TeamID       string        `json:"team_id"`
	Gameweek     int           `json:"gameweek"`
	Chip         fantasy.Chip  `json:"chip,omitempty"`
	Points       float64       `json:"points"`
	Provisional  bool          `json:"provisional"`
	Entries      []EntryPoints `json:"entries"`
	CalculatedAt time.Time     `json:"calculated_at"`
}

// PointsHistoryItem is one gameweek line of a team's season history.
type PointsHistoryItem struct {
	Gameweek int     `json:"gameweek"`
	Points   float64 `json:"points"`
}

// SeasonSummary is derived from stored team gameweek rows on read.
type SeasonSummary struct {
	LeagueID        string              `json:"league_id"`
	TeamID          string              `json:"team_id"`
	TotalPoints     float64             `json:"total_points"`
	AveragePoints   float64             `json:"average_points"`
	HighestPoints   float64             `json:"highest_points"`
	HighestGameweek int                 `json:"highest_gameweek"`
	Gameweeks       int                 `json:"gameweeks"`
	History         []PointsHistoryItem `json:"history"`
}
