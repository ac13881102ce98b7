package fixture

import (
	"strings"
	"time"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusFinished  = "FINISHED"
	StatusCancelled = "CANCELLED"
	StatusPostponed = "POSTPONED"
)

// Fixture represents one scheduled match.
type Fixture struct {
	ID         string
	LeagueID   string
	Gameweek   int
	HomeTeamID string
	AwayTeamID string
	KickoffAt  time.Time
	HomeScore  *int
	AwayScore  *int
	Status     string
	FinishedAt *time.Time
}

// Settled reports whether the fixture's stats can no longer change.
func (f Fixture) Settled() bool {
	return IsFinishedStatus(f.Status) || IsCancelledLikeStatus(f.Status)
}

// AllSettled reports whether every fixture is finished or cancelled.
func AllSettled(items []Fixture) bool {
	for _, item := range items {
		if !item.Settled() {
			return false
		}
	}
	return true
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsFinishedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFinished, "FT", "AET", "PEN":
		return true
	default:
		return false
	}
}

func IsCancelledLikeStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusCancelled, StatusPostponed, "ABANDONED":
		return true
	default:
		return false
	}
}
