package scoring

import (
	"github.com/riskibarqy/fantasy-scoring/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/player"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/playerstats"
)

// PlayerPoints is one roster entry's score for a match or a gameweek.
type PlayerPoints struct {
	PlayerID    string
	Role        fantasy.Role
	BasePoints  int
	Multiplier  float64
	FinalPoints float64
	Breakdown   Breakdown
}

// CalculatePlayerPoints scores a single match stat line for a roster entry.
// FinalPoints is BasePoints times the role multiplier with no clamping.
func CalculatePlayerPoints(rules Rules, entry fantasy.RosterEntry, chip fantasy.Chip, stat playerstats.MatchStat, position player.Position) PlayerPoints {
	return applyRole(rules, entry, chip, CalculateBasePoints(rules, stat, position))
}

// CalculateBasePoints computes the category lines for one stat line.
// Negative counters are treated as missing.
func CalculateBasePoints(rules Rules, stat playerstats.MatchStat, position player.Position) Breakdown {
	pos := position.Normalize()

	minutes := nonNegative(stat.MinutesPlayed)
	cleanSheet := 0
	if stat.CleanSheet {
		cleanSheet = rules.CleanSheetPoints.For(pos)
	}

	values := map[Category]int{
		CategoryMinutes:         minutesPoints(rules, minutes),
		CategoryGoals:           nonNegative(stat.Goals) * rules.GoalPoints.For(pos),
		CategoryAssists:         nonNegative(stat.Assists) * rules.AssistPoints,
		CategoryCleanSheet:      cleanSheet,
		CategoryGoalsConceded:   floorDiv(nonNegative(stat.GoalsConceded), rules.GoalsConcededBlock) * rules.GoalsConcededPenalty.For(pos),
		CategoryYellowCards:     nonNegative(stat.YellowCards) * rules.YellowCardPoints,
		CategoryRedCards:        nonNegative(stat.RedCards) * rules.RedCardPoints,
		CategoryPenaltiesSaved:  nonNegative(stat.PenaltiesSaved) * rules.PenaltySavePoints.For(pos),
		CategoryPenaltiesMissed: nonNegative(stat.PenaltiesMissed) * rules.PenaltyMissPoints,
	}

	out := EmptyBreakdown()
	for i := range out.Categories {
		out.Categories[i].Points = values[out.Categories[i].Category]
	}
	return out
}

// Multiplier returns the factor applied to an entry's base points.
// Substitutes report 1 so their display value equals their base points.
func Multiplier(rules Rules, role fantasy.Role, chip fantasy.Chip) float64 {
	switch role {
	case fantasy.RoleCaptain:
		if chip == fantasy.ChipTripleCaptain {
			return rules.TripleCaptainMultiplier
		}
		return rules.CaptainMultiplier
	case fantasy.RoleViceCaptain:
		return rules.ViceCaptainMultiplier
	default:
		return 1
	}
}

func applyRole(rules Rules, entry fantasy.RosterEntry, chip fantasy.Chip, breakdown Breakdown) PlayerPoints {
	multiplier := Multiplier(rules, entry.Role, chip)
	breakdown = breakdown.clone()
	breakdown.Multiplier = multiplier
	base := breakdown.Total()

	return PlayerPoints{
		PlayerID:    entry.PlayerID,
		Role:        entry.Role,
		BasePoints:  base,
		Multiplier:  multiplier,
		FinalPoints: float64(base) * multiplier,
		Breakdown:   breakdown,
	}
}

func minutesPoints(rules Rules, minutes int) int {
	switch rules.MinutesPolicy {
	case MinutesPolicyFlatThreshold:
		if minutes <= 0 {
			return 0
		}
		if minutes > rules.FlatThresholdMinutes {
			return rules.FlatThresholdPoints
		}
		return rules.FlatAppearancePoints
	default:
		return floorDiv(minutes, rules.MinutesBlock) * rules.PointsPerMinutesBlock
	}
}

func floorDiv(value, block int) int {
	if block <= 0 {
		return 0
	}
	return value / block
}

func nonNegative(value int) int {
	if value < 0 {
		return 0
	}
	return value
}
