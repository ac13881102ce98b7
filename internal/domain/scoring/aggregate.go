package scoring

import (
	"cmp"
	"slices"

	"github.com/riskibarqy/fantasy-scoring/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/player"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/playerstats"
)

// MatchPlayerScore is one player's base score in one fixture.
type MatchPlayerScore struct {
	PlayerID      string
	Position      player.Position
	MinutesPlayed int
	Breakdown     Breakdown
}

// MatchScores holds every scored stat line of a fixture and its bonus awards.
type MatchScores struct {
	FixtureID string
	Players   []MatchPlayerScore
	Bonus     map[string]int
}

// ScoreMatch computes base points for every stat line of one fixture and
// then ranks players who played for bonus. Duplicate lines for the same
// player keep the first one. Players missing from positions score as midfielders.
func ScoreMatch(rules Rules, fixtureID string, stats []playerstats.MatchStat, positions map[string]player.Position) MatchScores {
	out := MatchScores{FixtureID: fixtureID, Players: make([]MatchPlayerScore, 0, len(stats))}
	contributions := make([]Contribution, 0, len(stats))
	seen := make(map[string]struct{}, len(stats))

	for _, stat := range stats {
		if stat.PlayerID == "" {
			continue
		}
		if _, ok := seen[stat.PlayerID]; ok {
			continue
		}
		seen[stat.PlayerID] = struct{}{}

		pos := positions[stat.PlayerID].Normalize()
		breakdown := CalculateBasePoints(rules, stat, pos)
		out.Players = append(out.Players, MatchPlayerScore{
			PlayerID:      stat.PlayerID,
			Position:      pos,
			MinutesPlayed: nonNegative(stat.MinutesPlayed),
			Breakdown:     breakdown,
		})
		if stat.Played() {
			contributions = append(contributions, Contribution{PlayerID: stat.PlayerID, Score: breakdown.Total()})
		}
	}

	out.Bonus = CalculateBonus(contributions, rules.Awards())
	return out
}

// BuildPlayerGameweekPoints folds match scores into one record per player,
// sorted by player id. CalculatedAt is left for the caller.
func BuildPlayerGameweekPoints(leagueID string, gameweek int, matches []MatchScores) []PlayerGameweekPoints {
	byPlayer := make(map[string]*PlayerGameweekPoints)
	for _, match := range matches {
		for _, item := range match.Players {
			record, ok := byPlayer[item.PlayerID]
			if !ok {
				record = &PlayerGameweekPoints{
					LeagueID:  leagueID,
					PlayerID:  item.PlayerID,
					Gameweek:  gameweek,
					Position:  item.Position,
					Breakdown: EmptyBreakdown(),
				}
				byPlayer[item.PlayerID] = record
			}
			record.Matches++
			record.MinutesPlayed += item.MinutesPlayed
			record.Breakdown = record.Breakdown.Merge(item.Breakdown)
			record.BonusPoints += match.Bonus[item.PlayerID]
		}
	}

	out := make([]PlayerGameweekPoints, 0, len(byPlayer))
	for _, record := range byPlayer {
		record.BasePoints = record.Breakdown.Total()
		record.TotalPoints = record.BasePoints + record.BonusPoints
		out = append(out, *record)
	}
	slices.SortFunc(out, func(a, b PlayerGameweekPoints) int {
		return cmp.Compare(a.PlayerID, b.PlayerID)
	})
	return out
}

// ScoreEntry applies an entry's role to its gameweek record. Substitutes
// count zero unless the roster plays the bench boost chip. Bonus is added
// after the multiplier.
func ScoreEntry(rules Rules, entry fantasy.RosterEntry, chip fantasy.Chip, record PlayerGameweekPoints, found bool) EntryPoints {
	position := entry.Position.Normalize()
	breakdown := EmptyBreakdown()
	bonus := 0
	if found {
		if record.Position != "" {
			position = record.Position
		}
		breakdown = record.Breakdown
		bonus = record.BonusPoints
	}

	points := applyRole(rules, entry, chip, breakdown)
	counted := points.FinalPoints + float64(bonus)
	if entry.Role.IsSubstitute() && chip != fantasy.ChipBenchBoost {
		counted = 0
	}

	return EntryPoints{
		PlayerID:      entry.PlayerID,
		Position:      position,
		Role:          entry.Role,
		BasePoints:    points.BasePoints,
		BonusPoints:   bonus,
		Multiplier:    points.Multiplier,
		FinalPoints:   points.FinalPoints,
		CountedPoints: counted,
		Breakdown:     points.Breakdown,
	}
}

// AggregateTeam scores every roster entry and sums the counted points.
// Entries without a gameweek record score zero. CalculatedAt and
// Provisional are left for the caller.
func AggregateTeam(rules Rules, roster fantasy.Roster, records map[string]PlayerGameweekPoints) TeamGameweekPoints {
	out := TeamGameweekPoints{
		LeagueID: roster.LeagueID,
		TeamID:   roster.TeamID,
		Gameweek: roster.Gameweek,
		Chip:     roster.Chip,
		Entries:  make([]EntryPoints, 0, len(roster.Entries)),
	}

	for _, entry := range roster.Entries {
		record, found := records[entry.PlayerID]
		scored := ScoreEntry(rules, entry, roster.Chip, record, found)
		out.Points += scored.CountedPoints
		out.Entries = append(out.Entries, scored)
	}

	return out
}

// Summarize derives season totals from stored team rows. Rows are ordered
// by gameweek and a repeated gameweek keeps the last row seen.
func Summarize(leagueID, teamID string, rows []TeamGameweekPoints) SeasonSummary {
	byGameweek := make(map[int]float64, len(rows))
	for _, row := range rows {
		byGameweek[row.Gameweek] = row.Points
	}

	out := SeasonSummary{
		LeagueID: leagueID,
		TeamID:   teamID,
		History:  make([]PointsHistoryItem, 0, len(byGameweek)),
	}
	for gameweek, points := range byGameweek {
		out.History = append(out.History, PointsHistoryItem{Gameweek: gameweek, Points: points})
	}
	slices.SortFunc(out.History, func(a, b PointsHistoryItem) int {
		return cmp.Compare(a.Gameweek, b.Gameweek)
	})

	for i, item := range out.History {
		out.TotalPoints += item.Points
		if i == 0 || item.Points > out.HighestPoints {
			out.HighestPoints = item.Points
			out.HighestGameweek = item.Gameweek
		}
	}
	out.Gameweeks = len(out.History)
	if out.Gameweeks > 0 {
		out.AveragePoints = out.TotalPoints / float64(out.Gameweeks)
	}

	return out
}
