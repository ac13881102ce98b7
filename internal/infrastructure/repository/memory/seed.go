package memory

import (
	"time"

	"github.com/riskibarqy/fantasy-scoring/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/fixture"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/player"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/playerstats"
)

const LeagueIDLiga1Indonesia = "idn-liga-1-2025"

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "idn-gk-01", LeagueID: LeagueIDLiga1Indonesia, TeamID: "idn-persija", Name: "Andritany Ardhiyasa", Position: player.PositionGoalkeeper},
		{ID: "idn-gk-02", LeagueID: LeagueIDLiga1Indonesia, TeamID: "idn-persib", Name: "Teja Paku Alam", Position: player.PositionGoalkeeper},
		{ID: "idn-def-01", LeagueID: LeagueIDLiga1Indonesia, TeamID: "idn-persija", Name: "Hansamu Yama", Position: player.PositionDefender},
		{ID: "idn-def-02", LeagueID: LeagueIDLiga1Indonesia, TeamID: "idn-persib", Name: "Nick Kuipers", Position: player.PositionDefender},
		{ID: "idn-def-03", LeagueID: LeagueIDLiga1Indonesia, TeamID: "idn-persebaya", Name: "Dusan Stevanovic", Position: player.PositionDefender},
		{ID: "idn-def-04", LeagueID: LeagueIDLiga1Indonesia, TeamID: "idn-baliutd", Name: "Ricky Fajrin", Position: player.PositionDefender},
		{ID: "idn-mid-01", LeagueID: LeagueIDLiga1Indonesia, TeamID: "idn-persija", Name: "Maciej Gajos", Position: player.PositionMidfielder},
		{ID: "idn-mid-02", LeagueID: LeagueIDLiga1Indonesia, TeamID: "idn-persib", Name: "Marc Klok", Position: player.PositionMidfielder},
		{ID: "idn-mid-03", LeagueID: LeagueIDLiga1Indonesia, TeamID: "idn-persebaya", Name: "Bruno Moreira", Position: player.PositionMidfielder},
		{ID: "idn-mid-04", LeagueID: LeagueIDLiga1Indonesia, TeamID: "idn-baliutd", Name: "Eber Bessa", Position: player.PositionMidfielder},
		{ID: "idn-fwd-01", LeagueID: LeagueIDLiga1Indonesia, TeamID: "idn-persija", Name: "Gustavo Almeida", Position: player.PositionForward},
		{ID: "idn-fwd-02", LeagueID: LeagueIDLiga1Indonesia, TeamID: "idn-persib", Name: "David da Silva", Position: player.PositionForward},
		{ID: "idn-fwd-03", LeagueID: LeagueIDLiga1Indonesia, TeamID: "idn-persebaya", Name: "Paulo Henrique", Position: player.PositionForward},
		{ID: "idn-fwd-04", LeagueID: LeagueIDLiga1Indonesia, TeamID: "idn-baliutd", Name: "Irfan Jaya", Position: player.Position("Attacker")},
	}
}

func SeedFixtures() []fixture.Fixture {
	return []fixture.Fixture{
		{
			ID:         "fx-idn-001",
			LeagueID:   LeagueIDLiga1Indonesia,
			Gameweek:   1,
			HomeTeamID: "idn-persija",
			AwayTeamID: "idn-persib",
			KickoffAt:  time.Date(2026, 2, 14, 19, 0, 0, 0, time.UTC),
			Status:     fixture.StatusFinished,
		},
		{
			ID:         "fx-idn-002",
			LeagueID:   LeagueIDLiga1Indonesia,
			Gameweek:   1,
			HomeTeamID: "idn-persebaya",
			AwayTeamID: "idn-baliutd",
			KickoffAt:  time.Date(2026, 2, 15, 12, 30, 0, 0, time.UTC),
			Status:     fixture.StatusFinished,
		},
		{
			ID:         "fx-idn-003",
			LeagueID:   LeagueIDLiga1Indonesia,
			Gameweek:   2,
			HomeTeamID: "idn-persib",
			AwayTeamID: "idn-persebaya",
			KickoffAt:  time.Date(2026, 2, 21, 12, 30, 0, 0, time.UTC),
			Status:     fixture.StatusFinished,
		},
		{
			ID:         "fx-idn-004",
			LeagueID:   LeagueIDLiga1Indonesia,
			Gameweek:   2,
			HomeTeamID: "idn-baliutd",
			AwayTeamID: "idn-persija",
			KickoffAt:  time.Date(2026, 2, 22, 12, 30, 0, 0, time.UTC),
			Status:     fixture.StatusLive,
		},
	}
}

func SeedMatchStats() []playerstats.MatchStat {
	return []playerstats.MatchStat{
		// Persija 2-0 Persib
		{FixtureID: "fx-idn-001", PlayerID: "idn-gk-01", TeamID: "idn-persija", MinutesPlayed: 90, CleanSheet: true, PenaltiesSaved: 1},
		{FixtureID: "fx-idn-001", PlayerID: "idn-def-01", TeamID: "idn-persija", MinutesPlayed: 90, CleanSheet: true, YellowCards: 1},
		{FixtureID: "fx-idn-001", PlayerID: "idn-mid-01", TeamID: "idn-persija", MinutesPlayed: 78, Assists: 2, CleanSheet: true},
		{FixtureID: "fx-idn-001", PlayerID: "idn-fwd-01", TeamID: "idn-persija", MinutesPlayed: 90, Goals: 2},
		{FixtureID: "fx-idn-001", PlayerID: "idn-gk-02", TeamID: "idn-persib", MinutesPlayed: 90, GoalsConceded: 2},
		{FixtureID: "fx-idn-001", PlayerID: "idn-def-02", TeamID: "idn-persib", MinutesPlayed: 90, GoalsConceded: 2},
		{FixtureID: "fx-idn-001", PlayerID: "idn-mid-02", TeamID: "idn-persib", MinutesPlayed: 90, RedCards: 1},
		{FixtureID: "fx-idn-001", PlayerID: "idn-fwd-02", TeamID: "idn-persib", MinutesPlayed: 64, PenaltiesMissed: 1},
		// Persebaya 1-1 Bali United
		{FixtureID: "fx-idn-002", PlayerID: "idn-def-03", TeamID: "idn-persebaya", MinutesPlayed: 90, GoalsConceded: 1},
		{FixtureID: "fx-idn-002", PlayerID: "idn-mid-03", TeamID: "idn-persebaya", MinutesPlayed: 90, Goals: 1},
		{FixtureID: "fx-idn-002", PlayerID: "idn-fwd-03", TeamID: "idn-persebaya", MinutesPlayed: 30},
		{FixtureID: "fx-idn-002", PlayerID: "idn-def-04", TeamID: "idn-baliutd", MinutesPlayed: 90, GoalsConceded: 1},
		{FixtureID: "fx-idn-002", PlayerID: "idn-mid-04", TeamID: "idn-baliutd", MinutesPlayed: 85, Assists: 1},
		{FixtureID: "fx-idn-002", PlayerID: "idn-fwd-04", TeamID: "idn-baliutd", MinutesPlayed: 90, Goals: 1},
		// Persib 3-1 Persebaya
		{FixtureID: "fx-idn-003", PlayerID: "idn-gk-02", TeamID: "idn-persib", MinutesPlayed: 90, GoalsConceded: 1},
		{FixtureID: "fx-idn-003", PlayerID: "idn-fwd-02", TeamID: "idn-persib", MinutesPlayed: 90, Goals: 3},
		{FixtureID: "fx-idn-003", PlayerID: "idn-mid-02", TeamID: "idn-persib", MinutesPlayed: 90, Assists: 2},
		{FixtureID: "fx-idn-003", PlayerID: "idn-mid-03", TeamID: "idn-persebaya", MinutesPlayed: 90, Goals: 1, YellowCards: 1},
		// Bali United vs Persija, in progress
		{FixtureID: "fx-idn-004", PlayerID: "idn-fwd-01", TeamID: "idn-persija", MinutesPlayed: 55, Goals: 1},
		{FixtureID: "fx-idn-004", PlayerID: "idn-gk-01", TeamID: "idn-persija", MinutesPlayed: 55},
	}
}

func SeedRosters() []fantasy.Roster {
	gameweekOne := []fantasy.Roster{
		{
			LeagueID: LeagueIDLiga1Indonesia,
			TeamID:   "fantasy-garuda",
			Gameweek: 1,
			Entries: []fantasy.RosterEntry{
				{PlayerID: "idn-gk-01", Position: player.PositionGoalkeeper, Role: fantasy.RoleStarter},
				{PlayerID: "idn-def-01", Position: player.PositionDefender, Role: fantasy.RoleStarter},
				{PlayerID: "idn-def-03", Position: player.PositionDefender, Role: fantasy.RoleStarter},
				{PlayerID: "idn-mid-01", Position: player.PositionMidfielder, Role: fantasy.RoleViceCaptain},
				{PlayerID: "idn-mid-03", Position: player.PositionMidfielder, Role: fantasy.RoleStarter},
				{PlayerID: "idn-fwd-01", Position: player.PositionForward, Role: fantasy.RoleCaptain},
				{PlayerID: "idn-gk-02", Position: player.PositionGoalkeeper, Role: fantasy.RoleSubstitute},
				{PlayerID: "idn-fwd-04", Position: player.PositionForward, Role: fantasy.RoleSubstitute},
			},
		},
		{
			LeagueID: LeagueIDLiga1Indonesia,
			TeamID:   "fantasy-maung",
			Gameweek: 1,
			Chip:     fantasy.ChipBenchBoost,
			Entries: []fantasy.RosterEntry{
				{PlayerID: "idn-gk-02", Position: player.PositionGoalkeeper, Role: fantasy.RoleStarter},
				{PlayerID: "idn-def-02", Position: player.PositionDefender, Role: fantasy.RoleStarter},
				{PlayerID: "idn-def-04", Position: player.PositionDefender, Role: fantasy.RoleViceCaptain},
				{PlayerID: "idn-mid-02", Position: player.PositionMidfielder, Role: fantasy.RoleStarter},
				{PlayerID: "idn-mid-04", Position: player.PositionMidfielder, Role: fantasy.RoleStarter},
				{PlayerID: "idn-fwd-02", Position: player.PositionForward, Role: fantasy.RoleCaptain},
				{PlayerID: "idn-fwd-03", Position: player.PositionForward, Role: fantasy.RoleSubstitute},
			},
		},
		{
			LeagueID: LeagueIDLiga1Indonesia,
			TeamID:   "fantasy-suroboyo",
			Gameweek: 1,
			Chip:     fantasy.ChipTripleCaptain,
			Entries: []fantasy.RosterEntry{
				{PlayerID: "idn-gk-01", Position: player.PositionGoalkeeper, Role: fantasy.RoleStarter},
				{PlayerID: "idn-def-03", Position: player.PositionDefender, Role: fantasy.RoleStarter},
				{PlayerID: "idn-mid-03", Position: player.PositionMidfielder, Role: fantasy.RoleCaptain},
				{PlayerID: "idn-fwd-03", Position: player.PositionForward, Role: fantasy.RoleStarter},
				{PlayerID: "idn-fwd-01", Position: player.PositionForward, Role: fantasy.RoleSubstitute},
			},
		},
	}

	out := append([]fantasy.Roster(nil), gameweekOne...)
	for _, roster := range gameweekOne {
		next := cloneRoster(roster)
		next.Gameweek = 2
		next.Chip = fantasy.ChipNone
		out = append(out, next)
	}
	return out
}

// SeededRepositories bundles memory repositories preloaded with demo data.
type SeededRepositories struct {
	Fixtures *FixtureRepository
	Players  *PlayerRepository
	Stats    *PlayerStatsRepository
	Rosters  *RosterRepository
	Scoring  *ScoringRepository
}

func NewSeededRepositories() SeededRepositories {
	return SeededRepositories{
		Fixtures: NewFixtureRepository(SeedFixtures()),
		Players:  NewPlayerRepository(SeedPlayers()),
		Stats:    NewPlayerStatsRepository(SeedMatchStats()),
		Rosters:  NewRosterRepository(SeedRosters()),
		Scoring:  NewScoringRepository(),
	}
}
