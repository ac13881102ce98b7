package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-scoring/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/fixture"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/player"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/playerstats"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/scoring"
)

var (
	_ fixture.Repository     = (*FixtureRepository)(nil)
	_ player.Repository      = (*PlayerRepository)(nil)
	_ playerstats.Repository = (*PlayerStatsRepository)(nil)
	_ fantasy.Repository     = (*RosterRepository)(nil)
	_ scoring.Repository     = (*ScoringRepository)(nil)
)

func TestSeedRostersAreValid(t *testing.T) {
	for _, roster := range SeedRosters() {
		require.NoError(t, fantasy.ValidateRoster(roster), "team=%s gameweek=%d", roster.TeamID, roster.Gameweek)
	}
}

func TestFixtureRepository_ListByLeagueAndGameweek(t *testing.T) {
	repo := NewFixtureRepository(SeedFixtures())

	items, err := repo.ListByLeagueAndGameweek(context.Background(), LeagueIDLiga1Indonesia, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "fx-idn-003", items[0].ID)

	assert.True(t, repo.SetStatus(LeagueIDLiga1Indonesia, "fx-idn-004", fixture.StatusFinished))
	items, err = repo.ListByLeagueAndGameweek(context.Background(), LeagueIDLiga1Indonesia, 2)
	require.NoError(t, err)
	assert.True(t, fixture.AllSettled(items))

	none, err := repo.ListByLeagueAndGameweek(context.Background(), LeagueIDLiga1Indonesia, 38)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestScoringRepository_UpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewScoringRepository()

	row := scoring.TeamGameweekPoints{LeagueID: "l1", TeamID: "t1", Gameweek: 1, Points: 10,
		Entries: []scoring.EntryPoints{{PlayerID: "p1", Breakdown: scoring.EmptyBreakdown()}}}
	require.NoError(t, repo.UpsertTeamGameweekPoints(ctx, row))
	row.Points = 12
	require.NoError(t, repo.UpsertTeamGameweekPoints(ctx, row))
	require.NoError(t, repo.UpsertTeamGameweekPoints(ctx, scoring.TeamGameweekPoints{LeagueID: "l1", TeamID: "t1", Gameweek: 2, Points: 5}))

	items, err := repo.ListTeamGameweekPoints(ctx, "l1", "t1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 12.0, items[0].Points)

	got, ok, err := repo.GetTeamGameweekPoints(ctx, "l1", "t1", 1)
	require.NoError(t, err)
	require.True(t, ok)
	got.Entries[0].Breakdown.Categories[0].Points = 99

	again, _, _ := repo.GetTeamGameweekPoints(ctx, "l1", "t1", 1)
	assert.Equal(t, 0, again.Entries[0].Breakdown.Categories[0].Points, "stored row must not alias caller data")

	_, teams := repo.Counts()
	assert.Equal(t, 2, teams)
}
