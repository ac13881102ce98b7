//go:build integration

package postgres

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/player"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

const testLeagueID = "idn-liga-1"

func startPostgres(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("fantasy_scoring"),
		tcpostgres.WithUsername("scoring"),
		tcpostgres.WithPassword("scoring"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	m, err := migrate.New("file://"+filepath.ToSlash(migrationsDir(t)), dsn)
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("apply migrations: %v", err)
	}
	_, _ = m.Close()

	db, err := sqlx.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func migrationsDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "db", "migrations"))
}

func seedSourceRows(t *testing.T, db *sqlx.DB) {
	t.Helper()

	statements := []string{
		`INSERT INTO players (public_id, league_public_id, team_public_id, name, position) VALUES
			('p-gk', 'idn-liga-1', 'persib', 'Teja Paku Alam', 'Goalkeeper'),
			('p-fw', 'idn-liga-1', 'persib', 'David da Silva', 'Attacker'),
			('p-mid', 'idn-liga-1', 'persija', 'Rizky Ridho', 'MID'),
			('p-other', 'other-league', 'x', 'Elsewhere', 'FWD')`,
		`INSERT INTO fixtures (public_id, league_public_id, gameweek, home_team_public_id, away_team_public_id, kickoff_at, home_score, away_score, status) VALUES
			('fx-2', 'idn-liga-1', 1, 'persija', 'persebaya', '2026-08-10T12:00:00Z', NULL, NULL, 'live'),
			('fx-1', 'idn-liga-1', 1, 'persib', 'persija', '2026-08-09T12:00:00Z', 2, 0, 'FT'),
			('fx-9', 'idn-liga-1', 2, 'persib', 'persebaya', '2026-08-16T12:00:00Z', NULL, NULL, 'NS')`,
		`INSERT INTO player_match_stats (fixture_public_id, player_public_id, team_public_id, minutes_played, goals, assists, clean_sheet) VALUES
			('fx-1', 'p-fw', 'persib', 90, 2, 0, TRUE),
			('fx-1', 'p-gk', 'persib', 90, 0, 0, TRUE),
			('fx-9', 'p-fw', 'persib', 0, 0, 0, FALSE)`,
		`INSERT INTO fantasy_rosters (id, league_public_id, team_public_id, gameweek, chip) VALUES
			(1, 'idn-liga-1', 'team-b', 1, 'BENCH_BOOST'),
			(2, 'idn-liga-1', 'team-a', 1, '')`,
		`INSERT INTO fantasy_roster_entries (roster_id, player_public_id, position, role, slot) VALUES
			(1, 'p-mid', 'MID', 'SUBSTITUTE', 2),
			(1, 'p-fw', 'FWD', 'CAPTAIN', 1),
			(2, 'p-gk', 'GK', 'VICE_CAPTAIN', 1)`,
	}
	for _, statement := range statements {
		_, err := db.Exec(statement)
		require.NoError(t, err)
	}
}

func TestPostgresRepositories(t *testing.T) {
	db := startPostgres(t)
	seedSourceRows(t, db)
	ctx := context.Background()

	t.Run("fixtures by gameweek ordered by kickoff", func(t *testing.T) {
		items, err := NewFixtureRepository(db).ListByLeagueAndGameweek(ctx, testLeagueID, 1)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "fx-1", items[0].ID)
		assert.True(t, items[0].Settled())
		require.NotNil(t, items[0].HomeScore)
		assert.Equal(t, 2, *items[0].HomeScore)
		assert.Nil(t, items[1].HomeScore)
		assert.Equal(t, "LIVE", items[1].Status)
	})

	t.Run("players normalize positions and stay in league", func(t *testing.T) {
		items, err := NewPlayerRepository(db).GetByIDs(ctx, testLeagueID, []string{"p-fw", "p-gk", "p-other", "missing"})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, player.PositionForward, items[0].Position)
		assert.Equal(t, player.PositionGoalkeeper, items[1].Position)
	})

	t.Run("match stats by fixtures", func(t *testing.T) {
		items, err := NewPlayerStatsRepository(db).ListMatchStatsByFixtures(ctx, []string{"fx-1", "fx-2"})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "p-fw", items[0].PlayerID)
		assert.Equal(t, 2, items[0].Goals)
		assert.True(t, items[1].CleanSheet)
	})

	t.Run("rosters with entries in slot order", func(t *testing.T) {
		repo := NewRosterRepository(db)
		rosters, err := repo.ListRostersByGameweek(ctx, testLeagueID, 1)
		require.NoError(t, err)
		require.Len(t, rosters, 2)
		assert.Equal(t, "team-a", rosters[0].TeamID)
		assert.Equal(t, fantasy.ChipBenchBoost, rosters[1].Chip)
		require.Len(t, rosters[1].Entries, 2)
		assert.Equal(t, fantasy.RoleCaptain, rosters[1].Entries[0].Role)
		assert.Equal(t, fantasy.RoleSubstitute, rosters[1].Entries[1].Role)

		_, found, err := repo.GetRoster(ctx, testLeagueID, "team-z", 1)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("point rows upsert in place", func(t *testing.T) {
		repo := NewScoringRepository(db)
		calculatedAt := time.Date(2026, 8, 11, 0, 0, 0, 0, time.UTC)

		breakdown := scoring.EmptyBreakdown()
		breakdown.Categories[0].Points = 2
		record := scoring.PlayerGameweekPoints{
			LeagueID:      testLeagueID,
			PlayerID:      "p-fw",
			Gameweek:      1,
			Position:      player.PositionForward,
			MinutesPlayed: 90,
			Matches:       1,
			BasePoints:    2,
			BonusPoints:   3,
			TotalPoints:   5,
			Breakdown:     breakdown,
			CalculatedAt:  calculatedAt,
		}
		require.NoError(t, repo.UpsertPlayerGameweekPoints(ctx, record))
		record.BonusPoints = 2
		record.TotalPoints = 4
		require.NoError(t, repo.UpsertPlayerGameweekPoints(ctx, record))

		stored, found, err := repo.GetPlayerGameweekPoints(ctx, testLeagueID, "p-fw", 1)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 4, stored.TotalPoints)
		assert.Equal(t, 2, stored.Breakdown.Points(scoring.CategoryMinutes))

		team := scoring.TeamGameweekPoints{
			LeagueID:    testLeagueID,
			TeamID:      "team-b",
			Gameweek:    1,
			Chip:        fantasy.ChipBenchBoost,
			Points:      12.5,
			Provisional: true,
			Entries: []scoring.EntryPoints{
				{PlayerID: "p-fw", Role: fantasy.RoleCaptain, Multiplier: 2, FinalPoints: 12.5, CountedPoints: 12.5, Breakdown: breakdown},
			},
			CalculatedAt: calculatedAt,
		}
		require.NoError(t, repo.UpsertTeamGameweekPoints(ctx, team))
		team.Points = 10
		team.Provisional = false
		require.NoError(t, repo.UpsertTeamGameweekPoints(ctx, team))

		rows, err := repo.ListTeamGameweekPoints(ctx, testLeagueID, "team-b")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 10.0, rows[0].Points)
		assert.False(t, rows[0].Provisional)
		require.Len(t, rows[0].Entries, 1)
		assert.Equal(t, fantasy.RoleCaptain, rows[0].Entries[0].Role)

		_, found, err = repo.GetTeamGameweekPoints(ctx, testLeagueID, "team-b", 2)
		require.NoError(t, err)
		assert.False(t, found)
	})
}
