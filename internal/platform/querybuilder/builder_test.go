package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("fixture_id", "player_id").
		From("player_match_stats").
		Where(In("fixture_id", []string{"f1", "f2"}), IsNull("deleted_at"), Expr("minutes_played >= ?", 0)).
		OrderBy("fixture_id", "player_id").
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "SELECT fixture_id, player_id FROM player_match_stats WHERE fixture_id IN ($1, $2) AND deleted_at IS NULL AND minutes_played >= $3 ORDER BY fixture_id, player_id", query)
	assert.Equal(t, []any{"f1", "f2", 0}, args)
}

func TestSelectBuilder_EmptyInMatchesNothing(t *testing.T) {
	query, args, err := Select("id").From("fixtures").Where(Eq("league_id", "l1"), In[string]("id", nil)).ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM fixtures WHERE league_id = $1 AND 1=0", query)
	assert.Equal(t, []any{"l1"}, args)
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	_, _, err := Select("id").ToSQL()
	assert.Error(t, err)
}

type pointsRow struct {
	LeagueID string  `db:"league_id"`
	TeamID   string  `db:"team_id"`
	Gameweek int     `db:"gameweek"`
	Points   float64 `db:"points"`
	ignored  string
	Skipped  string `db:"-"`
}

func TestUpsertModel(t *testing.T) {
	query, args, err := UpsertModel("team_gameweek_points", pointsRow{
		LeagueID: "l1",
		TeamID:   "t1",
		Gameweek: 4,
		Points:   42.5,
		ignored:  "x",
		Skipped:  "y",
	}, "league_id", "team_id", "gameweek")
	require.NoError(t, err)

	want := "INSERT INTO team_gameweek_points (league_id, team_id, gameweek, points) VALUES ($1, $2, $3, $4) " +
		"ON CONFLICT (league_id, team_id, gameweek) DO UPDATE SET points = EXCLUDED.points"
	assert.Equal(t, want, query)
	assert.Equal(t, []any{"l1", "t1", 4, 42.5}, args)
}

func TestUpsertModel_AllKeys(t *testing.T) {
	_, _, err := UpsertModel("x", struct {
		ID string `db:"id"`
	}{ID: "1"}, "id")
	assert.Error(t, err)
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("t").Columns("a", "b").Values(1).ToSQL()
	assert.Error(t, err)
}
