package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/fixture"
	qb "github.com/riskibarqy/fantasy-scoring/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) ListByLeagueAndGameweek(ctx context.Context, leagueID string, gameweek int) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("gameweek", gameweek),
			qb.IsNull("deleted_at"),
		).
		OrderBy("kickoff_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select fixtures by gameweek query")
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select fixtures league=%s gameweek=%d", leagueID, gameweek)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, fixture.Fixture{
			ID:         row.PublicID,
			LeagueID:   row.LeagueID,
			Gameweek:   row.Gameweek,
			HomeTeamID: row.HomeTeamID,
			AwayTeamID: row.AwayTeamID,
			KickoffAt:  row.KickoffAt,
			HomeScore:  nullInt64ToIntPtr(row.HomeScore),
			AwayScore:  nullInt64ToIntPtr(row.AwayScore),
			Status:     fixture.NormalizeStatus(row.Status),
			FinishedAt: row.FinishedAt,
		})
	}

	return out, nil
}
