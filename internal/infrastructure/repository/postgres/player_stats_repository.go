package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/playerstats"
	qb "github.com/riskibarqy/fantasy-scoring/internal/platform/querybuilder"
)

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) ListMatchStatsByFixtures(ctx context.Context, fixtureIDs []string) ([]playerstats.MatchStat, error) {
	if len(fixtureIDs) == 0 {
		return []playerstats.MatchStat{}, nil
	}

	query, args, err := qb.Select("*").From("player_match_stats").
		Where(
			qb.Expr("fixture_public_id = ANY(?)", pq.Array(fixtureIDs)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("fixture_public_id", "player_public_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select match stats by fixtures query")
	}

	var rows []playerMatchStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select match stats fixtures=%d", len(fixtureIDs))
	}

	out := make([]playerstats.MatchStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerstats.MatchStat{
			PlayerID:        row.PlayerID,
			FixtureID:       row.FixtureID,
			TeamID:          row.TeamID,
			MinutesPlayed:   row.MinutesPlayed,
			Goals:           row.Goals,
			Assists:         row.Assists,
			CleanSheet:      row.CleanSheet,
			GoalsConceded:   row.GoalsConceded,
			YellowCards:     row.YellowCards,
			RedCards:        row.RedCards,
			PenaltiesSaved:  row.PenaltiesSaved,
			PenaltiesMissed: row.PenaltiesMissed,
		})
	}

	return out, nil
}
