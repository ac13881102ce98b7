package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/player"
	qb "github.com/riskibarqy/fantasy-scoring/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) ListRostersByGameweek(ctx context.Context, leagueID string, gameweek int) ([]fantasy.Roster, error) {
	query, args, err := qb.Select("*").From("fantasy_rosters").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("gameweek", gameweek),
			qb.IsNull("deleted_at"),
		).
		OrderBy("team_public_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select rosters by gameweek query")
	}

	var rows []rosterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select rosters league=%s gameweek=%d", leagueID, gameweek)
	}

	return r.withEntries(ctx, rows)
}

func (r *RosterRepository) GetRoster(ctx context.Context, leagueID, teamID string, gameweek int) (fantasy.Roster, bool, error) {
	query, args, err := qb.Select("*").From("fantasy_rosters").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("team_public_id", teamID),
			qb.Eq("gameweek", gameweek),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fantasy.Roster{}, false, crerr.Wrap(err, "build get roster query")
	}

	var row rosterTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fantasy.Roster{}, false, nil
		}
		return fantasy.Roster{}, false, crerr.Wrapf(err, "get roster team=%s gameweek=%d", teamID, gameweek)
	}

	rosters, err := r.withEntries(ctx, []rosterTableModel{row})
	if err != nil {
		return fantasy.Roster{}, false, err
	}
	return rosters[0], true, nil
}

func (r *RosterRepository) withEntries(ctx context.Context, rows []rosterTableModel) ([]fantasy.Roster, error) {
	if len(rows) == 0 {
		return []fantasy.Roster{}, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	query, args, err := qb.Select("*").From("fantasy_roster_entries").
		Where(
			qb.Expr("roster_id = ANY(?)", pq.Array(ids)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("roster_id", "slot", "id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select roster entries query")
	}

	var entryRows []rosterEntryTableModel
	if err := r.db.SelectContext(ctx, &entryRows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select roster entries rosters=%d", len(ids))
	}

	entriesByRoster := make(map[int64][]fantasy.RosterEntry, len(rows))
	for _, entryRow := range entryRows {
		role, err := fantasy.ParseRole(entryRow.Role)
		if err != nil {
			return nil, crerr.Wrapf(err, "roster entry id=%d", entryRow.ID)
		}
		entriesByRoster[entryRow.RosterID] = append(entriesByRoster[entryRow.RosterID], fantasy.RosterEntry{
			PlayerID: entryRow.PlayerID,
			Position: player.NormalizePosition(entryRow.Position),
			Role:     role,
		})
	}

	out := make([]fantasy.Roster, 0, len(rows))
	for _, row := range rows {
		chip, err := fantasy.ParseChip(row.Chip)
		if err != nil {
			return nil, crerr.Wrapf(err, "roster id=%d", row.ID)
		}
		entries := entriesByRoster[row.ID]
		if entries == nil {
			entries = []fantasy.RosterEntry{}
		}
		out = append(out, fantasy.Roster{
			LeagueID: row.LeagueID,
			TeamID:   row.TeamID,
			Gameweek: row.Gameweek,
			Chip:     chip,
			Entries:  entries,
		})
	}

	return out, nil
}
