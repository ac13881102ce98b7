package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/player"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/scoring"
	qb "github.com/riskibarqy/fantasy-scoring/internal/platform/querybuilder"
)

type ScoringRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewScoringRepository(db *sqlx.DB) *ScoringRepository {
	return &ScoringRepository{db: db, now: time.Now}
}

func (r *ScoringRepository) UpsertPlayerGameweekPoints(ctx context.Context, points scoring.PlayerGameweekPoints) error {
	breakdown, err := encodeJSONB(points.Breakdown)
	if err != nil {
		return crerr.Wrapf(err, "player=%s gameweek=%d", points.PlayerID, points.Gameweek)
	}

	insertModel := playerGameweekPointsInsertModel{
		LeagueID:      points.LeagueID,
		PlayerID:      points.PlayerID,
		Gameweek:      points.Gameweek,
		Position:      string(points.Position),
		MinutesPlayed: points.MinutesPlayed,
		Matches:       points.Matches,
		BasePoints:    points.BasePoints,
		BonusPoints:   points.BonusPoints,
		TotalPoints:   points.TotalPoints,
		Breakdown:     breakdown,
		CalculatedAt:  points.CalculatedAt,
		UpdatedAt:     r.now().UTC(),
	}
	query, args, err := qb.UpsertModel("player_gameweek_points", insertModel, "league_public_id", "player_public_id", "gameweek")
	if err != nil {
		return crerr.Wrap(err, "build upsert player gameweek points query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "upsert player gameweek points player=%s gameweek=%d", points.PlayerID, points.Gameweek)
	}
	return nil
}

func (r *ScoringRepository) UpsertTeamGameweekPoints(ctx context.Context, points scoring.TeamGameweekPoints) error {
	entries := points.Entries
	if entries == nil {
		entries = []scoring.EntryPoints{}
	}
	encoded, err := encodeJSONB(entries)
	if err != nil {
		return crerr.Wrapf(err, "team=%s gameweek=%d", points.TeamID, points.Gameweek)
	}

	insertModel := teamGameweekPointsInsertModel{
		LeagueID:     points.LeagueID,
		TeamID:       points.TeamID,
		Gameweek:     points.Gameweek,
		Chip:         string(points.Chip),
		Points:       points.Points,
		Provisional:  points.Provisional,
		Entries:      encoded,
		CalculatedAt: points.CalculatedAt,
		UpdatedAt:    r.now().UTC(),
	}
	query, args, err := qb.UpsertModel("team_gameweek_points", insertModel, "league_public_id", "team_public_id", "gameweek")
	if err != nil {
		return crerr.Wrap(err, "build upsert team gameweek points query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "upsert team gameweek points team=%s gameweek=%d", points.TeamID, points.Gameweek)
	}
	return nil
}

func (r *ScoringRepository) ListTeamGameweekPoints(ctx context.Context, leagueID, teamID string) ([]scoring.TeamGameweekPoints, error) {
	query, args, err := qb.Select("*").From("team_gameweek_points").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("team_public_id", teamID),
		).
		OrderBy("gameweek").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list team gameweek points query")
	}

	var rows []teamGameweekPointsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "list team gameweek points team=%s", teamID)
	}

	out := make([]scoring.TeamGameweekPoints, 0, len(rows))
	for _, row := range rows {
		item, err := teamGameweekPointsFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *ScoringRepository) GetTeamGameweekPoints(ctx context.Context, leagueID, teamID string, gameweek int) (scoring.TeamGameweekPoints, bool, error) {
	query, args, err := qb.Select("*").From("team_gameweek_points").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("team_public_id", teamID),
			qb.Eq("gameweek", gameweek),
		).
		ToSQL()
	if err != nil {
		return scoring.TeamGameweekPoints{}, false, crerr.Wrap(err, "build get team gameweek points query")
	}

	var row teamGameweekPointsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scoring.TeamGameweekPoints{}, false, nil
		}
		return scoring.TeamGameweekPoints{}, false, crerr.Wrapf(err, "get team gameweek points team=%s gameweek=%d", teamID, gameweek)
	}

	item, err := teamGameweekPointsFromRow(row)
	if err != nil {
		return scoring.TeamGameweekPoints{}, false, err
	}
	return item, true, nil
}

// GetPlayerGameweekPoints reads one stored player row.
func (r *ScoringRepository) GetPlayerGameweekPoints(ctx context.Context, leagueID, playerID string, gameweek int) (scoring.PlayerGameweekPoints, bool, error) {
	query, args, err := qb.Select("*").From("player_gameweek_points").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("player_public_id", playerID),
			qb.Eq("gameweek", gameweek),
		).
		ToSQL()
	if err != nil {
		return scoring.PlayerGameweekPoints{}, false, crerr.Wrap(err, "build get player gameweek points query")
	}

	var row playerGameweekPointsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scoring.PlayerGameweekPoints{}, false, nil
		}
		return scoring.PlayerGameweekPoints{}, false, crerr.Wrapf(err, "get player gameweek points player=%s gameweek=%d", playerID, gameweek)
	}

	var breakdown scoring.Breakdown
	if err := decodeJSONB(row.Breakdown, &breakdown); err != nil {
		return scoring.PlayerGameweekPoints{}, false, crerr.Wrapf(err, "player=%s gameweek=%d", playerID, gameweek)
	}

	return scoring.PlayerGameweekPoints{
		LeagueID:      row.LeagueID,
		PlayerID:      row.PlayerID,
		Gameweek:      row.Gameweek,
		Position:      player.NormalizePosition(row.Position),
		MinutesPlayed: row.MinutesPlayed,
		Matches:       row.Matches,
		BasePoints:    row.BasePoints,
		BonusPoints:   row.BonusPoints,
		TotalPoints:   row.TotalPoints,
		Breakdown:     breakdown,
		CalculatedAt:  row.CalculatedAt,
	}, true, nil
}

func teamGameweekPointsFromRow(row teamGameweekPointsTableModel) (scoring.TeamGameweekPoints, error) {
	entries := make([]scoring.EntryPoints, 0)
	if err := decodeJSONB(row.Entries, &entries); err != nil {
		return scoring.TeamGameweekPoints{}, crerr.Wrapf(err, "team=%s gameweek=%d", row.TeamID, row.Gameweek)
	}

	return scoring.TeamGameweekPoints{
		LeagueID:     row.LeagueID,
		TeamID:       row.TeamID,
		Gameweek:     row.Gameweek,
		Chip:         fantasy.Chip(row.Chip),
		Points:       row.Points,
		Provisional:  row.Provisional,
		Entries:      entries,
		CalculatedAt: row.CalculatedAt,
	}, nil
}
