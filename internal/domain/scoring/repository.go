package scoring

import "context"

// Repository persists per-gameweek point rows. Upserts are atomic by key,
// so concurrent writers never lose updates and reruns overwrite in place.
type Repository interface {
	UpsertPlayerGameweekPoints(ctx context.Context, points PlayerGameweekPoints) error
	UpsertTeamGameweekPoints(ctx context.Context, points TeamGameweekPoints) error
	ListTeamGameweekPoints(ctx context.Context, leagueID, teamID string) ([]TeamGameweekPoints, error)
	GetTeamGameweekPoints(ctx context.Context, leagueID, teamID string, gameweek int) (TeamGameweekPoints, bool, error)
}
