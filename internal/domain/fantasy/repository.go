package fantasy

import "context"

// Repository describes roster reads needed by scoring use cases.
type Repository interface {
	ListRostersByGameweek(ctx context.Context, leagueID string, gameweek int) ([]Roster, error)
	GetRoster(ctx context.Context, leagueID, teamID string, gameweek int) (Roster, bool, error)
}
