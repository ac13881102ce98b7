package fixture

import "context"

// Repository exposes fixture read operations.
type Repository interface {
	ListByLeagueAndGameweek(ctx context.Context, leagueID string, gameweek int) ([]Fixture, error)
}
