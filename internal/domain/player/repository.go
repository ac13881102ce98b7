package player

import "context"

// Repository describes player lookups needed by scoring.
type Repository interface {
	GetByIDs(ctx context.Context, leagueID string, playerIDs []string) ([]Player, error)
}
