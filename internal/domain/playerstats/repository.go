package playerstats

import "context"

type Repository interface {
	ListMatchStatsByFixtures(ctx context.Context, fixtureIDs []string) ([]MatchStat, error)
}
