package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fantasy-scoring/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	mu        sync.RWMutex
	byFixture map[string][]playerstats.MatchStat
}

func NewPlayerStatsRepository(stats []playerstats.MatchStat) *PlayerStatsRepository {
	return &PlayerStatsRepository{byFixture: playerstats.GroupByFixture(stats)}
}

func (r *PlayerStatsRepository) ListMatchStatsByFixtures(_ context.Context, fixtureIDs []string) ([]playerstats.MatchStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerstats.MatchStat, 0)
	for _, fixtureID := range fixtureIDs {
		out = append(out, r.byFixture[fixtureID]...)
	}
	return out, nil
}

// ReplaceFixtureStats swaps every stat line of one fixture, the way a
// resync of match data would.
func (r *PlayerStatsRepository) ReplaceFixtureStats(fixtureID string, stats []playerstats.MatchStat) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byFixture[fixtureID] = append([]playerstats.MatchStat(nil), stats...)
}
