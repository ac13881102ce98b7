package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-scoring/internal/domain/fixture"
)

type FixtureRepository struct {
	mu               sync.RWMutex
	fixturesByLeague map[string][]fixture.Fixture
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	fixturesByLeague := make(map[string][]fixture.Fixture)
	for _, item := range fixtures {
		fixturesByLeague[item.LeagueID] = append(fixturesByLeague[item.LeagueID], item)
	}

	return &FixtureRepository{fixturesByLeague: fixturesByLeague}
}

func (r *FixtureRepository) ListByLeagueAndGameweek(_ context.Context, leagueID string, gameweek int) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, 0)
	for _, item := range r.fixturesByLeague[leagueID] {
		if item.Gameweek == gameweek {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].KickoffAt.Before(out[j].KickoffAt)
	})
	return out, nil
}

// SetStatus changes a fixture's status, e.g. when a live match finishes.
func (r *FixtureRepository) SetStatus(leagueID, fixtureID, status string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.fixturesByLeague[leagueID]
	for i := range items {
		if items[i].ID == fixtureID {
			items[i].Status = status
			return true
		}
	}
	return false
}
