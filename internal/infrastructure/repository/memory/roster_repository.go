package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-scoring/internal/domain/fantasy"
)

type RosterRepository struct {
	mu      sync.RWMutex
	rosters map[string]fantasy.Roster
}

func NewRosterRepository(rosters []fantasy.Roster) *RosterRepository {
	r := &RosterRepository{rosters: make(map[string]fantasy.Roster, len(rosters))}
	for _, item := range rosters {
		r.rosters[rosterKey(item.LeagueID, item.TeamID, item.Gameweek)] = cloneRoster(item)
	}
	return r
}

func (r *RosterRepository) ListRostersByGameweek(_ context.Context, leagueID string, gameweek int) ([]fantasy.Roster, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fantasy.Roster, 0)
	for _, item := range r.rosters {
		if item.LeagueID == leagueID && item.Gameweek == gameweek {
			out = append(out, cloneRoster(item))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out, nil
}

func (r *RosterRepository) GetRoster(_ context.Context, leagueID, teamID string, gameweek int) (fantasy.Roster, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.rosters[rosterKey(leagueID, teamID, gameweek)]
	if !ok {
		return fantasy.Roster{}, false, nil
	}
	return cloneRoster(item), true, nil
}

func (r *RosterRepository) Upsert(roster fantasy.Roster) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rosters[rosterKey(roster.LeagueID, roster.TeamID, roster.Gameweek)] = cloneRoster(roster)
}

func cloneRoster(in fantasy.Roster) fantasy.Roster {
	out := in
	out.Entries = append([]fantasy.RosterEntry(nil), in.Entries...)
	return out
}
