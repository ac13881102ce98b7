package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-scoring/internal/domain/scoring"
)

type ScoringRepository struct {
	mu     sync.RWMutex
	player map[string]scoring.PlayerGameweekPoints
	team   map[string]scoring.TeamGameweekPoints
}

func NewScoringRepository() *ScoringRepository {
	return &ScoringRepository{
		player: make(map[string]scoring.PlayerGameweekPoints),
		team:   make(map[string]scoring.TeamGameweekPoints),
	}
}

func (r *ScoringRepository) UpsertPlayerGameweekPoints(_ context.Context, points scoring.PlayerGameweekPoints) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.player[gameweekKey(points.LeagueID, points.PlayerID, points.Gameweek)] = clonePlayerPoints(points)
	return nil
}

func (r *ScoringRepository) UpsertTeamGameweekPoints(_ context.Context, points scoring.TeamGameweekPoints) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.team[rosterKey(points.LeagueID, points.TeamID, points.Gameweek)] = cloneTeamPoints(points)
	return nil
}

func (r *ScoringRepository) ListTeamGameweekPoints(_ context.Context, leagueID, teamID string) ([]scoring.TeamGameweekPoints, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.TeamGameweekPoints, 0)
	for _, item := range r.team {
		if item.LeagueID == leagueID && item.TeamID == teamID {
			out = append(out, cloneTeamPoints(item))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Gameweek < out[j].Gameweek })
	return out, nil
}

func (r *ScoringRepository) GetTeamGameweekPoints(_ context.Context, leagueID, teamID string, gameweek int) (scoring.TeamGameweekPoints, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.team[rosterKey(leagueID, teamID, gameweek)]
	if !ok {
		return scoring.TeamGameweekPoints{}, false, nil
	}
	return cloneTeamPoints(item), true, nil
}

// PlayerGameweekPoints returns the stored player row, for inspection.
func (r *ScoringRepository) PlayerGameweekPoints(leagueID, playerID string, gameweek int) (scoring.PlayerGameweekPoints, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.player[gameweekKey(leagueID, playerID, gameweek)]
	if !ok {
		return scoring.PlayerGameweekPoints{}, false
	}
	return clonePlayerPoints(item), true
}

// Counts reports stored player and team rows.
func (r *ScoringRepository) Counts() (players, teams int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.player), len(r.team)
}

func gameweekKey(leagueID, id string, gameweek int) string {
	return fmt.Sprintf("%s|%s|%d", leagueID, id, gameweek)
}

func rosterKey(leagueID, teamID string, gameweek int) string {
	return gameweekKey(leagueID, teamID, gameweek)
}

func cloneBreakdown(in scoring.Breakdown) scoring.Breakdown {
	out := in
	out.Categories = append([]scoring.CategoryPoints(nil), in.Categories...)
	return out
}

func clonePlayerPoints(in scoring.PlayerGameweekPoints) scoring.PlayerGameweekPoints {
	out := in
	out.Breakdown = cloneBreakdown(in.Breakdown)
	return out
}

func cloneTeamPoints(in scoring.TeamGameweekPoints) scoring.TeamGameweekPoints {
	out := in
	out.Entries = make([]scoring.EntryPoints, len(in.Entries))
	for i, entry := range in.Entries {
		entry.Breakdown = cloneBreakdown(entry.Breakdown)
		out.Entries[i] = entry
	}
	return out
}
