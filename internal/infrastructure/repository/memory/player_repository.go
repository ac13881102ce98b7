package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fantasy-scoring/internal/domain/player"
)

type PlayerRepository struct {
	mu            sync.RWMutex
	indexByLeague map[string]map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	indexByLeague := make(map[string]map[string]player.Player)
	for _, p := range players {
		if _, ok := indexByLeague[p.LeagueID]; !ok {
			indexByLeague[p.LeagueID] = make(map[string]player.Player)
		}
		indexByLeague[p.LeagueID][p.ID] = p
	}

	return &PlayerRepository{indexByLeague: indexByLeague}
}

func (r *PlayerRepository) GetByIDs(_ context.Context, leagueID string, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	index := r.indexByLeague[leagueID]
	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		p, ok := index[id]
		if !ok {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}
