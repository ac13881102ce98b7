package cache

import (
	"context"

	"github.com/riskibarqy/fantasy-scoring/internal/domain/player"
	basecache "github.com/riskibarqy/fantasy-scoring/internal/platform/cache"
)

// PlayerRepository caches players one key per (league, player) so batches
// that overlap reuse earlier lookups.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store[player.Player]
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store[player.Player]) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, leagueID string, playerIDs []string) ([]player.Player, error) {
	found := make(map[string]player.Player, len(playerIDs))
	missing := make([]string, 0, len(playerIDs))
	seen := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if item, ok := r.cache.Get(ctx, playerKey(leagueID, id)); ok {
			found[id] = item
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) > 0 {
		loaded, err := r.next.GetByIDs(ctx, leagueID, missing)
		if err != nil {
			return nil, err
		}
		for _, item := range loaded {
			r.cache.Set(ctx, playerKey(leagueID, item.ID), item)
			found[item.ID] = item
		}
	}

	out := make([]player.Player, 0, len(found))
	for _, id := range playerIDs {
		item, ok := found[id]
		if !ok {
			continue
		}
		out = append(out, item)
		delete(found, id)
	}
	return out, nil
}

// InvalidateLeague drops every cached player of leagueID.
func (r *PlayerRepository) InvalidateLeague(ctx context.Context, leagueID string) {
	r.cache.DeletePrefix(ctx, "player:"+leagueID+":")
}

func playerKey(leagueID, playerID string) string {
	return "player:" + leagueID + ":" + playerID
}
