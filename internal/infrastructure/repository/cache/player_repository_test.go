package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-scoring/internal/domain/player"
	basecache "github.com/riskibarqy/fantasy-scoring/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ player.Repository = (*PlayerRepository)(nil)

type countingPlayerRepository struct {
	players map[string]player.Player
	calls   [][]string
	err     error
}

func (r *countingPlayerRepository) GetByIDs(_ context.Context, _ string, playerIDs []string) ([]player.Player, error) {
	r.calls = append(r.calls, append([]string(nil), playerIDs...))
	if r.err != nil {
		return nil, r.err
	}
	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		if p, ok := r.players[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func newCountingRepository() *countingPlayerRepository {
	return &countingPlayerRepository{players: map[string]player.Player{
		"p1": {ID: "p1", LeagueID: "l1", Name: "One", Position: player.PositionForward},
		"p2": {ID: "p2", LeagueID: "l1", Name: "Two", Position: player.PositionDefender},
		"p3": {ID: "p3", LeagueID: "l1", Name: "Three", Position: player.PositionGoalkeeper},
	}}
}

func TestPlayerRepositoryLoadsOnlyMisses(t *testing.T) {
	t.Parallel()

	next := newCountingRepository()
	repo := NewPlayerRepository(next, basecache.NewStore[player.Player](time.Minute))
	ctx := context.Background()

	first, err := repo.GetByIDs(ctx, "l1", []string{"p1", "p2"})
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := repo.GetByIDs(ctx, "l1", []string{"p2", "p3", "p3", "ghost"})
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, "p2", second[0].ID)
	assert.Equal(t, "p3", second[1].ID)

	require.Len(t, next.calls, 2)
	assert.Equal(t, []string{"p3", "ghost"}, next.calls[1])

	_, err = repo.GetByIDs(ctx, "l1", []string{"p1", "p2", "p3"})
	require.NoError(t, err)
	assert.Len(t, next.calls, 2)
}

func TestPlayerRepositoryInvalidateLeague(t *testing.T) {
	t.Parallel()

	next := newCountingRepository()
	repo := NewPlayerRepository(next, basecache.NewStore[player.Player](0))
	ctx := context.Background()

	_, err := repo.GetByIDs(ctx, "l1", []string{"p1"})
	require.NoError(t, err)
	repo.InvalidateLeague(ctx, "l1")
	_, err = repo.GetByIDs(ctx, "l1", []string{"p1"})
	require.NoError(t, err)

	assert.Len(t, next.calls, 2)
}

func TestPlayerRepositoryPropagatesErrors(t *testing.T) {
	t.Parallel()

	next := newCountingRepository()
	next.err = errors.New("db down")
	repo := NewPlayerRepository(next, basecache.NewStore[player.Player](time.Minute))

	_, err := repo.GetByIDs(context.Background(), "l1", []string{"p1"})
	require.ErrorIs(t, err, next.err)
}
