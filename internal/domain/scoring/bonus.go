package scoring

import (
	"cmp"
	"slices"
)

// Contribution is one player's base points in a single match.
type Contribution struct {
	PlayerID string
	Score    int
}

// CalculateBonus ranks contributions by score descending, breaking ties
// by player id ascending, and hands out awards in rank order. Each player
// is ranked once; with fewer contributors than awards the tail is unused.
func CalculateBonus(contributions []Contribution, awards []int) map[string]int {
	ranked := slices.Clone(contributions)
	slices.SortStableFunc(ranked, func(a, b Contribution) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.PlayerID, b.PlayerID)
	})

	out := make(map[string]int, len(awards))
	seen := make(map[string]struct{}, len(ranked))
	rank := 0
	for _, item := range ranked {
		if rank >= len(awards) {
			break
		}
		if item.PlayerID == "" {
			continue
		}
		if _, ok := seen[item.PlayerID]; ok {
			continue
		}
		seen[item.PlayerID] = struct{}{}

		if awards[rank] > 0 {
			out[item.PlayerID] = awards[rank]
		}
		rank++
	}

	return out
}
