package playerstats

// MatchStat is one player's raw statistics line for one fixture.
// A zero value for any counter means the stat was not recorded.
type MatchStat struct {
	PlayerID        string
	FixtureID       string
	TeamID          string
	MinutesPlayed   int
	Goals           int
	Assists         int
	CleanSheet      bool
	GoalsConceded   int
	YellowCards     int
	RedCards        int
	PenaltiesSaved  int
	PenaltiesMissed int
}

// Played reports whether the player appeared in the match.
func (s MatchStat) Played() bool {
	return s.MinutesPlayed > 0
}

// GroupByFixture buckets stat lines by fixture id, keeping input order within a fixture.
func GroupByFixture(stats []MatchStat) map[string][]MatchStat {
	out := make(map[string][]MatchStat)
	for _, item := range stats {
		out[item.FixtureID] = append(out[item.FixtureID], item)
	}
	return out
}
