package observability

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// ScoringMetrics records gameweek run outcomes. Each instance owns its
// registry so a short-lived job can push exactly what it recorded.
type ScoringMetrics struct {
	registry      *prometheus.Registry
	runs          *prometheus.CounterVec
	teamsScored   prometheus.Counter
	teamsFailed   prometheus.Counter
	playersScored prometheus.Counter
	playersFailed prometheus.Counter
	runDuration   prometheus.Histogram
}

func NewScoringMetrics() *ScoringMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &ScoringMetrics{
		registry: reg,
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fantasy_scoring_runs_total",
			Help: "Gameweek scoring runs by outcome",
		}, []string{"outcome"}),
		teamsScored: factory.NewCounter(prometheus.CounterOpts{
			Name: "fantasy_scoring_teams_scored_total",
			Help: "Fantasy teams whose gameweek points were stored",
		}),
		teamsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "fantasy_scoring_teams_failed_total",
			Help: "Fantasy teams that failed to score",
		}),
		playersScored: factory.NewCounter(prometheus.CounterOpts{
			Name: "fantasy_scoring_players_scored_total",
			Help: "Player gameweek records stored",
		}),
		playersFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "fantasy_scoring_players_failed_total",
			Help: "Player gameweek records that failed to store",
		}),
		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fantasy_scoring_run_duration_seconds",
			Help:    "Wall time of a gameweek scoring run",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *ScoringMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRun records one finished run. outcome is "ok", "partial" or "error".
func (m *ScoringMetrics) ObserveRun(outcome string, playersScored, playersFailed, teamsScored, teamsFailed int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(outcome).Inc()
	m.playersScored.Add(float64(playersScored))
	m.playersFailed.Add(float64(playersFailed))
	m.teamsScored.Add(float64(teamsScored))
	m.teamsFailed.Add(float64(teamsFailed))
	m.runDuration.Observe(elapsed.Seconds())
}

// Push sends the registry to a Prometheus Pushgateway. An empty url is a no-op.
func (m *ScoringMetrics) Push(ctx context.Context, url, job string) error {
	if m == nil || url == "" {
		return nil
	}
	if err := push.New(url, job).Gatherer(m.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", url, err)
	}
	return nil
}
