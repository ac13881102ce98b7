package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-scoring/internal/domain/scoring"
)

func writeRules(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadScoringRules_EmptyPathReturnsDefaults(t *testing.T) {
	rules, err := LoadScoringRules("")
	require.NoError(t, err)
	assert.Equal(t, scoring.DefaultRules(), rules)
}

func TestLoadScoringRules_Overlay(t *testing.T) {
	path := writeRules(t, `
minutes_policy: flat_threshold
goal_points:
  gk: 10
  def: 6
  mid: 5
  fwd: 4
bonus_awards: [5, 3]
`)

	rules, err := LoadScoringRules(path)
	require.NoError(t, err)

	assert.Equal(t, scoring.MinutesPolicyFlatThreshold, rules.MinutesPolicy)
	assert.Equal(t, 10, rules.GoalPoints.GK)
	assert.Equal(t, []int{5, 3}, rules.BonusAwards)
	assert.Equal(t, 3, rules.AssistPoints)
	assert.Equal(t, 2.0, rules.CaptainMultiplier)
}

func TestLoadScoringRules_EmptyFileKeepsDefaults(t *testing.T) {
	rules, err := LoadScoringRules(writeRules(t, ""))
	require.NoError(t, err)
	assert.Equal(t, scoring.DefaultRules(), rules)
}

func TestLoadScoringRules_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown key":       "assist_pointz: 4\n",
		"bad policy":        "minutes_policy: hourly\n",
		"zero minute block": "minutes_block: 0\n",
		"negative award":    "bonus_awards: [3, -1]\n",
		"zero multiplier":   "captain_multiplier: 0\n",
	}

	for name, body := range tests {
		body := body
		t.Run(name, func(t *testing.T) {
			_, err := LoadScoringRules(writeRules(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadScoringRules_MissingFile(t *testing.T) {
	_, err := LoadScoringRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
