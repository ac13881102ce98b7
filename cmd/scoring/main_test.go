package main

import (
	"bytes"
	"context"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-scoring/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-scoring/internal/usecase"
)

func setMemoryEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("APP_LOG_LEVEL", "error")
	t.Setenv("REDIS_URL", "")
	t.Setenv("PUSHGATEWAY_URL", "")
}

func TestRunCommandPrintsGameweekRun(t *testing.T) {
	setMemoryEnv(t)

	var out bytes.Buffer
	err := newCLI(&out).RunContext(context.Background(), []string{
		"scoring", "run", "--league", memory.LeagueIDLiga1Indonesia, "--gameweek", "1",
	})
	require.NoError(t, err)

	var run usecase.GameweekRun
	require.NoError(t, sonic.Unmarshal(out.Bytes(), &run))
	assert.Equal(t, memory.LeagueIDLiga1Indonesia, run.LeagueID)
	assert.Equal(t, 1, run.Gameweek)
	assert.Len(t, run.Teams, 3)
	assert.False(t, run.Provisional)
}

func TestTeamCommandUnknownTeam(t *testing.T) {
	setMemoryEnv(t)

	var out bytes.Buffer
	err := newCLI(&out).RunContext(context.Background(), []string{
		"scoring", "team", "--league", memory.LeagueIDLiga1Indonesia, "--team", "missing", "--gameweek", "1",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
	assert.Empty(t, out.String())
}

func TestRunCommandRequiresFlags(t *testing.T) {
	setMemoryEnv(t)

	err := newCLI(&bytes.Buffer{}).RunContext(context.Background(), []string{"scoring", "run", "--league", "x"})
	require.Error(t, err)
}
