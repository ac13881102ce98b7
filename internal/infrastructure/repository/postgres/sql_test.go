package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/riskibarqy/fantasy-scoring/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, isNotFound(sql.ErrNoRows))
	assert.True(t, isNotFound(fmt.Errorf("get roster: %w", sql.ErrNoRows)))
	assert.False(t, isNotFound(sql.ErrConnDone))
	assert.False(t, isNotFound(nil))
}

func TestEncodeDecodeJSONB(t *testing.T) {
	t.Parallel()

	breakdown := scoring.EmptyBreakdown()
	breakdown.Categories[1].Points = 6
	breakdown.Multiplier = 2

	raw, err := encodeJSONB(breakdown)
	require.NoError(t, err)
	assert.Contains(t, raw, `"category":"goals","points":6`)
	assert.NotContains(t, raw, "\n")

	var decoded scoring.Breakdown
	require.NoError(t, decodeJSONB([]byte(raw), &decoded))
	assert.Equal(t, breakdown, decoded)
}

func TestDecodeJSONBEmptyLeavesTarget(t *testing.T) {
	t.Parallel()

	entries := []scoring.EntryPoints{}
	require.NoError(t, decodeJSONB(nil, &entries))
	require.NoError(t, decodeJSONB([]byte("  "), &entries))
	assert.Empty(t, entries)

	assert.Error(t, decodeJSONB([]byte("{"), &entries))
}

func TestNullInt64ToIntPtr(t *testing.T) {
	t.Parallel()

	assert.Nil(t, nullInt64ToIntPtr(sql.NullInt64{}))

	got := nullInt64ToIntPtr(sql.NullInt64{Int64: 3, Valid: true})
	require.NotNil(t, got)
	assert.Equal(t, 3, *got)
}
