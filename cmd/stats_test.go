package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/mnemos/internal/retention"
	"github.com/pders01/mnemos/internal/testutil"
)

func TestStatsCommand(t *testing.T) {
	useProject(t, testutil.NewMemoryProject(t, testutil.LongTermFixture, ""))

	out, err := runCommand(t, runStats, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Memory Statistics")
	assert.Contains(t, out, "Long-term memory:")
	assert.Contains(t, out, "missing (run 'mnemos init')")
	assert.NotContains(t, out, "mnemos compact")
}

func TestStatsCommandJSON(t *testing.T) {
	dir := testutil.NewMemoryProject(t, testutil.LongTermFixture, strings.Repeat("- line\n", 600))
	useProject(t, dir)

	statsJSON = true
	defer func() { statsJSON = false }()

	out, err := runCommand(t, runStats, "")
	require.NoError(t, err)

	var stats retention.Stats
	require.NoError(t, jsonUnmarshal(out, &stats))
	assert.Equal(t, dir, stats.ProjectPath)
	assert.True(t, stats.ShortTerm.Exists)
	assert.Equal(t, 601, stats.ShortTerm.LineCount)
	assert.True(t, stats.NeedsCompaction)
}
