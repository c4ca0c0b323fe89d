package retention

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/mnemos/internal/config"
	"github.com/pders01/mnemos/internal/testutil"
)

func TestCollect(t *testing.T) {
	dir := testutil.NewMemoryProject(t, testutil.LongTermFixture, "")
	cfg := config.Default(dir)

	stats, err := Collect(cfg)
	require.NoError(t, err)

	assert.Equal(t, dir, stats.ProjectPath)
	assert.True(t, stats.LongTerm.Exists)
	assert.Equal(t, int64(len(testutil.LongTermFixture)), stats.LongTerm.SizeBytes)
	assert.Equal(t, strings.Count(testutil.LongTermFixture, "\n")+1, stats.LongTerm.LineCount)

	assert.False(t, stats.ShortTerm.Exists)
	assert.Equal(t, cfg.ShortTermPath(), stats.ShortTerm.Path)
	assert.False(t, stats.NeedsCompaction)
}

func TestCollectNeedsCompaction(t *testing.T) {
	dir := testutil.NewMemoryProject(t, "", strings.Repeat("- entry\n", 20))

	cfg := config.Default(dir)
	stats, err := Collect(cfg)
	require.NoError(t, err)
	assert.False(t, stats.NeedsCompaction)

	cfg.Compression.MaxLines = 10
	stats, err = Collect(cfg)
	require.NoError(t, err)
	assert.True(t, stats.NeedsCompaction)

	cfg.Compression.MaxLines = 500
	cfg.Compression.MaxKB = 0
	stats, err = Collect(cfg)
	require.NoError(t, err)
	assert.True(t, stats.NeedsCompaction)
}
