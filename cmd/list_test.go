package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/mnemos/internal/memory"
	"github.com/pders01/mnemos/internal/testutil"
)

func resetListFlags() {
	listToday, listSince, listJSON, listToon = false, "", false, false
}

func TestListCommand(t *testing.T) {
	useProject(t, testutil.NewMemoryProject(t, testutil.LongTermFixture+"\n## Scratch\nnotes\n", testutil.ShortTermFixture))
	defer resetListFlags()

	out, err := runCommand(t, runList, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Long-term sections (3):")
	assert.Contains(t, out, "Project Overview")
	assert.Contains(t, out, "never edited")
	assert.Contains(t, out, "(not in memory.valid_sections)")
	assert.Contains(t, out, "Short-term days (2):")
	assert.Contains(t, out, "2026-02-01    1 entries")
}

func TestListCommandSince(t *testing.T) {
	useProject(t, testutil.NewMemoryProject(t, testutil.LongTermFixture, testutil.ShortTermFixture))
	defer resetListFlags()
	listSince = "2026-01-15"
	listJSON = true

	out, err := runCommand(t, runList, "")
	require.NoError(t, err)

	var listing memoryListing
	require.NoError(t, jsonUnmarshal(out, &listing))
	require.Len(t, listing.Sections, 2)
	assert.True(t, listing.Sections[0].Configured)
	assert.Equal(t, []dayInfo{{Date: "2026-02-01", Entries: 1}}, listing.Days)
}

func TestListCommandErrors(t *testing.T) {
	defer resetListFlags()

	useProject(t, t.TempDir())
	_, err := runCommand(t, runList, "")
	assert.ErrorIs(t, err, memory.ErrDocumentMissing)

	listSince = "last week"
	_, err = runCommand(t, runList, "")
	assert.Error(t, err)
}

func TestListCommandWithoutShortTerm(t *testing.T) {
	useProject(t, testutil.NewMemoryProject(t, testutil.LongTermFixture, ""))
	defer resetListFlags()

	out, err := runCommand(t, runList, "")
	require.NoError(t, err)
	assert.Contains(t, out, "No short-term entries match the filter criteria")
}
