package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/mnemos/internal/search"
	"github.com/pders01/mnemos/internal/testutil"
)

func resetSearchFlags() {
	searchType, searchDays, searchSemantic, searchLimit = "all", -1, false, 5
	searchJSON, searchToon = false, false
}

func TestSearchCommand(t *testing.T) {
	useProject(t, testutil.NewMemoryProject(t, testutil.LongTermFixture, testutil.ShortTermFixture))
	defer resetSearchFlags()

	out, err := runCommand(t, runSearch, "", "overview")
	require.NoError(t, err)
	assert.Contains(t, out, "Search results for 'overview':")
	assert.Contains(t, out, "=== Long-term memory ===")
	assert.Contains(t, out, "[Project Overview] L4: Initial overview")

	out, err = runCommand(t, runSearch, "", "old bug")
	require.NoError(t, err)
	assert.Contains(t, out, "[2026-01-01] L")

	out, err = runCommand(t, runSearch, "", "nothing-like-this")
	require.NoError(t, err)
	assert.Equal(t, "No matches found in memory for 'nothing-like-this'.\n", out)
}

func TestSearchCommandJSON(t *testing.T) {
	useProject(t, testutil.NewMemoryProject(t, testutil.LongTermFixture, testutil.ShortTermFixture))
	defer resetSearchFlags()
	searchJSON = true
	searchType = "short"

	out, err := runCommand(t, runSearch, "", "recent work")
	require.NoError(t, err)

	var res search.Results
	require.NoError(t, jsonUnmarshal(out, &res))
	assert.Equal(t, "recent work", res.Keyword)
	assert.Empty(t, res.Long)
	require.Len(t, res.Short, 1)
	assert.Equal(t, "2026-02-01", res.Short[0].Header)
}

func TestSearchCommandSemanticFallsBack(t *testing.T) {
	useProject(t, testutil.NewMemoryProject(t, testutil.LongTermFixture, testutil.ShortTermFixture))
	defer resetSearchFlags()
	searchSemantic = true

	out, err := runCommand(t, runSearch, "", "overview")
	require.NoError(t, err)
	assert.Contains(t, out, "[Project Overview]")
	assert.NotContains(t, out, "Semantic matches")
}

func TestSearchCommandErrors(t *testing.T) {
	useProject(t, testutil.NewMemoryProject(t, testutil.LongTermFixture, ""))
	defer resetSearchFlags()

	_, err := runCommand(t, runSearch, "", " ")
	assert.ErrorIs(t, err, search.ErrEmptyKeyword)

	searchType = "nope"
	_, err = runCommand(t, runSearch, "", "x")
	assert.ErrorIs(t, err, search.ErrInvalidScope)
}
