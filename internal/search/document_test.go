package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/mnemos/internal/memory"
)

func TestSearchDocumentContextWindow(t *testing.T) {
	doc := "one\ntwo\nthree keyword\nfour\nfive\n"

	matches := SearchDocument(doc, "keyword", memory.SectionPrefix, 1)
	require.Len(t, matches, 1)
	assert.Equal(t, 3, matches[0].LineNo)
	assert.Equal(t, "three keyword", matches[0].Line)
	assert.Equal(t, "two\nthree keyword\nfour", matches[0].Context)
	assert.Equal(t, DefaultHeader, matches[0].Header)
}

func TestSearchDocumentClipsContext(t *testing.T) {
	doc := "first hit\nmiddle\nlast hit"

	matches := SearchDocument(doc, "HIT", memory.SectionPrefix, 1)
	require.Len(t, matches, 2)
	assert.Equal(t, "first hit\nmiddle", matches[0].Context)
	assert.Equal(t, "middle\nlast hit", matches[1].Context)
}

func TestSearchDocumentTracksHeaders(t *testing.T) {
	doc := "# Title\n" +
		"## Project Overview\n" +
		"uses Go\n" +
		"### Go subsection\n" +
		"## Technology Choices\n" +
		"go modules\n"

	matches := SearchDocument(doc, "go", memory.SectionPrefix, 0)
	require.Len(t, matches, 3)

	assert.Equal(t, "Project Overview", matches[0].Header)
	assert.Equal(t, 3, matches[0].LineNo)
	// a deeper heading is ordinary text for the "## " prefix
	assert.Equal(t, "Project Overview", matches[1].Header)
	assert.Equal(t, "### Go subsection", matches[1].Line)
	assert.Equal(t, "Technology Choices", matches[2].Header)
	assert.Equal(t, "go modules", matches[2].Context)
}

func TestSearchDocumentSkipsHeadingLines(t *testing.T) {
	doc := "### 2026-02-01\n- entry\n"

	assert.Empty(t, SearchDocument(doc, "2026", memory.DateBlockPrefix, 1))
}

func TestSearchDocumentEmptyKeyword(t *testing.T) {
	assert.Nil(t, SearchDocument("anything", "", memory.SectionPrefix, 1))
}
