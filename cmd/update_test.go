package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/mnemos/internal/history"
	"github.com/pders01/mnemos/internal/models"
	"github.com/pders01/mnemos/internal/testutil"
)

func TestUpdateCommand(t *testing.T) {
	repo := testutil.NewTempGitRepo(t)
	defer repo.Cleanup()
	useProject(t, repo.Path)

	repo.CreateFile("main.go", "package main\n")
	repo.Commit("feat: add main")
	repo.CreateFile("main.go", "package main\n\nfunc main() {}\n")
	repo.Commit("fix(main): add entry point")

	out, err := runCommand(t, runUpdate, "")
	require.NoError(t, err)
	assert.Equal(t, "Short-term memory updated: analyzed 3 commits, found 2 hotspots.\n", out)

	doc := testutil.ReadFile(t, filepath.Join(repo.Path, ".memory", "short_term.md"))
	assert.Contains(t, doc, "- `main.go` (2 times, +3/-0)")
	assert.Contains(t, doc, "#### 🐛 Fixes")
	assert.Contains(t, doc, "fix(main): add entry point")
}

func TestUpdateMaxCountFlag(t *testing.T) {
	repo := testutil.NewTempGitRepo(t)
	defer repo.Cleanup()
	useProject(t, repo.Path)

	repo.CreateFile("a.go", "package a\n")
	repo.Commit("feat: a")

	updateMaxCount = 1
	defer func() { updateMaxCount = 0 }()

	out, err := runCommand(t, runUpdate, "")
	require.NoError(t, err)
	assert.Contains(t, out, "analyzed 1 commits")
}

func TestUpdateNotGitRepo(t *testing.T) {
	useProject(t, t.TempDir())

	_, err := runCommand(t, runUpdate, "")
	assert.ErrorIs(t, err, history.ErrNotARepository)
}

func TestReportCommand(t *testing.T) {
	repo := testutil.NewTempGitRepo(t)
	defer repo.Cleanup()
	useProject(t, repo.Path)

	repo.CreateFile("main.go", "package main\n")
	repo.Commit("feat: add main")

	out, err := runCommand(t, runReport, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Total commits: 2")
	assert.Contains(t, out, "✨ Features")
	assert.Contains(t, out, "main.go")

	reportJSON = true
	defer func() { reportJSON = false }()

	out, err = runCommand(t, runReport, "")
	require.NoError(t, err)

	var report models.Report
	require.NoError(t, jsonUnmarshal(out, &report))
	assert.Equal(t, 2, report.TotalCommits)
	assert.Equal(t, 1, report.TypeDistribution["feat"])
	assert.Equal(t, 1, report.TypeDistribution["other"])
}
