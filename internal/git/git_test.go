package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/mnemos/internal/testutil"
)

func TestHasMetadata(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, HasMetadata(dir))

	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	assert.True(t, HasMetadata(dir))
}

func TestIsInsideWorkTree(t *testing.T) {
	repo := testutil.NewTempGitRepo(t)
	defer repo.Cleanup()

	assert.True(t, IsInsideWorkTree(context.Background(), repo.Path))
	assert.False(t, IsInsideWorkTree(context.Background(), t.TempDir()))
}

func TestGitDir(t *testing.T) {
	repo := testutil.NewTempGitRepo(t)
	defer repo.Cleanup()

	dir, err := GitDir(context.Background(), repo.Path)
	require.NoError(t, err)
	assert.Equal(t, ".git", filepath.Base(dir))
}

func TestLogNumstat(t *testing.T) {
	repo := testutil.NewTempGitRepo(t)
	defer repo.Cleanup()

	repo.CreateFile("main.go", "package main\n\nfunc main() {}\n")
	repo.CommitAt("feat: add main", "2026-02-01T10:00:00")

	out, err := LogNumstat(context.Background(), repo.Path, LogOptions{MaxCount: 10})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)

	header := strings.SplitN(lines[0], LogFieldSep, 3)
	require.Len(t, header, 3)
	assert.Len(t, header[0], 40)
	assert.Equal(t, "2026-02-01", header[1])
	assert.Equal(t, "feat: add main", header[2])
	assert.Contains(t, out, "3\t0\tmain.go")
}

func TestLogNumstatNotARepo(t *testing.T) {
	if !IsAvailable() {
		t.Skip("git not available")
	}

	_, err := LogNumstat(context.Background(), t.TempDir(), LogOptions{MaxCount: 1})
	assert.Error(t, err)
}
