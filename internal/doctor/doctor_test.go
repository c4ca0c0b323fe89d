package doctor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/mnemos/internal/config"
	"github.com/pders01/mnemos/internal/memory"
	"github.com/pders01/mnemos/internal/testutil"
)

type fakePinger struct {
	pingErr  error
	modelErr error
}

func (f fakePinger) Ping(context.Context) error       { return f.pingErr }
func (f fakePinger) CheckModel(context.Context) error { return f.modelErr }

func find(r *Report, group, name string) (Check, bool) {
	for _, c := range r.Checks {
		if c.Group == group && c.Name == name {
			return c, true
		}
	}
	return Check{}, false
}

func TestRunHealthyProject(t *testing.T) {
	repo := testutil.NewTempGitRepo(t)
	defer repo.Cleanup()

	cfg := config.Default(repo.Path)
	_, err := memory.Scaffold(cfg, false)
	require.NoError(t, err)

	r := Run(context.Background(), cfg, Options{})
	assert.True(t, r.Healthy(), r.Text())

	c, ok := find(r, "Git", "repository")
	require.True(t, ok)
	assert.Equal(t, StatusOK, c.Status)

	for _, name := range cfg.Memory.ValidSections {
		c, ok := find(r, "Sections", name)
		require.True(t, ok, name)
		assert.Equal(t, StatusOK, c.Status)
	}
	assert.Contains(t, r.Text(), "✨ Project is healthy.")
}

func TestRunMissingFiles(t *testing.T) {
	cfg := config.Default(t.TempDir())

	r := Run(context.Background(), cfg, Options{})
	assert.False(t, r.Healthy())

	c, ok := find(r, "Files", "long-term memory")
	require.True(t, ok)
	assert.Equal(t, StatusFail, c.Status)
	assert.Contains(t, r.Text(), "[✗] long-term memory")
	assert.Contains(t, r.Text(), "mnemos init")
}

func TestRunMissingSectionWarns(t *testing.T) {
	dir := testutil.NewMemoryProject(t, testutil.LongTermFixture, testutil.ShortTermFixture)
	cfg := config.Default(dir)

	r := Run(context.Background(), cfg, Options{})

	c, ok := find(r, "Sections", "Project Overview")
	require.True(t, ok)
	assert.Equal(t, StatusOK, c.Status)

	c, ok = find(r, "Sections", "Technology Choices")
	require.True(t, ok)
	assert.Equal(t, StatusWarn, c.Status)
}

func TestRunConfigError(t *testing.T) {
	cfg := config.Default(t.TempDir())

	r := Run(context.Background(), cfg, Options{ConfigErr: errors.New("toml: bad key")})
	c, ok := find(r, "Config", "load")
	require.True(t, ok)
	assert.Equal(t, StatusFail, c.Status)
	assert.Equal(t, "toml: bad key", c.Detail)
}

func TestRunSizeWarning(t *testing.T) {
	dir := testutil.NewMemoryProject(t, testutil.LongTermFixture, strings.Repeat("- entry\n", 30))
	cfg := config.Default(dir)
	cfg.Compression.MaxLines = 10

	r := Run(context.Background(), cfg, Options{})
	c, ok := find(r, "Size", "short-term memory")
	require.True(t, ok)
	assert.Equal(t, StatusWarn, c.Status)
	assert.Contains(t, c.Detail, "mnemos compact")
}

func TestRunEmbeddings(t *testing.T) {
	cfg := config.Default(t.TempDir())
	cfg.Embeddings.Enabled = true

	r := Run(context.Background(), cfg, Options{Embedder: fakePinger{}})
	c, ok := find(r, "Embeddings", "model")
	require.True(t, ok)
	assert.Equal(t, StatusOK, c.Status)

	r = Run(context.Background(), cfg, Options{Embedder: fakePinger{pingErr: errors.New("connection refused")}})
	c, ok = find(r, "Embeddings", "ollama")
	require.True(t, ok)
	assert.Equal(t, StatusWarn, c.Status)
	_, ok = find(r, "Embeddings", "model")
	assert.False(t, ok)
}

func TestStatusMarshalText(t *testing.T) {
	b, err := StatusWarn.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "warn", string(b))
	assert.Equal(t, "✗", StatusFail.Mark())
}

func TestRunSkipsSectionsWithoutLongTerm(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".memory"), 0755))

	r := Run(context.Background(), config.Default(dir), Options{})
	for _, c := range r.Checks {
		assert.NotEqual(t, "Sections", c.Group)
	}
}
