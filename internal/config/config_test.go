package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, dir, content string) *viper.Viper {
	t.Helper()

	v := viper.New()
	SetDefaults(v)
	if content != "" {
		path := filepath.Join(dir, FileName)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		require.NoError(t, v.ReadInConfig())
	}
	return v
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(newViper(t, dir, ""), dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ProjectPath)
	assert.Equal(t, DefaultSections, cfg.Memory.ValidSections)
	assert.Equal(t, 7, cfg.Git.Days)
	assert.Equal(t, 50, cfg.Git.MaxCount)
	assert.Equal(t, 1, cfg.Search.ContextLines)
	assert.Equal(t, 3, cfg.Compression.ThresholdDays)
	assert.Equal(t, 30*time.Second, cfg.GitTimeout())
	assert.Equal(t, filepath.Join(dir, ".memory", "long_term.md"), cfg.LongTermPath())
	assert.Equal(t, filepath.Join(dir, ".memory", "short_term.md"), cfg.ShortTermPath())
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `[memory]
valid_sections = ["Overview", "Gotchas"]

[git]
days = 14
ignore_files = ["*.sum"]
`

	cfg, err := Load(newViper(t, dir, content), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"Overview", "Gotchas"}, cfg.Memory.ValidSections)
	assert.Equal(t, 14, cfg.Git.Days)
	assert.Equal(t, []string{"*.sum"}, cfg.Git.IgnoreFiles)
	// untouched keys keep their defaults
	assert.Equal(t, 50, cfg.Git.MaxCount)
	assert.Equal(t, ".memory", cfg.Memory.Dir)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	content := `[git]
days = 0
`

	_, err := Load(newViper(t, dir, content), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git.days")
}

func TestIsValidSection(t *testing.T) {
	cfg := Default(t.TempDir())

	assert.True(t, cfg.IsValidSection("Architecture Decisions"))
	assert.False(t, cfg.IsValidSection("Architecture"))
	assert.False(t, cfg.IsValidSection(""))
}

func TestEncodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := Default(dir)
	cfg.Git.Days = 10

	data, err := Encode(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[git]")

	loaded, err := Load(newViper(t, dir, string(data)), dir)
	require.NoError(t, err)
	assert.Equal(t, 10, loaded.Git.Days)
	assert.Equal(t, cfg.Memory.ValidSections, loaded.Memory.ValidSections)
}
