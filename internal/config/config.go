package config

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

const (
	// FileName is the per-project configuration file
	FileName = ".mnemos.toml"
	// EnvPrefix prefixes environment overrides, e.g. MNEMOS_GIT_DAYS
	EnvPrefix = "MNEMOS"
)

// Config is the resolved configuration handed to every entry point
type Config struct {
	ProjectPath string `toml:"-" mapstructure:"-"`

	Memory      MemoryConfig      `toml:"memory" mapstructure:"memory"`
	Git         GitConfig         `toml:"git" mapstructure:"git"`
	Search      SearchConfig      `toml:"search" mapstructure:"search"`
	Compression CompressionConfig `toml:"compression" mapstructure:"compression"`
	Embeddings  EmbeddingsConfig  `toml:"embeddings" mapstructure:"embeddings"`
}

type MemoryConfig struct {
	Dir           string   `toml:"dir" mapstructure:"dir"`
	LongTermFile  string   `toml:"long_term_file" mapstructure:"long_term_file"`
	ShortTermFile string   `toml:"short_term_file" mapstructure:"short_term_file"`
	ValidSections []string `toml:"valid_sections" mapstructure:"valid_sections"`
}

type GitConfig struct {
	Days           int      `toml:"days" mapstructure:"days"`
	MaxCount       int      `toml:"max_count" mapstructure:"max_count"`
	TimeoutSeconds int      `toml:"timeout_seconds" mapstructure:"timeout_seconds"`
	IgnoreFiles    []string `toml:"ignore_files" mapstructure:"ignore_files"`
}

type SearchConfig struct {
	ContextLines int `toml:"context_lines" mapstructure:"context_lines"`
}

type CompressionConfig struct {
	ThresholdDays int `toml:"threshold_days" mapstructure:"threshold_days"`
	MaxLines      int `toml:"max_lines" mapstructure:"max_lines"`
	MaxKB         int `toml:"max_kb" mapstructure:"max_kb"`
}

type EmbeddingsConfig struct {
	Enabled   bool   `toml:"enabled" mapstructure:"enabled"`
	Model     string `toml:"model" mapstructure:"model"`
	OllamaURL string `toml:"ollama_url" mapstructure:"ollama_url"`
}

// DefaultSections are the canonical long-term memory categories
var DefaultSections = []string{
	"Project Overview",
	"Architecture Decisions",
	"Code Style & Conventions",
	"Technology Choices",
	"Constraints & Caveats",
}

// Default returns a fully populated config rooted at projectPath
func Default(projectPath string) *Config {
	return &Config{
		ProjectPath: projectPath,
		Memory: MemoryConfig{
			Dir:           ".memory",
			LongTermFile:  "long_term.md",
			ShortTermFile: "short_term.md",
			ValidSections: append([]string(nil), DefaultSections...),
		},
		Git: GitConfig{
			Days:           7,
			MaxCount:       50,
			TimeoutSeconds: 30,
			IgnoreFiles:    []string{"*.lock", "package-lock.json", ".gitignore"},
		},
		Search: SearchConfig{
			ContextLines: 1,
		},
		Compression: CompressionConfig{
			ThresholdDays: 3,
			MaxLines:      500,
			MaxKB:         50,
		},
		Embeddings: EmbeddingsConfig{
			Enabled:   false,
			Model:     "nomic-embed-text",
			OllamaURL: "http://localhost:11434",
		},
	}
}

// SetDefaults registers every default on v
func SetDefaults(v *viper.Viper) {
	d := Default("")

	v.SetDefault("memory.dir", d.Memory.Dir)
	v.SetDefault("memory.long_term_file", d.Memory.LongTermFile)
	v.SetDefault("memory.short_term_file", d.Memory.ShortTermFile)
	v.SetDefault("memory.valid_sections", d.Memory.ValidSections)
	v.SetDefault("git.days", d.Git.Days)
	v.SetDefault("git.max_count", d.Git.MaxCount)
	v.SetDefault("git.timeout_seconds", d.Git.TimeoutSeconds)
	v.SetDefault("git.ignore_files", d.Git.IgnoreFiles)
	v.SetDefault("search.context_lines", d.Search.ContextLines)
	v.SetDefault("compression.threshold_days", d.Compression.ThresholdDays)
	v.SetDefault("compression.max_lines", d.Compression.MaxLines)
	v.SetDefault("compression.max_kb", d.Compression.MaxKB)
	v.SetDefault("embeddings.enabled", d.Embeddings.Enabled)
	v.SetDefault("embeddings.model", d.Embeddings.Model)
	v.SetDefault("embeddings.ollama_url", d.Embeddings.OllamaURL)
}

// Load resolves the configuration held by v for the project at projectPath
func Load(v *viper.Viper, projectPath string) (*Config, error) {
	abs, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project path: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.ProjectPath = abs

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the resolved values are usable
func (c *Config) Validate() error {
	var errs []error
	if len(c.Memory.ValidSections) == 0 {
		errs = append(errs, errors.New("memory.valid_sections must not be empty"))
	}
	if c.Memory.Dir == "" || c.Memory.LongTermFile == "" || c.Memory.ShortTermFile == "" {
		errs = append(errs, errors.New("memory paths must not be empty"))
	}
	if c.Git.Days <= 0 {
		errs = append(errs, fmt.Errorf("git.days must be positive, got %d", c.Git.Days))
	}
	if c.Git.MaxCount <= 0 {
		errs = append(errs, fmt.Errorf("git.max_count must be positive, got %d", c.Git.MaxCount))
	}
	if c.Search.ContextLines < 0 {
		errs = append(errs, fmt.Errorf("search.context_lines must not be negative, got %d", c.Search.ContextLines))
	}
	if c.Compression.ThresholdDays < 0 {
		errs = append(errs, fmt.Errorf("compression.threshold_days must not be negative, got %d", c.Compression.ThresholdDays))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// IsValidSection checks if name is one of the configured long-term sections
func (c *Config) IsValidSection(name string) bool {
	for _, s := range c.Memory.ValidSections {
		if s == name {
			return true
		}
	}
	return false
}

// GitTimeout returns the git query timeout; zero disables it
func (c *Config) GitTimeout() time.Duration {
	if c.Git.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Git.TimeoutSeconds) * time.Second
}

func (c *Config) MemoryDir() string {
	return filepath.Join(c.ProjectPath, c.Memory.Dir)
}

func (c *Config) LongTermPath() string {
	return filepath.Join(c.MemoryDir(), c.Memory.LongTermFile)
}

func (c *Config) ShortTermPath() string {
	return filepath.Join(c.MemoryDir(), c.Memory.ShortTermFile)
}

// FilePath returns the project config file location
func (c *Config) FilePath() string {
	return filepath.Join(c.ProjectPath, FileName)
}

// SkillPath returns where the agent skill description lives
func (c *Config) SkillPath() string {
	return filepath.Join(c.ProjectPath, ".agent", "skills", "mnemos", "SKILL.md")
}

// Encode renders cfg as TOML
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}
