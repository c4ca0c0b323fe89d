package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pders01/mnemos/internal/config"
	"github.com/pders01/mnemos/internal/git"
	"github.com/pders01/mnemos/internal/memory"
	"github.com/pders01/mnemos/internal/retention"
)

// Status is the outcome of a single check
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusWarn:
		return "warn"
	default:
		return "fail"
	}
}

// MarshalText encodes the status by name
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Mark is the one-character rendering used in the text report
func (s Status) Mark() string {
	switch s {
	case StatusOK:
		return "✓"
	case StatusWarn:
		return "!"
	default:
		return "✗"
	}
}

// Check is one diagnostic line
type Check struct {
	Group  string `json:"group"`
	Name   string `json:"name"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Report collects every check in run order
type Report struct {
	Checks []Check `json:"checks"`
}

func (r *Report) add(group, name string, status Status, detail string) {
	r.Checks = append(r.Checks, Check{Group: group, Name: name, Status: status, Detail: detail})
}

// Healthy reports whether no check failed; warnings do not count
func (r *Report) Healthy() bool {
	for _, c := range r.Checks {
		if c.Status == StatusFail {
			return false
		}
	}
	return true
}

// Text renders the report grouped by check group
func (r *Report) Text() string {
	var b strings.Builder
	b.WriteString("=== Mnemos Health Check ===\n")

	group := ""
	for _, c := range r.Checks {
		if c.Group != group {
			group = c.Group
			fmt.Fprintf(&b, "\n%s:\n", group)
		}
		fmt.Fprintf(&b, "  [%s] %s", c.Status.Mark(), c.Name)
		if c.Detail != "" {
			fmt.Fprintf(&b, ": %s", c.Detail)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + strings.Repeat("=", 30) + "\n")
	if r.Healthy() {
		b.WriteString("✨ Project is healthy.\n")
	} else {
		b.WriteString("⚠️  Problems found, fix the items marked [✗].\n")
		b.WriteString("Run `mnemos init` to create missing files.\n")
	}
	return b.String()
}

// Pinger reaches the embedding backend
type Pinger interface {
	Ping(ctx context.Context) error
	CheckModel(ctx context.Context) error
}

// Options feeds results the caller already has into the run
type Options struct {
	// ConfigErr is the error from loading the config file, if any
	ConfigErr error
	// Embedder is checked when embeddings are enabled
	Embedder Pinger
}

// Run executes every check against cfg's project
func Run(ctx context.Context, cfg *config.Config, opts Options) *Report {
	r := &Report{}
	checkGit(ctx, r, cfg)
	checkFiles(r, cfg)
	checkConfig(r, cfg, opts.ConfigErr)
	checkSections(r, cfg)
	checkSize(r, cfg)
	if cfg.Embeddings.Enabled {
		checkEmbeddings(ctx, r, opts.Embedder)
	}
	return r
}

func checkGit(ctx context.Context, r *Report, cfg *config.Config) {
	const group = "Git"
	if !git.IsAvailable() {
		r.add(group, "git binary", StatusFail, "git not found on PATH")
		return
	}
	version, err := git.Version(ctx)
	if err != nil {
		r.add(group, "git binary", StatusFail, err.Error())
		return
	}
	r.add(group, "git binary", StatusOK, version)

	if git.IsInsideWorkTree(ctx, cfg.ProjectPath) {
		r.add(group, "repository", StatusOK, "")
	} else {
		r.add(group, "repository", StatusFail, "not a git repository, short-term memory cannot be generated")
	}
}

func checkFiles(r *Report, cfg *config.Config) {
	const group = "Files"
	for _, f := range []struct {
		name string
		path string
	}{
		{"memory directory", cfg.MemoryDir()},
		{"long-term memory", cfg.LongTermPath()},
		{"short-term memory", cfg.ShortTermPath()},
		{"config file", cfg.FilePath()},
		{"agent skill", cfg.SkillPath()},
	} {
		if _, err := os.Stat(f.path); err != nil {
			r.add(group, f.name, StatusFail, "missing "+f.path)
			continue
		}
		r.add(group, f.name, StatusOK, f.path)
	}
}

func checkConfig(r *Report, cfg *config.Config, loadErr error) {
	const group = "Config"
	if loadErr != nil {
		r.add(group, "load", StatusFail, loadErr.Error())
		return
	}
	if err := cfg.Validate(); err != nil {
		r.add(group, "validate", StatusFail, err.Error())
		return
	}
	r.add(group, "validate", StatusOK, fmt.Sprintf("%d valid sections", len(cfg.Memory.ValidSections)))
}

func checkSections(r *Report, cfg *config.Config) {
	const group = "Sections"
	content, err := os.ReadFile(cfg.LongTermPath())
	if err != nil {
		return
	}

	lines := memory.SplitLines(string(content))
	for _, name := range cfg.Memory.ValidSections {
		if _, ok := memory.FindSection(lines, name); ok {
			r.add(group, name, StatusOK, "")
		} else {
			r.add(group, name, StatusWarn, "heading missing from long-term memory")
		}
	}
}

func checkSize(r *Report, cfg *config.Config) {
	stats, err := retention.Collect(cfg)
	if err != nil || !stats.ShortTerm.Exists {
		return
	}
	detail := fmt.Sprintf("%d lines, %d bytes", stats.ShortTerm.LineCount, stats.ShortTerm.SizeBytes)
	if stats.NeedsCompaction {
		r.add("Size", "short-term memory", StatusWarn, detail+", run `mnemos compact`")
		return
	}
	r.add("Size", "short-term memory", StatusOK, detail)
}

func checkEmbeddings(ctx context.Context, r *Report, p Pinger) {
	const group = "Embeddings"
	if p == nil {
		r.add(group, "ollama", StatusWarn, "no client configured")
		return
	}
	if err := p.Ping(ctx); err != nil {
		r.add(group, "ollama", StatusWarn, err.Error())
		return
	}
	r.add(group, "ollama", StatusOK, "")
	if err := p.CheckModel(ctx); err != nil {
		r.add(group, "model", StatusWarn, err.Error())
		return
	}
	r.add(group, "model", StatusOK, "")
}
