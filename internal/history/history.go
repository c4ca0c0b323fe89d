package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pders01/mnemos/internal/git"
	"github.com/pders01/mnemos/internal/memory"
	"github.com/pders01/mnemos/internal/models"
)

// ErrNotARepository is returned when the project root has no .git marker
var ErrNotARepository = errors.New("not a git repository")

// Querier fetches raw numstat log output for a project directory
type Querier func(ctx context.Context, dir string, opts git.LogOptions) (string, error)

// History derives short-term memory from a project's commit log
type History struct {
	store *memory.Store
	query Querier
	log   *slog.Logger
}

// Option configures a History
type Option func(*History)

// WithQuerier replaces the git log runner
func WithQuerier(q Querier) Option {
	return func(h *History) {
		h.query = q
	}
}

// New creates a History bound to a memory store
func New(store *memory.Store, opts ...Option) *History {
	h := &History{
		store: store,
		query: git.LogNumstat,
		log:   store.Logger().With("component", "history"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Result summarizes a short-term memory refresh
type Result struct {
	Path     string
	Commits  int
	Hotspots int
	Report   models.Report
}

// Message is the human-readable outcome of a refresh
func (r *Result) Message() string {
	return fmt.Sprintf("Short-term memory updated: analyzed %d commits, found %d hotspots.", r.Commits, len(r.Report.Hotspots))
}

// RecentCommits returns commits from the last sinceDays days, newest first.
// Git failures and timeouts are logged and yield an empty list.
func (h *History) RecentCommits(ctx context.Context, sinceDays, maxCount int) []models.CommitRecord {
	cfg := h.store.Config()
	opts := git.LogOptions{
		Since:    memory.Cutoff(h.store.Now(), sinceDays),
		MaxCount: maxCount,
		Timeout:  cfg.GitTimeout(),
	}

	raw, err := h.query(ctx, cfg.ProjectPath, opts)
	if err != nil {
		h.log.Warn("git log failed", "error", err, "since", opts.Since)
		return nil
	}

	commits := ParseLog(raw)
	h.log.Debug("parsed commits", "count", len(commits), "since", opts.Since)
	return commits
}

// Analyze collects recent commits and aggregates them, honoring ignore_files
func (h *History) Analyze(ctx context.Context) ([]models.CommitRecord, models.Report, error) {
	cfg := h.store.Config()
	if !git.HasMetadata(cfg.ProjectPath) {
		return nil, models.Report{}, fmt.Errorf("%s: %w", cfg.ProjectPath, ErrNotARepository)
	}

	ignore, err := NewIgnoreMatcher(cfg.Git.IgnoreFiles)
	if err != nil {
		return nil, models.Report{}, err
	}

	commits := h.RecentCommits(ctx, cfg.Git.Days, cfg.Git.MaxCount)
	return commits, Aggregate(ignore.Filter(commits)), nil
}

// Summarize regenerates the short-term memory document from git history
func (h *History) Summarize(ctx context.Context) (*Result, error) {
	commits, report, err := h.Analyze(ctx)
	if err != nil {
		return nil, err
	}

	doc := Render(commits, report, h.store.Now())
	if err := h.store.WriteShortTerm(doc); err != nil {
		return nil, err
	}

	cfg := h.store.Config()
	h.log.Info("short-term memory updated", "commits", len(commits), "hotspots", len(report.Hotspots))
	return &Result{
		Path:     cfg.ShortTermPath(),
		Commits:  len(commits),
		Hotspots: len(report.Hotspots),
		Report:   report,
	}, nil
}
