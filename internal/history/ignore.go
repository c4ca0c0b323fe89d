package history

import (
	"fmt"
	"path"
	"strings"

	"github.com/gobwas/glob"

	"github.com/pders01/mnemos/internal/models"
)

// IgnoreMatcher filters files out of hotspot aggregation.
// Patterns without a slash match the base name, others the full path.
type IgnoreMatcher struct {
	base []glob.Glob
	full []glob.Glob
}

// NewIgnoreMatcher compiles the configured ignore patterns
func NewIgnoreMatcher(patterns []string) (*IgnoreMatcher, error) {
	m := &IgnoreMatcher{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		if strings.Contains(p, "/") {
			m.full = append(m.full, g)
		} else {
			m.base = append(m.base, g)
		}
	}
	return m, nil
}

// Match reports whether filename is ignored
func (m *IgnoreMatcher) Match(filename string) bool {
	if m == nil {
		return false
	}
	base := path.Base(filename)
	for _, g := range m.base {
		if g.Match(base) {
			return true
		}
	}
	for _, g := range m.full {
		if g.Match(filename) {
			return true
		}
	}
	return false
}

// Filter returns copies of commits without ignored file deltas
func (m *IgnoreMatcher) Filter(commits []models.CommitRecord) []models.CommitRecord {
	if m == nil || len(m.base)+len(m.full) == 0 {
		return commits
	}

	out := make([]models.CommitRecord, len(commits))
	for i, c := range commits {
		files := make([]models.FileDelta, 0, len(c.Files))
		for _, f := range c.Files {
			if !m.Match(f.Filename) {
				files = append(files, f)
			}
		}
		c.Files = files
		out[i] = c
	}
	return out
}
