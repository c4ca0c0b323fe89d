package search

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pders01/mnemos/internal/memory"
	"github.com/pders01/mnemos/internal/models"
)

var (
	ErrEmptyKeyword = errors.New("search keyword cannot be empty")
	ErrInvalidScope = errors.New("invalid search scope")
)

// ParseScope validates a search scope; empty means all
func ParseScope(s string) (memory.Kind, error) {
	k, err := memory.ParseKind(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q (must be: all, long, short)", ErrInvalidScope, s)
	}
	return k, nil
}

// Query describes one keyword search
type Query struct {
	Keyword string
	Scope   memory.Kind
	// Days limits short-term hits to the last Days days; nil disables the
	// filter and 0 keeps today only.
	Days *int
}

// Results holds matches grouped by document
type Results struct {
	Keyword string               `json:"keyword"`
	Long    []models.SearchMatch `json:"long_term,omitempty"`
	Short   []models.SearchMatch `json:"short_term,omitempty"`
}

// Empty reports whether neither document matched
func (r *Results) Empty() bool {
	return len(r.Long) == 0 && len(r.Short) == 0
}

// Text renders the plain-text report
func (r *Results) Text() string {
	if r.Empty() {
		return fmt.Sprintf("No matches found in memory for '%s'.", r.Keyword)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Search results for '%s':\n", r.Keyword)
	writeGroup(&b, "Long-term memory", r.Long)
	writeGroup(&b, "Short-term memory", r.Short)
	return b.String()
}

func writeGroup(b *strings.Builder, title string, matches []models.SearchMatch) {
	if len(matches) == 0 {
		return
	}
	fmt.Fprintf(b, "\n=== %s ===\n", title)
	for _, m := range matches {
		fmt.Fprintf(b, "[%s] L%d: %s\n", m.Header, m.LineNo, m.Line)
	}
}

// Searcher runs queries against a project's memory documents
type Searcher struct {
	store *memory.Store
	log   *slog.Logger
}

// NewSearcher creates a Searcher over store
func NewSearcher(store *memory.Store) *Searcher {
	return &Searcher{
		store: store,
		log:   store.Logger().With("component", "search"),
	}
}

// Search finds keyword in the documents selected by q.Scope.
// A missing document contributes no matches.
func (s *Searcher) Search(q Query) (*Results, error) {
	keyword := strings.TrimSpace(q.Keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}
	if q.Scope == "" {
		q.Scope = memory.KindAll
	}

	contextLines := s.store.Config().Search.ContextLines
	res := &Results{Keyword: keyword}

	if q.Scope.IncludesLong() {
		content, err := s.load(s.store.LoadLongTerm)
		if err != nil {
			return nil, err
		}
		res.Long = SearchDocument(content, keyword, memory.SectionPrefix, contextLines)
	}

	if q.Scope.IncludesShort() {
		content, err := s.load(s.store.LoadShortTerm)
		if err != nil {
			return nil, err
		}
		matches := SearchDocument(content, keyword, memory.DateBlockPrefix, contextLines)
		if q.Days != nil {
			matches = s.filterSince(matches, memory.Cutoff(s.store.Now(), *q.Days))
		}
		res.Short = matches
	}

	s.log.Debug("search finished", "keyword", keyword, "scope", q.Scope, "long", len(res.Long), "short", len(res.Short))
	return res, nil
}

func (s *Searcher) load(read func() (string, error)) (string, error) {
	content, err := read()
	if errors.Is(err, memory.ErrDocumentMissing) {
		return "", nil
	}
	return content, err
}

// filterSince keeps matches under a date heading on or after cutoff, plus
// everything above the first heading (title and hotspots). Matches under a
// malformed heading cannot be placed in time and are dropped.
func (s *Searcher) filterSince(matches []models.SearchMatch, cutoff string) []models.SearchMatch {
	kept := matches[:0]
	warned := make(map[string]bool)
	for _, m := range matches {
		if m.Header == DefaultHeader {
			kept = append(kept, m)
			continue
		}
		if !memory.IsISODate(m.Header) {
			if !warned[m.Header] {
				s.log.Warn("skipping malformed date heading", "heading", m.Header)
				warned[m.Header] = true
			}
			continue
		}
		if m.Header >= cutoff {
			kept = append(kept, m)
		}
	}
	return kept
}
