package search

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pders01/mnemos/internal/embeddings"
	"github.com/pders01/mnemos/internal/memory"
)

// Embedder turns text into a vector
type Embedder interface {
	Model() string
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Fragment is an embeddable unit of memory: a long-term section or a
// short-term date block.
type Fragment struct {
	Source string `json:"source"` // "long" or "short"
	Header string `json:"header"`
	Text   string `json:"text"`
}

// Hit is a fragment ranked by similarity to a query
type Hit struct {
	Fragment
	Score float64 `json:"score"`
}

// Fragments splits the selected documents into embeddable units
func (s *Searcher) Fragments(scope memory.Kind) ([]Fragment, error) {
	var out []Fragment

	if scope.IncludesLong() {
		content, err := s.load(s.store.LoadLongTerm)
		if err != nil {
			return nil, err
		}
		for _, sec := range memory.ParseSections(content) {
			if sec.Body == "" {
				continue
			}
			out = append(out, Fragment{Source: string(memory.KindLong), Header: sec.Heading, Text: sec.Heading + "\n" + sec.Body})
		}
	}

	if scope.IncludesShort() {
		content, err := s.load(s.store.LoadShortTerm)
		if err != nil {
			return nil, err
		}
		_, blocks := memory.SplitDateBlocks(content)
		for _, b := range blocks {
			if !b.Valid() {
				continue
			}
			out = append(out, Fragment{Source: string(memory.KindShort), Header: b.Date, Text: b.Text()})
		}
	}

	return out, nil
}

// Semantic ranks memory fragments by cosine similarity to query and returns
// at most limit hits. Fragment vectors are cached under the memory directory.
func (s *Searcher) Semantic(ctx context.Context, e Embedder, query string, scope memory.Kind, limit int) ([]Hit, error) {
	if query == "" {
		return nil, ErrEmptyKeyword
	}
	if scope == "" {
		scope = memory.KindAll
	}

	fragments, err := s.Fragments(scope)
	if err != nil {
		return nil, err
	}
	if len(fragments) == 0 {
		return nil, nil
	}

	qvec, err := e.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	cache := embeddings.NewCache(filepath.Join(s.store.Config().MemoryDir(), embeddings.DirName))
	vectors := make([][]float64, len(fragments))
	for i, f := range fragments {
		vec, err := s.fragmentVector(ctx, e, cache, f.Text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
	}

	ranked := embeddings.Rank(qvec, vectors)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	hits := make([]Hit, len(ranked))
	for i, r := range ranked {
		hits[i] = Hit{Fragment: fragments[r.Index], Score: r.Score}
	}
	return hits, nil
}

func (s *Searcher) fragmentVector(ctx context.Context, e Embedder, cache *embeddings.Cache, text string) ([]float64, error) {
	vec, ok, err := cache.Get(e.Model(), text)
	if err != nil {
		s.log.Warn("ignoring unreadable embedding", "error", err)
	}
	if ok {
		return vec, nil
	}

	vec, err = e.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to embed memory: %w", err)
	}
	if err := cache.Put(e.Model(), text, vec); err != nil {
		s.log.Warn("failed to cache embedding", "error", err)
	}
	return vec, nil
}
