package embeddings

import (
	"fmt"
	"math"
	"sort"
)

// CosineSimilarity calculates the cosine similarity between two vectors.
// Returns a value between -1 and 1, where 1 means identical direction.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vectors must have same length: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("vectors cannot be empty")
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("vector norm cannot be zero")
	}

	// Clamp to [-1, 1] to absorb floating point error
	return math.Max(-1, math.Min(1, dot/(math.Sqrt(normA)*math.Sqrt(normB)))), nil
}

// Scored pairs a candidate index with its similarity to a query
type Scored struct {
	Index int
	Score float64
}

// Rank scores every candidate against query, best first.
// Candidates that cannot be compared are skipped.
func Rank(query []float64, candidates [][]float64) []Scored {
	out := make([]Scored, 0, len(candidates))
	for i, c := range candidates {
		score, err := CosineSimilarity(query, c)
		if err != nil {
			continue
		}
		out = append(out, Scored{Index: i, Score: score})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
