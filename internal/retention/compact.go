package retention

import (
	"log/slog"

	"github.com/pders01/mnemos/internal/memory"
)

// NothingToCompress is returned by ExtractOld when no block is past the cutoff
const NothingToCompress = "Nothing to compress."

const extractPreamble = "The following entries were removed from short-term memory. " +
	"Summarize the key information, then record it in long-term memory by " +
	"replacing or appending the matching section:\n\n"

// Compactor ages out old short-term entries
type Compactor struct {
	store *memory.Store
	log   *slog.Logger
}

// NewCompactor creates a Compactor over store
func NewCompactor(store *memory.Store) *Compactor {
	return &Compactor{
		store: store,
		log:   store.Logger().With("component", "retention"),
	}
}

// Plan splits the short-term document at now minus thresholdDays without writing
func (c *Compactor) Plan(thresholdDays int) (*Plan, error) {
	content, err := c.store.LoadShortTerm()
	if err != nil {
		return nil, err
	}

	p := Split(content, memory.Cutoff(c.store.Now(), thresholdDays))
	for _, h := range p.Malformed {
		c.log.Warn("keeping block with malformed date heading", "heading", h)
	}
	return p, nil
}

// ExtractOld removes blocks older than thresholdDays from the short-term
// document and returns them wrapped in summarization instructions.
// The file is left untouched when nothing is old.
func (c *Compactor) ExtractOld(thresholdDays int) (string, error) {
	p, err := c.Plan(thresholdDays)
	if err != nil {
		return "", err
	}
	if !p.HasOld() {
		return NothingToCompress, nil
	}

	if err := c.store.WriteShortTerm(p.RecentContent()); err != nil {
		return "", err
	}

	c.log.Info("compacted short-term memory", "cutoff", p.Cutoff, "removed", len(p.Old), "kept", len(p.Recent))
	return extractPreamble + p.OldContent(), nil
}
