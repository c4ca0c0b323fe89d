package retention

import (
	"strings"

	"github.com/pders01/mnemos/internal/memory"
)

// Plan is a short-term document cut at a cutoff date
type Plan struct {
	Cutoff   string
	Preamble []string
	Recent   []memory.DateBlock
	Old      []memory.DateBlock
	// Malformed lists date headings that could not be parsed; their blocks are kept as recent
	Malformed []string
}

// Split sorts every date block of content into the old or recent bucket.
// A block is old when its ISO date sorts before cutoff. Blocks under a
// malformed heading are never treated as old.
func Split(content, cutoff string) *Plan {
	preamble, blocks := memory.SplitDateBlocks(content)
	p := &Plan{Cutoff: cutoff, Preamble: preamble}

	for _, b := range blocks {
		switch {
		case !b.Valid():
			p.Malformed = append(p.Malformed, b.Date)
			p.Recent = append(p.Recent, b)
		case b.Date < cutoff:
			p.Old = append(p.Old, b)
		default:
			p.Recent = append(p.Recent, b)
		}
	}
	return p
}

// HasOld reports whether anything would be compacted
func (p *Plan) HasOld() bool {
	return len(p.Old) > 0
}

// OldDates lists the dates of the old blocks in document order
func (p *Plan) OldDates() []string {
	dates := make([]string, len(p.Old))
	for i, b := range p.Old {
		dates[i] = b.Date
	}
	return dates
}

// RecentContent is the document that remains after compaction: the preamble
// once, a blank line, then the recent blocks.
func (p *Plan) RecentContent() string {
	var parts []string
	if head := trimTrailingBlank(p.Preamble); len(head) > 0 {
		parts = append(parts, strings.Join(head, "\n"))
	}
	if body := joinBlocks(p.Recent); body != "" {
		parts = append(parts, body)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// OldContent is the text of the old blocks
func (p *Plan) OldContent() string {
	return joinBlocks(p.Old)
}

func joinBlocks(blocks []memory.DateBlock) string {
	texts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if t := strings.Join(trimTrailingBlank(b.Lines), "\n"); t != "" {
			texts = append(texts, t)
		}
	}
	return strings.Join(texts, "\n\n")
}

func trimTrailingBlank(lines []string) []string {
	n := len(lines)
	for n > 0 && strings.TrimSpace(lines[n-1]) == "" {
		n--
	}
	return lines[:n]
}
