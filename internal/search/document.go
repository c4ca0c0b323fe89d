package search

import (
	"strings"

	"github.com/pders01/mnemos/internal/memory"
	"github.com/pders01/mnemos/internal/models"
)

// DefaultHeader labels matches found before the first heading
const DefaultHeader = "Header"

// SearchDocument scans content line by line for keyword, case-insensitively.
// Lines introduced by headingPrefix set the current header and are never
// matched themselves. Each match carries up to contextLines lines on either
// side, clipped at document bounds.
func SearchDocument(content, keyword, headingPrefix string, contextLines int) []models.SearchMatch {
	needle := strings.ToLower(keyword)
	if needle == "" {
		return nil
	}
	if contextLines < 0 {
		contextLines = 0
	}

	lines := memory.SplitLines(content)
	header := DefaultHeader
	var matches []models.SearchMatch

	for i, line := range lines {
		if memory.IsHeading(line, headingPrefix) {
			header = memory.HeadingText(line)
			continue
		}
		if !strings.Contains(strings.ToLower(line), needle) {
			continue
		}

		start := max(0, i-contextLines)
		end := min(len(lines), i+contextLines+1)
		matches = append(matches, models.SearchMatch{
			Header:  header,
			LineNo:  i + 1,
			Line:    strings.TrimSpace(line),
			Context: strings.Join(lines[start:end], "\n"),
		})
	}

	return matches
}
