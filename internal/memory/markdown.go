package memory

import (
	"strings"
	"time"
)

// Heading prefixes of the two documents. Long-term sections are level 2,
// short-term date blocks level 3 and their type groups level 4.
const (
	SectionPrefix   = "## "
	DateBlockPrefix = "### "
	TypeGroupPrefix = "#### "

	// RecentActivityHeading marks the end of the short-term preamble
	RecentActivityHeading = "## Recent Activity"

	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04"
)

// IsHeading reports whether line is a heading introduced by prefix.
// Leading and trailing whitespace is ignored; a deeper heading never matches
// a shallower prefix because the prefix ends in a space.
func IsHeading(line, prefix string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), prefix)
}

// HeadingText strips the marker characters and surrounding whitespace
func HeadingText(line string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
}

// IsISODate reports whether s is a strict YYYY-MM-DD calendar date
func IsISODate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Cutoff returns the ISO date days before now
func Cutoff(now time.Time, days int) string {
	return now.AddDate(0, 0, -days).Format(DateLayout)
}

// SplitLines splits content into lines without terminators.
// A trailing newline does not produce an empty final line.
func SplitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// splitKeepEnds splits content into lines that keep their "\n"
func splitKeepEnds(content string) []string {
	lines := strings.SplitAfter(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

func withNewline(line string) string {
	if strings.HasSuffix(line, "\n") {
		return line
	}
	return line + "\n"
}
