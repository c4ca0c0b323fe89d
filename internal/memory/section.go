package memory

import (
	"fmt"
	"strings"
	"time"
)

const (
	updatedMarker  = "*Updated: %s*"
	appendedMarker = "*Appended: %s*"
)

// Span is a section's line range: Start is the heading line, End is the next
// top-level heading or len(lines).
type Span struct {
	Start int
	End   int
}

// Section is a transient view of one heading-delimited region
type Section struct {
	Heading string
	Body    string
}

// FindSection locates the first top-level heading whose text contains name.
// Headings are scanned top to bottom and the first match wins.
func FindSection(lines []string, name string) (Span, bool) {
	start := -1
	for i, line := range lines {
		if !IsHeading(line, SectionPrefix) {
			continue
		}
		if start >= 0 {
			return Span{Start: start, End: i}, true
		}
		if strings.Contains(HeadingText(line), name) {
			start = i
		}
	}
	if start < 0 {
		return Span{}, false
	}
	return Span{Start: start, End: len(lines)}, true
}

// ParseSections returns every top-level section in document order.
// Text before the first heading is not part of any section.
func ParseSections(content string) []Section {
	var sections []Section
	var current *Section
	var body []string

	flush := func() {
		if current != nil {
			current.Body = strings.TrimSpace(strings.Join(body, "\n"))
			sections = append(sections, *current)
		}
	}

	for _, line := range SplitLines(content) {
		if IsHeading(line, SectionPrefix) {
			flush()
			current = &Section{Heading: HeadingText(line)}
			body = nil
			continue
		}
		if current != nil {
			body = append(body, line)
		}
	}
	flush()

	return sections
}

// ReadSection returns the heading and body of the named section, trimmed
func ReadSection(content, name string) (string, error) {
	lines := splitKeepEnds(content)
	span, ok := FindSection(lines, name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrSectionNotFound, name)
	}
	return strings.TrimSpace(strings.Join(lines[span.Start:span.End], "")), nil
}

// ReplaceSection rewrites the named section as heading, update marker, blank
// line, body and a trailing blank line. Everything outside the span is kept
// byte for byte.
func ReplaceSection(content, name, body string, now time.Time) (string, error) {
	lines := splitKeepEnds(content)
	span, ok := FindSection(lines, name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrSectionNotFound, name)
	}

	replacement := []string{
		withNewline(lines[span.Start]),
		fmt.Sprintf(updatedMarker, now.Format(TimestampLayout)) + "\n",
		"\n",
		strings.TrimRight(body, "\n") + "\n",
		"\n",
	}

	return splice(lines, span, replacement), nil
}

// AppendSection keeps the existing section body verbatim and adds a blank
// line, body and an append marker after it.
func AppendSection(content, name, body string, now time.Time) (string, error) {
	lines := splitKeepEnds(content)
	span, ok := FindSection(lines, name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrSectionNotFound, name)
	}

	replacement := make([]string, 0, span.End-span.Start+4)
	replacement = append(replacement, withNewline(lines[span.Start]))
	existing := lines[span.Start+1 : span.End]
	for i, line := range existing {
		if i == len(existing)-1 {
			line = withNewline(line)
		}
		replacement = append(replacement, line)
	}
	if n := len(existing); n == 0 || strings.TrimSpace(existing[n-1]) != "" {
		replacement = append(replacement, "\n")
	}
	replacement = append(replacement,
		strings.TrimRight(body, "\n")+"\n",
		fmt.Sprintf(appendedMarker, now.Format(TimestampLayout))+"\n",
		"\n",
	)

	return splice(lines, span, replacement), nil
}

func splice(lines []string, span Span, replacement []string) string {
	var b strings.Builder
	for _, line := range lines[:span.Start] {
		b.WriteString(line)
	}
	for _, line := range replacement {
		b.WriteString(line)
	}
	for _, line := range lines[span.End:] {
		b.WriteString(line)
	}
	return b.String()
}

// LastStamp returns the timestamp of the last Updated or Appended marker in
// the section body, or "" when the section was never edited.
func (s Section) LastStamp() string {
	lines := SplitLines(s.Body)
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		for _, prefix := range []string{"*Updated: ", "*Appended: "} {
			if strings.HasPrefix(line, prefix) && strings.HasSuffix(line, "*") {
				return strings.TrimSuffix(strings.TrimPrefix(line, prefix), "*")
			}
		}
	}
	return ""
}
