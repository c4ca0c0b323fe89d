package memory

import "strings"

// DateBlock is one day of the short-term document: the date heading and every
// line up to the next date heading.
type DateBlock struct {
	Date  string
	Lines []string
}

// Valid reports whether the heading is a strict ISO date, the precondition
// for comparing blocks lexically.
func (b DateBlock) Valid() bool {
	return IsISODate(b.Date)
}

// Text joins the block lines back together
func (b DateBlock) Text() string {
	return strings.Join(b.Lines, "\n")
}

// SplitDateBlocks cuts content at every date heading. Lines before the first
// date heading are returned as the preamble. Joining preamble and block lines
// with "\n" reproduces content exactly.
func SplitDateBlocks(content string) (preamble []string, blocks []DateBlock) {
	current := -1
	for _, line := range strings.Split(content, "\n") {
		if IsHeading(line, DateBlockPrefix) {
			blocks = append(blocks, DateBlock{
				Date:  HeadingText(line),
				Lines: []string{line},
			})
			current = len(blocks) - 1
			continue
		}
		if current < 0 {
			preamble = append(preamble, line)
			continue
		}
		blocks[current].Lines = append(blocks[current].Lines, line)
	}
	return preamble, blocks
}

// Entries counts the bullet lines of the block
func (b DateBlock) Entries() int {
	n := 0
	for _, line := range b.Lines {
		if strings.HasPrefix(strings.TrimSpace(line), "- ") {
			n++
		}
	}
	return n
}
