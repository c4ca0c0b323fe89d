package memory

import (
	"fmt"
	"strings"
)

var sectionHints = map[string]string{
	"Project Overview":         "Core goals and vision of the project",
	"Architecture Decisions":   "Important architectural choices and their rationale",
	"Code Style & Conventions": "Coding preferences and conventions",
	"Technology Choices":       "Key technologies and why they were chosen",
	"Constraints & Caveats":    "Pitfalls, limitations and special requirements not to forget",
}

// LongTermTemplate renders an empty long-term document with one heading per section
func LongTermTemplate(sections []string) string {
	var b strings.Builder
	b.WriteString("# Project Long-Term Memory\n")
	for _, name := range sections {
		hint, ok := sectionHints[name]
		if !ok {
			hint = name
		}
		fmt.Fprintf(&b, "\n%s%s\n<!-- %s -->\n", SectionPrefix, name, hint)
	}
	return b.String()
}

// ShortTermTemplate is the short-term document before the first update
const ShortTermTemplate = `# Short-Term Memory

` + RecentActivityHeading + `

<!-- Generated by ` + "`mnemos update`" + `; do not edit below this line by hand -->
`

// SkillTemplate describes the memory commands to an agent
const SkillTemplate = `---
name: mnemos
description: Persistent project memory. Read it at session start, record durable decisions, compact old activity.
---

# mnemos

Two documents live in ` + "`.memory/`" + `:

- ` + "`long_term.md`" + `: stable facts, one ` + "`##`" + ` section per category.
- ` + "`short_term.md`" + `: recent git activity grouped by day, rebuilt from history.

## When to use

- Session start: ` + "`mnemos update`" + ` then ` + "`mnemos show`" + `.
- A durable decision was made: ` + "`mnemos write --section \"Architecture Decisions\" --mode append \"...\"`" + `.
- Looking for past context: ` + "`mnemos search <keyword> [--type short --days 7]`" + `.
- Short-term memory is large (see ` + "`mnemos stats`" + `): ` + "`mnemos compact`" + `, summarize
  the returned entries and write the summary into long-term memory.
`
