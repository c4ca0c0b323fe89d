package history

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pders01/mnemos/internal/memory"
	"github.com/pders01/mnemos/internal/models"
)

const noCommitsText = "No recent commits."

// Render builds the short-term memory document from commits and their report.
// Dates are listed newest first, type groups in tag order, and commits keep
// their input order inside a group.
func Render(commits []models.CommitRecord, report models.Report, now time.Time) string {
	var b strings.Builder

	b.WriteString("# Short-Term Memory\n\n")
	fmt.Fprintf(&b, "*Last updated: %s*\n\n", now.Format(memory.TimestampLayout))

	b.WriteString("## Core Hotspots\n\n")
	if len(report.Hotspots) == 0 {
		b.WriteString("No hotspots detected.\n")
	}
	for _, h := range report.Hotspots {
		fmt.Fprintf(&b, "- `%s` (%d times, +%d/-%d)\n", h.Filename, h.Count, h.Added, h.Deleted)
	}
	b.WriteString("\n")

	b.WriteString(memory.RecentActivityHeading + "\n\n")
	if len(commits) == 0 {
		b.WriteString(noCommitsText + "\n")
		return b.String()
	}

	byDate := make(map[string]map[string][]models.CommitRecord)
	for _, c := range commits {
		t := c.Type
		if t == "" {
			t = TypeOther
		}
		if byDate[c.Date] == nil {
			byDate[c.Date] = make(map[string][]models.CommitRecord)
		}
		byDate[c.Date][t] = append(byDate[c.Date][t], c)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	for i, d := range dates {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s%s\n", memory.DateBlockPrefix, d)

		groups := byDate[d]
		types := make([]string, 0, len(groups))
		for t := range groups {
			types = append(types, t)
		}
		sort.Strings(types)

		for _, t := range types {
			fmt.Fprintf(&b, "\n%s%s\n", memory.TypeGroupPrefix, TypeLabel(t))
			for _, c := range groups[t] {
				fmt.Fprintf(&b, "- `%s` %s\n", c.Hash, c.Message)
			}
		}
	}

	return b.String()
}
