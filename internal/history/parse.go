package history

import (
	"strconv"
	"strings"

	"github.com/pders01/mnemos/internal/git"
	"github.com/pders01/mnemos/internal/memory"
	"github.com/pders01/mnemos/internal/models"
)

// ShortHashLen is the number of hash characters kept per commit
const ShortHashLen = 8

// ParseLog turns `git log --numstat` output in the hash||date||subject format
// into commit records. Every numstat line belongs to the closest header line
// above it; lines before the first header are dropped.
func ParseLog(raw string) []models.CommitRecord {
	var commits []models.CommitRecord
	current := -1

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if c, ok := parseHeader(line); ok {
			commits = append(commits, c)
			current = len(commits) - 1
			continue
		}

		if current < 0 {
			continue
		}
		if delta, ok := parseNumstat(line); ok {
			commits[current].Files = append(commits[current].Files, delta)
		}
	}

	return commits
}

func parseHeader(line string) (models.CommitRecord, bool) {
	parts := strings.SplitN(line, git.LogFieldSep, 3)
	if len(parts) != 3 || !isHash(parts[0]) || !memory.IsISODate(parts[1]) {
		return models.CommitRecord{}, false
	}

	hash := parts[0]
	if len(hash) > ShortHashLen {
		hash = hash[:ShortHashLen]
	}
	return models.CommitRecord{
		Hash:    hash,
		Date:    parts[1],
		Message: parts[2],
		Type:    ParseCommitType(parts[2]),
	}, true
}

// parseNumstat reads "added\tdeleted\tfilename". Binary files report "-"
// for both counts; any non-numeric count is recorded as 0.
func parseNumstat(line string) (models.FileDelta, bool) {
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) != 3 || parts[2] == "" {
		return models.FileDelta{}, false
	}
	return models.FileDelta{
		Added:    atoiOrZero(parts[0]),
		Deleted:  atoiOrZero(parts[1]),
		Filename: parts[2],
	}, true
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func isHash(s string) bool {
	if len(s) < 4 {
		return false
	}
	for _, r := range s {
		if !('0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F') {
			return false
		}
	}
	return true
}
