package testutil

import (
	"path/filepath"
	"testing"
)

// LongTermFixture is a long-term document with two of the default sections
const LongTermFixture = `# Project Long-Term Memory

## Project Overview
Initial overview

## Architecture Decisions
<!-- -->
`

// ShortTermFixture is a short-term document with one recent and one old day
const ShortTermFixture = `# Short-Term Memory

*Last updated: 2026-02-04 09:00*

## Recent Activity

### 2026-02-01

#### ✨ Features
- ` + "`aaaa1111`" + ` feat: recent work

### 2026-01-01

#### 🐛 Fixes
- ` + "`bbbb2222`" + ` fix: old bug
`

// NewMemoryProject creates a project directory with a .memory dir holding the
// given documents. Empty content skips the file.
func NewMemoryProject(t *testing.T, longTerm, shortTerm string) string {
	t.Helper()

	dir := t.TempDir()
	if longTerm != "" {
		WriteFile(t, filepath.Join(dir, ".memory", "long_term.md"), longTerm)
	}
	if shortTerm != "" {
		WriteFile(t, filepath.Join(dir, ".memory", "short_term.md"), shortTerm)
	}
	return dir
}
