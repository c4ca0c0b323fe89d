package history

import (
	"regexp"
	"strings"
)

// TypeOther classifies commits that do not follow the conventional grammar
const TypeOther = "other"

// conventionalRe is the conventional-commit prefix: a word token, an optional
// scope running from the first "(" to the last ")" before the colon, an
// optional "!" breaking-change marker, then a colon. Nested parentheses in
// the scope are accepted.
var conventionalRe = regexp.MustCompile(`^(\w+)(?:\(.*\))?!?:`)

// ParseCommitType returns the lowercased leading token of a conventional
// commit subject, or TypeOther.
func ParseCommitType(message string) string {
	m := conventionalRe.FindStringSubmatch(message)
	if m == nil {
		return TypeOther
	}
	return strings.ToLower(m[1])
}

var typeLabels = map[string]string{
	"feat":     "✨ Features",
	"fix":      "🐛 Fixes",
	"refactor": "🔨 Refactoring",
	"perf":     "⚡ Performance",
	"docs":     "📝 Documentation",
	"test":     "✅ Tests",
	"style":    "🎨 Style",
	"build":    "🏗️ Build",
	"ci":       "👷 CI",
	"chore":    "🔧 Chores",
	TypeOther:  "📦 Other",
}

// TypeLabel returns the display label for a commit type
func TypeLabel(commitType string) string {
	if label, ok := typeLabels[commitType]; ok {
		return label
	}
	return "📦 " + commitType
}
