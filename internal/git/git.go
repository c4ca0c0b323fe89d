package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// LogFormat emits one header line per commit: full hash, short date, subject.
// "||" separates the fields; the subject is always the last field so a
// delimiter inside it survives a three-way split.
const (
	LogFieldSep = "||"
	logFormat   = "--pretty=format:%H" + LogFieldSep + "%ad" + LogFieldSep + "%s"
)

// ErrTimeout is returned when a git command exceeds its deadline
var ErrTimeout = errors.New("git command timed out")

// HasMetadata reports whether dir carries a .git marker (directory, or file for worktrees)
func HasMetadata(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// IsAvailable checks that a git binary is on PATH
func IsAvailable() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Version returns the installed git version string
func Version(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "--version")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to get git version: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// IsInsideWorkTree checks if dir is inside a git work tree
func IsInsideWorkTree(ctx context.Context, dir string) bool {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(output)) == "true"
}

// GitDir returns the absolute path of the repository's git directory
func GitDir(ctx context.Context, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--absolute-git-dir")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to get git dir: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// LogOptions bounds a numstat log query
type LogOptions struct {
	Since    string // YYYY-MM-DD, inclusive
	MaxCount int
	Timeout  time.Duration // zero means no deadline
}

// LogNumstat runs git log in dir and returns the raw header + numstat output
func LogNumstat(ctx context.Context, dir string, opts LogOptions) (string, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	args := []string{"log", logFormat, "--date=short", "--numstat"}
	if opts.Since != "" {
		args = append(args, "--since="+opts.Since)
	}
	if opts.MaxCount > 0 {
		args = append(args, "--max-count="+strconv.Itoa(opts.MaxCount))
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("git log: %w", ErrTimeout)
		}
		return "", fmt.Errorf("failed to run git log: %w", err)
	}
	return string(output), nil
}
