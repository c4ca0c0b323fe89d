package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TempGitRepo is a throwaway git repository for tests
type TempGitRepo struct {
	Path string
	T    *testing.T
}

// NewTempGitRepo creates a git repository with one initial commit.
// The test is skipped when git is not installed.
func NewTempGitRepo(t *testing.T) *TempGitRepo {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	tmpDir, err := os.MkdirTemp("", "mnemos-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	repo := &TempGitRepo{Path: tmpDir, T: t}

	// Configure git user (required for commits)
	for _, args := range [][]string{
		{"init", "-q"},
		{"config", "user.name", "Test User"},
		{"config", "user.email", "test@example.com"},
		{"config", "commit.gpgsign", "false"},
	} {
		if err := repo.run(nil, args...); err != nil {
			os.RemoveAll(tmpDir)
			t.Fatalf("failed to set up git repo: %v", err)
		}
	}

	repo.CreateFile("README.md", "# Test Repository\n")
	repo.Commit("Initial commit")

	return repo
}

// Cleanup removes the temporary git repository
func (r *TempGitRepo) Cleanup() {
	r.T.Helper()
	if err := os.RemoveAll(r.Path); err != nil {
		r.T.Errorf("failed to cleanup temp repo: %v", err)
	}
}

// CreateFile creates a file in the repository
func (r *TempGitRepo) CreateFile(name, content string) {
	r.T.Helper()
	WriteFile(r.T, filepath.Join(r.Path, name), content)
}

// Commit stages and commits all changes
func (r *TempGitRepo) Commit(message string) {
	r.T.Helper()
	r.commit(message, nil)
}

// CommitAt stages and commits all changes with a fixed author and committer date
// (e.g. "2026-02-01T10:00:00")
func (r *TempGitRepo) CommitAt(message, date string) {
	r.T.Helper()
	r.commit(message, []string{"GIT_AUTHOR_DATE=" + date, "GIT_COMMITTER_DATE=" + date})
}

func (r *TempGitRepo) commit(message string, env []string) {
	r.T.Helper()

	if err := r.run(nil, "add", "."); err != nil {
		r.T.Fatalf("failed to stage files: %v", err)
	}
	if err := r.run(env, "commit", "-q", "-m", message); err != nil {
		r.T.Fatalf("failed to commit: %v", err)
	}
}

func (r *TempGitRepo) run(env []string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Path
	cmd.Env = append(os.Environ(), env...)
	return cmd.Run()
}

// WriteFile writes content to path, creating parent directories
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// ReadFile returns the content of path or fails the test
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	return string(data)
}
