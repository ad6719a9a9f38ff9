package helpers

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// CreateTestRepo creates a temporary git repository with one commit
// for testing.
func CreateTestRepo(t *testing.T) string {
	t.Helper()

	// Store original environment and restore after test
	origGitDir := os.Getenv("GIT_DIR")
	origGitWorkTree := os.Getenv("GIT_WORK_TREE")
	origGitIndexFile := os.Getenv("GIT_INDEX_FILE")

	// Clear git environment variables for test isolation
	os.Unsetenv("GIT_DIR")
	os.Unsetenv("GIT_WORK_TREE")
	os.Unsetenv("GIT_INDEX_FILE")

	t.Cleanup(func() {
		if origGitDir != "" {
			os.Setenv("GIT_DIR", origGitDir)
		}
		if origGitWorkTree != "" {
			os.Setenv("GIT_WORK_TREE", origGitWorkTree)
		}
		if origGitIndexFile != "" {
			os.Setenv("GIT_INDEX_FILE", origGitIndexFile)
		}
	})

	// Create the repository in the system temp dir so the test is not
	// accidentally nested inside an existing repository.
	systemTmp := os.TempDir()
	tmpDir, err := os.MkdirTemp(systemTmp, "gitctx-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	// Initialize git repo with explicit settings
	cmd := exec.Command("git", "init", "--initial-branch=main")
	cmd.Dir = tmpDir
	if err := cmd.Run(); err != nil {
		// Fallback for older git versions
		cmd = exec.Command("git", "init")
		cmd.Dir = tmpDir
		output, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("Failed to init git repo: %v, output: %s", err, output)
		}
	}

	GitRun(t, tmpDir, "config", "user.email", "test@example.com")
	GitRun(t, tmpDir, "config", "user.name", "Test User")

	// Create initial commit
	WriteFile(t, tmpDir, "README.md", "# Test Repository\n")
	GitRun(t, tmpDir, "add", "README.md")
	GitRun(t, tmpDir, "commit", "-m", "Initial commit")

	cmd = exec.Command("git", "branch", "-M", "main")
	cmd.Dir = tmpDir
	_ = cmd.Run() // might already be on main

	return tmpDir
}

// GitRun runs a git command inside the repository and fails the test
// on error.
func GitRun(t *testing.T, repo string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = repo
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v, output: %s", args, err, output)
	}
	return string(output)
}

// WriteFile writes a file relative to the repository root.
func WriteFile(t *testing.T, repo, name, content string) {
	t.Helper()

	path := filepath.Join(repo, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// Commit stages everything and creates a commit with the given message.
func Commit(t *testing.T, repo, message string) {
	t.Helper()

	GitRun(t, repo, "add", "-A")
	GitRun(t, repo, "commit", "-m", message)
}
