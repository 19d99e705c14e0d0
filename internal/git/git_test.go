package git_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robertgumeny/authkit/internal/git"
)

// initGitRepo creates a temporary directory, initialises a git repository,
// configures a local user identity, and creates an initial commit.
// Returns the path to the repository root.
func initGitRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()

	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}

	run("init")
	run("config", "user.email", "test@example.com")
	run("config", "user.name", "Test User")

	writeTestFile(t, dir, "README.md", "# test repo\n")
	run("add", ".")
	run("commit", "-m", "initial commit")

	return dir
}

// writeTestFile writes contents to name inside dir.
func writeTestFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestCheckClean_CleanTree(t *testing.T) {
	dir := initGitRepo(t)
	if err := git.CheckClean(dir); err != nil {
		t.Errorf("expected clean tree, got %v", err)
	}
}

func TestCheckClean_DirtyTree(t *testing.T) {
	tests := []struct {
		name  string
		setup func(dir string)
		want  string
	}{
		{
			name:  "modified tracked file",
			setup: func(dir string) { writeTestFile(t, dir, "README.md", "# changed\n") },
			want:  "README.md",
		},
		{
			name:  "untracked file",
			setup: func(dir string) { writeTestFile(t, dir, "new.js", "console.log(1)\n") },
			want:  "?? new.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := initGitRepo(t)
			tt.setup(dir)

			err := git.CheckClean(dir)
			if !errors.Is(err, git.ErrDirty) {
				t.Fatalf("expected ErrDirty, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should list %q: %v", tt.want, err)
			}
		})
	}
}

func TestCheckClean_NotARepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	err := git.CheckClean(dir)
	if err == nil {
		t.Fatal("expected error outside a git repository")
	}
	if errors.Is(err, git.ErrDirty) {
		t.Errorf("non-repository error must not be ErrDirty: %v", err)
	}
}

func TestStatus_EmptyForCleanTree(t *testing.T) {
	dir := initGitRepo(t)
	out, err := git.Status(dir)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("Status() = %q, want empty", out)
	}
}
