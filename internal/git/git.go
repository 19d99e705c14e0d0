// Package git provides the working-tree check run before files are generated.
package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrDirty is returned by CheckClean when the working tree has uncommitted
// or untracked changes.
var ErrDirty = errors.New("uncommitted changes in working tree")

// Status returns the trimmed output of git status --porcelain run in
// projectRoot. An empty string means the tree is clean.
func Status(projectRoot string) (string, error) {
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = projectRoot
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git status --porcelain: %w\n%s", err, strings.TrimSpace(string(out)))
	}
	return strings.TrimSpace(string(out)), nil
}

// CheckClean returns nil for a clean working tree and an error wrapping
// ErrDirty listing the changed paths otherwise. Any other error means the
// status could not be determined (git missing, not a repository).
func CheckClean(projectRoot string) error {
	status, err := Status(projectRoot)
	if err != nil {
		return err
	}
	if status != "" {
		return fmt.Errorf("%w:\n%s", ErrDirty, status)
	}
	return nil
}
