package orchestrator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robertgumeny/authkit/internal/git"
	"github.com/robertgumeny/authkit/internal/log"
)

// CheckWorkingTree refuses to continue when the project has uncommitted
// changes, so generated files are easy to review and revert with git.
//
// If the status cannot be determined (git missing, not a repository) a
// warning is logged and the run proceeds.
func CheckWorkingTree(projectRoot string) error {
	err := git.CheckClean(projectRoot)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, git.ErrDirty):
		log.Info("commit your changes before running authkit:")
		log.Info("  git add .")
		log.Info(`  git commit -m "your commit message"`)
		return fmt.Errorf("%w: %v", ErrDirtyWorkTree, err)
	default:
		reason, _, _ := strings.Cut(err.Error(), "\n")
		log.Warning(fmt.Sprintf("could not check git status (%s), proceeding", reason))
		return nil
	}
}
