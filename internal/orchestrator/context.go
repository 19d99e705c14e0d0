// Package orchestrator sequences a single authkit run: working-tree check,
// framework detection, provider selection, file emission, and the printed
// follow-up instructions.
package orchestrator

import (
	"io"

	"github.com/robertgumeny/authkit/internal/types"
)

// Options carries everything a run needs. It is built once by the cobra
// command from authkit.yaml plus flag overrides.
type Options struct {
	// Absolute path to the host project.
	ProjectRoot string

	// Output directory; relative paths are resolved against ProjectRoot.
	OutputDir string

	SkipGitCheck bool

	// Pre-selected providers. When empty the user is prompted.
	Providers []types.Provider

	// Prompt input and instruction output.
	In  io.Reader
	Out io.Writer
}

// Result describes a completed run.
type Result struct {
	Framework types.Framework
	Providers []types.Provider
	OutputDir string
	Files     []string
}
