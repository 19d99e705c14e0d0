package orchestrator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/robertgumeny/authkit/internal/detect"
	"github.com/robertgumeny/authkit/internal/emit"
	"github.com/robertgumeny/authkit/internal/instructions"
	"github.com/robertgumeny/authkit/internal/log"
	"github.com/robertgumeny/authkit/internal/prompt"
	"github.com/robertgumeny/authkit/internal/types"
)

var (
	// ErrUnsupportedFramework is returned when detection finds no supported framework.
	ErrUnsupportedFramework = errors.New("unsupported framework")

	// ErrNoProviders is returned when no provider was selected.
	ErrNoProviders = errors.New("no providers selected")

	// ErrDirtyWorkTree is returned when the project has uncommitted changes.
	ErrDirtyWorkTree = errors.New("uncommitted changes in your repository")
)

// Run executes one scaffolding run:
//  1. CheckWorkingTree, unless opts.SkipGitCheck.
//  2. detect.Detect; FrameworkNone stops the run before anything is written.
//  3. Provider selection: opts.Providers, or interactive prompts.
//  4. emit.Emit into the output directory.
//  5. instructions.Write to opts.Out.
//
// Errors are returned unlogged; the caller reports them once.
func Run(opts Options) (*Result, error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.OutputDir == "" {
		opts.OutputDir = emit.DefaultDir
	}

	if !opts.SkipGitCheck {
		if err := CheckWorkingTree(opts.ProjectRoot); err != nil {
			return nil, err
		}
	}

	fw := detect.Detect(opts.ProjectRoot)
	if !fw.IsSupported() {
		return nil, fmt.Errorf("%w. Currently supported: %s", ErrUnsupportedFramework, supportedList())
	}
	log.Success(fmt.Sprintf("detected framework: %s", fw))

	provs, err := selectProviders(opts)
	if err != nil {
		return nil, err
	}
	log.Info(fmt.Sprintf("selected providers: %s", joinProviders(provs)))

	outDir := opts.OutputDir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(opts.ProjectRoot, outDir)
	}

	log.Info("generating auth files")
	files, err := emit.Emit(outDir, fw, provs)
	if err != nil {
		return nil, fmt.Errorf("generate auth files: %w", err)
	}
	log.Success(fmt.Sprintf("generated %d files in %s", len(files), opts.OutputDir))

	if err := instructions.Write(opts.Out, fw, provs, opts.OutputDir); err != nil {
		return nil, fmt.Errorf("write instructions: %w", err)
	}

	return &Result{Framework: fw, Providers: provs, OutputDir: outDir, Files: files}, nil
}

// selectProviders returns the pre-selected providers or asks for them.
// The prompter is closed on every path.
func selectProviders(opts Options) ([]types.Provider, error) {
	provs := opts.Providers
	if len(provs) == 0 {
		p := prompt.New(opts.In, opts.Out)
		defer p.Close()

		var err error
		provs, err = p.SelectProviders()
		if err != nil {
			return nil, fmt.Errorf("select providers: %w", err)
		}
	}
	if len(provs) == 0 {
		return nil, ErrNoProviders
	}
	return provs, nil
}

func supportedList() string {
	names := make([]string, len(types.SupportedFrameworks))
	for i, fw := range types.SupportedFrameworks {
		names[i] = string(fw)
	}
	return strings.Join(names, ", ")
}

func joinProviders(provs []types.Provider) string {
	names := make([]string, len(provs))
	for i, p := range provs {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
