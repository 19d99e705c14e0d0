// Package emit writes the generated OAuth handler files and the shared
// configuration file into an output directory.
package emit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/robertgumeny/authkit/internal/log"
	"github.com/robertgumeny/authkit/internal/templates"
	"github.com/robertgumeny/authkit/internal/types"
)

// DefaultDir is the output directory, relative to the project root, used
// when none is configured.
const DefaultDir = "auth"

// FileName returns the generated file name for (p, kind),
// e.g. google-callback.ts or github-auth.ts.
func FileName(p types.Provider, kind types.FileKind, ext string) string {
	return fmt.Sprintf("%s-%s.%s", p, kind.Suffix(), ext)
}

// ManifestFor lists, in write order, the relative file names Emit produces
// for providers: a callback and a route file per provider, then the config
// file. Order and duplicates are preserved.
func ManifestFor(providers []types.Provider) []string {
	ext := types.SourceExtension
	files := make([]string, 0, 2*len(providers)+1)
	for _, p := range providers {
		for _, kind := range types.AllKinds {
			files = append(files, FileName(p, kind, ext))
		}
	}
	return append(files, templates.ConfigFileName)
}

// Emit creates outputDir if needed and writes every file in
// ManifestFor(providers), provider files first and the config file last.
// Existing files with the same names are overwritten; other files in
// outputDir are left alone. The first error aborts the run and files
// already written stay in place.
func Emit(outputDir string, fw types.Framework, providers []types.Provider) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", outputDir, err)
	}

	written := make([]string, 0, 2*len(providers)+1)
	for _, p := range providers {
		for _, kind := range types.AllKinds {
			content, err := templates.Render(fw, p, kind)
			if err != nil {
				return written, err
			}
			name := FileName(p, kind, fw.Extension())
			if err := writeFile(outputDir, name, content); err != nil {
				return written, err
			}
			written = append(written, name)
		}
	}

	if err := writeFile(outputDir, templates.ConfigFileName, templates.RenderConfig(providers, fw)); err != nil {
		return written, err
	}
	return append(written, templates.ConfigFileName), nil
}

func writeFile(dir, name, content string) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	log.Success(fmt.Sprintf("created %s", path))
	return nil
}
