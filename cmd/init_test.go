package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/robertgumeny/authkit/internal/config"
	"github.com/robertgumeny/authkit/internal/log"
	"github.com/robertgumeny/authkit/internal/orchestrator"
	"github.com/robertgumeny/authkit/internal/types"
)

// writeFile is a test helper that creates a file with given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// quietLog discards log output for the rest of the test.
func quietLog(t *testing.T) {
	t.Helper()
	old := log.Out
	log.Out = &bytes.Buffer{}
	t.Cleanup(func() { log.Out = old })
}

func nextProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{"dependencies":{"next":"14.0.0"}}`)
	return dir
}

func TestInitProject_GeneratesFiles(t *testing.T) {
	quietLog(t)
	dir := nextProject(t)
	cfg := &config.Config{OutputDir: "auth", SkipGitCheck: true, Providers: []string{"github"}}

	var out bytes.Buffer
	res, err := initProject(dir, cfg, strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Framework != types.FrameworkNextJS {
		t.Errorf("framework = %s, want Next.js", res.Framework)
	}
	for _, name := range []string{"github-callback.ts", "github-auth.ts", "auth-config.ts"} {
		if _, err := os.Stat(filepath.Join(dir, "auth", name)); err != nil {
			t.Errorf("file %s not created: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "auth", "google-auth.ts")); !os.IsNotExist(err) {
		t.Errorf("google-auth.ts should not exist, stat err = %v", err)
	}
	if !strings.Contains(out.String(), "GITHUB_CLIENT_ID") {
		t.Errorf("instructions missing GITHUB_CLIENT_ID:\n%s", out.String())
	}
}

func TestInitProject_PromptsWhenNoProvidersConfigured(t *testing.T) {
	quietLog(t)
	dir := nextProject(t)
	cfg := &config.Config{OutputDir: "generated", SkipGitCheck: true}

	res, err := initProject(dir, cfg, strings.NewReader("y\nn\n"), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Providers) != 1 || res.Providers[0] != types.ProviderGoogle {
		t.Errorf("providers = %v, want [google]", res.Providers)
	}
	if _, err := os.Stat(filepath.Join(dir, "generated", "google-auth.ts")); err != nil {
		t.Errorf("google-auth.ts not created under output_dir: %v", err)
	}
}

func TestInitProject_InvalidProvider(t *testing.T) {
	quietLog(t)
	dir := nextProject(t)
	cfg := &config.Config{OutputDir: "auth", SkipGitCheck: true, Providers: []string{"facebook"}}

	if _, err := initProject(dir, cfg, strings.NewReader(""), &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if _, err := os.Stat(filepath.Join(dir, "auth")); !os.IsNotExist(err) {
		t.Errorf("auth/ should not exist, stat err = %v", err)
	}
}

func TestInitProject_UnsupportedFramework(t *testing.T) {
	quietLog(t)
	dir := t.TempDir()
	cfg := &config.Config{OutputDir: "auth", SkipGitCheck: true, Providers: []string{"google"}}

	_, err := initProject(dir, cfg, strings.NewReader(""), &bytes.Buffer{})
	if !errors.Is(err, orchestrator.ErrUnsupportedFramework) {
		t.Fatalf("expected ErrUnsupportedFramework, got %v", err)
	}
}

// newSettingsCmd builds a throwaway command carrying the init flags so
// loadSettings can be exercised without touching package globals.
func newSettingsCmd(f *settingsFlags) *cobra.Command {
	c := &cobra.Command{Use: "test"}
	bindSettingsFlags(c, f)
	c.Flags().BoolVar(&f.skipGitCheck, "skip-git-check", false, "")
	return c
}

func TestLoadSettings_FlagsOverrideConfigOnlyWhenChanged(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.FileName), "output_dir: src/auth\nproviders: [google]\n")

	var f settingsFlags
	c := newSettingsCmd(&f)
	if err := c.ParseFlags([]string{"--providers=github,google"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadSettings(c, dir, &f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutputDir != "src/auth" {
		t.Errorf("OutputDir = %q, want src/auth (flag not changed)", cfg.OutputDir)
	}
	if cfg.SkipGitCheck {
		t.Error("SkipGitCheck = true, want false (flag not changed)")
	}
	if len(cfg.Providers) != 2 || cfg.Providers[0] != "github" || cfg.Providers[1] != "google" {
		t.Errorf("Providers = %v, want [github google]", cfg.Providers)
	}
}

func TestLoadSettings_OutputDirAndSkipGitCheckFlags(t *testing.T) {
	dir := t.TempDir()

	var f settingsFlags
	c := newSettingsCmd(&f)
	if err := c.ParseFlags([]string{"--output-dir=lib/oauth", "--skip-git-check"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadSettings(c, dir, &f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutputDir != "lib/oauth" {
		t.Errorf("OutputDir = %q, want lib/oauth", cfg.OutputDir)
	}
	if !cfg.SkipGitCheck {
		t.Error("SkipGitCheck = false, want true")
	}
}

func TestLoadSettings_EmptyOutputDirFlag(t *testing.T) {
	var f settingsFlags
	c := newSettingsCmd(&f)
	if err := c.ParseFlags([]string{"--output-dir="}); err != nil {
		t.Fatal(err)
	}
	if _, err := loadSettings(c, t.TempDir(), &f); err == nil {
		t.Fatal("expected error for empty output dir")
	}
}
