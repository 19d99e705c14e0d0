package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/robertgumeny/authkit/internal/config"
	"github.com/robertgumeny/authkit/internal/log"
	"github.com/robertgumeny/authkit/internal/types"
)

var version = "v0.1.0"

// rootFlags holds flags shared by every subcommand.
var rootFlags struct {
	dir string
}

var rootCmd = &cobra.Command{
	Use:           "authkit",
	Short:         "authkit scaffolds OAuth login handlers for Next.js and Payload CMS projects",
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command. Every error ends up here and is reported
// as a single line before exiting with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		log.OsExit(1)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&rootFlags.dir, "dir", "", "project root (default: current directory)")
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(authURLCmd)
}

// projectRoot resolves --dir, defaulting to the working directory.
func projectRoot() (string, error) {
	if rootFlags.dir != "" {
		abs, err := filepath.Abs(rootFlags.dir)
		if err != nil {
			return "", fmt.Errorf("resolve --dir: %w", err)
		}
		return abs, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return dir, nil
}

// settingsFlags holds the flags that override authkit.yaml.
// Only flags explicitly changed by the user are applied.
type settingsFlags struct {
	outputDir    string
	skipGitCheck bool
	providers    []string
}

func bindSettingsFlags(cmd *cobra.Command, f *settingsFlags) {
	cmd.Flags().StringVar(&f.outputDir, "output-dir", "", "override output_dir from authkit.yaml")
	cmd.Flags().StringSliceVar(&f.providers, "providers", nil, "comma-separated providers to generate (google,github); skips prompts")
}

// loadSettings loads authkit.yaml from root and applies changed flags.
func loadSettings(cmd *cobra.Command, root string, f *settingsFlags) (*config.Config, error) {
	cfg, err := config.LoadConfig(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = f.outputDir
	}
	if cmd.Flags().Changed("skip-git-check") {
		cfg.SkipGitCheck = f.skipGitCheck
	}
	if cmd.Flags().Changed("providers") {
		cfg.Providers = f.providers
	}
	if cfg.OutputDir == "" {
		return nil, fmt.Errorf("output directory must not be empty")
	}
	return cfg, nil
}

// configuredProviders parses cfg.Providers, keeping the configured order.
func configuredProviders(cfg *config.Config) ([]types.Provider, error) {
	provs, err := types.ParseProviders(cfg.Providers)
	if err != nil {
		return nil, fmt.Errorf("providers: %w", err)
	}
	return provs, nil
}
