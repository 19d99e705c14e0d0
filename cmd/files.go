package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/robertgumeny/authkit/internal/config"
	"github.com/robertgumeny/authkit/internal/detect"
	"github.com/robertgumeny/authkit/internal/emit"
	"github.com/robertgumeny/authkit/internal/types"
)

var filesFlags settingsFlags

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the files init would write, without writing them",
	Long: `Print the paths init would generate for the configured providers.
When no providers are configured or passed with --providers, all supported
providers are listed.`,
	Args: cobra.NoArgs,
	RunE: runFiles,
}

func init() {
	bindSettingsFlags(filesCmd, &filesFlags)
}

func runFiles(cmd *cobra.Command, args []string) error {
	root, err := projectRoot()
	if err != nil {
		return err
	}
	cfg, err := loadSettings(cmd, root, &filesFlags)
	if err != nil {
		return err
	}
	return listFiles(root, cfg, cmd.OutOrStdout())
}

// listFiles prints the detected framework and the would-be output paths.
func listFiles(root string, cfg *config.Config, out io.Writer) error {
	provs, err := configuredProviders(cfg)
	if err != nil {
		return err
	}
	if len(provs) == 0 {
		provs = types.AllProviders
	}

	fmt.Fprintf(out, "framework: %s\n", detect.Detect(root))
	for _, name := range emit.ManifestFor(provs) {
		fmt.Fprintln(out, filepath.Join(cfg.OutputDir, name))
	}
	return nil
}
