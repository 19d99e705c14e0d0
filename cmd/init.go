package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/robertgumeny/authkit/internal/config"
	"github.com/robertgumeny/authkit/internal/log"
	"github.com/robertgumeny/authkit/internal/orchestrator"
)

var initFlags settingsFlags

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate OAuth route and callback handlers",
	Long: `Detect the project's framework (Next.js or Payload CMS), ask which OAuth
providers to enable, and write one route handler and one callback handler per
provider plus auth-config.ts into the output directory (default: auth/).

Existing files with the same names are overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	bindSettingsFlags(initCmd, &initFlags)
	initCmd.Flags().BoolVar(&initFlags.skipGitCheck, "skip-git-check", false, "generate even if the working tree has uncommitted changes")
}

func runInit(cmd *cobra.Command, args []string) error {
	root, err := projectRoot()
	if err != nil {
		return err
	}
	cfg, err := loadSettings(cmd, root, &initFlags)
	if err != nil {
		return err
	}
	_, err = initProject(root, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	return err
}

// initProject is the testable core of the init command.
func initProject(root string, cfg *config.Config, in io.Reader, out io.Writer) (*orchestrator.Result, error) {
	provs, err := configuredProviders(cfg)
	if err != nil {
		return nil, err
	}

	log.Section("authkit: framework authentication setup")
	return orchestrator.Run(orchestrator.Options{
		ProjectRoot:  root,
		OutputDir:    cfg.OutputDir,
		SkipGitCheck: cfg.SkipGitCheck,
		Providers:    provs,
		In:           in,
		Out:          out,
	})
}
