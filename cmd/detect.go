package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robertgumeny/authkit/internal/detect"
	"github.com/robertgumeny/authkit/internal/orchestrator"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Print the detected framework and why it was chosen",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}
		res := detect.Report(root)
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", res.Framework, res.Reason)
		if !res.Framework.IsSupported() {
			return orchestrator.ErrUnsupportedFramework
		}
		return nil
	},
}
