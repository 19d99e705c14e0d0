package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/robertgumeny/authkit/internal/detect"
	"github.com/robertgumeny/authkit/internal/instructions"
	"github.com/robertgumeny/authkit/internal/providers"
	"github.com/robertgumeny/authkit/internal/types"
)

var authURLFlags struct {
	baseURL string
	state   string
}

var authURLCmd = &cobra.Command{
	Use:   "authurl <provider>",
	Short: "Print the authorization URL the generated route handler redirects to",
	Long: `Build the provider authorization URL from <PROVIDER>_CLIENT_ID and the
framework's base URL variable (NEXTAUTH_URL or PAYLOAD_PUBLIC_SERVER_URL), the
same way the generated route handler does. Useful for checking credentials
and redirect URIs before wiring the handlers in.`,
	Args: cobra.ExactArgs(1),
	RunE: runAuthURL,
}

func init() {
	authURLCmd.Flags().StringVar(&authURLFlags.baseURL, "base-url", "", "base URL (default: framework env var, then "+instructions.DefaultBaseURL+")")
	authURLCmd.Flags().StringVar(&authURLFlags.state, "state", "state", "state parameter to include")
}

func runAuthURL(cmd *cobra.Command, args []string) error {
	root, err := projectRoot()
	if err != nil {
		return err
	}
	p, err := types.ParseProvider(args[0])
	if err != nil {
		return err
	}
	return printAuthURL(cmd.OutOrStdout(), p, detect.Detect(root), authURLFlags.baseURL, authURLFlags.state)
}

// printAuthURL resolves credentials from the environment and prints the URL.
func printAuthURL(out io.Writer, p types.Provider, fw types.Framework, baseURL, state string) error {
	clientID := os.Getenv(p.ClientIDEnv())
	if clientID == "" {
		return fmt.Errorf("%s is not set", p.ClientIDEnv())
	}
	if baseURL == "" && fw.BaseURLEnv() != "" {
		baseURL = os.Getenv(fw.BaseURLEnv())
	}
	if baseURL == "" {
		baseURL = instructions.DefaultBaseURL
	}

	spec := providers.MustLookup(p)
	cfg := spec.OAuth2Config(clientID, os.Getenv(p.ClientSecretEnv()), baseURL)
	fmt.Fprintln(out, spec.AuthCodeURL(cfg, state))
	return nil
}
