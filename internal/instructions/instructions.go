// Package instructions prints the follow-up steps shown after generation:
// environment variables, provider console setup, framework wiring, and the
// routes the generated handlers expect.
package instructions

import (
	"fmt"
	"io"
	"strings"

	"github.com/robertgumeny/authkit/internal/providers"
	"github.com/robertgumeny/authkit/internal/types"
)

// DefaultBaseURL is the development base URL suggested for the framework's
// base-URL variable.
const DefaultBaseURL = "http://localhost:3000"

// Write prints setup instructions for fw and providers to w.
// outputDir is the directory the files were written to, as shown to the user.
func Write(w io.Writer, fw types.Framework, provs []types.Provider, outputDir string) error {
	var b strings.Builder

	b.WriteString("Setup complete.\n\n")
	fmt.Fprintf(&b, "Files created in %s/\n\n", outputDir)
	b.WriteString("Next steps:\n\n")

	writeEnv(&b, fw, provs)
	writeConsoleSetup(&b, provs)
	writeFrameworkIntegration(&b, fw, provs)
	writeRoutes(&b, provs)
	writeReminders(&b)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeEnv(b *strings.Builder, fw types.Framework, provs []types.Provider) {
	b.WriteString("1. Environment variables\n")
	b.WriteString("   Add these to your .env file:\n\n")
	for _, p := range provs {
		spec := providers.MustLookup(p)
		fmt.Fprintf(b, "   # %s OAuth\n", spec.DisplayName)
		fmt.Fprintf(b, "   %s=your_%s_client_id\n", p.ClientIDEnv(), p)
		fmt.Fprintf(b, "   %s=your_%s_client_secret\n\n", p.ClientSecretEnv(), p)
	}
	if env := fw.BaseURLEnv(); env != "" {
		fmt.Fprintf(b, "   %s=%s\n\n", env, DefaultBaseURL)
	}
}

func writeConsoleSetup(b *strings.Builder, provs []types.Provider) {
	b.WriteString("2. OAuth provider configuration\n\n")
	for _, p := range provs {
		spec := providers.MustLookup(p)
		fmt.Fprintf(b, "   %s:\n", spec.DisplayName)
		fmt.Fprintf(b, "   - Go to: %s\n", spec.ConsoleURL)
		fmt.Fprintf(b, "   - Create OAuth credentials for your application\n")
		fmt.Fprintf(b, "   - Add the authorized redirect URI:\n")
		fmt.Fprintf(b, "     %s%s\n\n", DefaultBaseURL, providers.CallbackPath(p))
	}
}

func writeFrameworkIntegration(b *strings.Builder, fw types.Framework, provs []types.Provider) {
	switch fw {
	case types.FrameworkNextJS:
		b.WriteString("3. Next.js integration\n")
		b.WriteString("   - Move the generated handlers into your app/ directory as route handlers:\n")
		for _, p := range provs {
			fmt.Fprintf(b, "     * app%s/route.ts        (from %s-auth.ts)\n", providers.InitiatePath(p), p)
			fmt.Fprintf(b, "     * app%s/route.ts  (from %s-callback.ts)\n", providers.CallbackPath(p), p)
		}
	case types.FrameworkPayload:
		b.WriteString("3. Payload CMS integration\n")
		b.WriteString("   - Register the generated handlers as endpoints in your Payload server configuration\n")
		b.WriteString("   - Update your users collection to store OAuth identities\n")
	}
	b.WriteString("\n")
}

func writeRoutes(b *strings.Builder, provs []types.Provider) {
	b.WriteString("Endpoints:\n")
	for _, p := range provs {
		fmt.Fprintf(b, "   %s: %s\n", providers.MustLookup(p).DisplayName, providers.InitiatePath(p))
	}
	b.WriteString("\nCallback URLs:\n")
	for _, p := range provs {
		fmt.Fprintf(b, "   %s: %s\n", providers.MustLookup(p).DisplayName, providers.CallbackPath(p))
	}
	b.WriteString("\n")
}

func writeReminders(b *strings.Builder) {
	b.WriteString("Remember to:\n")
	for _, r := range []string{
		"Install TypeScript type definitions: @types/node",
		"Test your OAuth flows in development",
		"Update callback URLs for production deployment",
		"Implement session management after the user profile is fetched",
		"Validate the state parameter and add error handling",
	} {
		fmt.Fprintf(b, "   - %s\n", r)
	}
}
