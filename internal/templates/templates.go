// Package templates holds the embedded OAuth handler templates and the
// lookup table that selects one per (framework, provider, kind).
//
// Templates are complete source files compiled into the binary via
// //go:embed. They are emitted verbatim; nothing is interpolated except the
// shared configuration file produced by RenderConfig.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/robertgumeny/authkit/internal/types"
)

//go:embed catalog
var catalog embed.FS

// ErrUnsupportedTemplate is matched (via errors.Is) by every
// *UnsupportedTemplateError.
var ErrUnsupportedTemplate = errors.New("unsupported template")

// UnsupportedTemplateError reports a lookup outside the supported matrix.
type UnsupportedTemplateError struct {
	Framework types.Framework
	Provider  types.Provider
	Kind      types.FileKind
}

func (e *UnsupportedTemplateError) Error() string {
	return fmt.Sprintf("template not found for framework: %s, provider: %s, type: %s",
		e.Framework, e.Provider, e.Kind)
}

// Is lets errors.Is(err, ErrUnsupportedTemplate) succeed.
func (e *UnsupportedTemplateError) Is(target error) bool {
	return target == ErrUnsupportedTemplate
}

// Key identifies one template in the catalog.
type Key struct {
	Framework types.Framework
	Provider  types.Provider
	Kind      types.FileKind
}

// table maps every supported Key to its embedded file.
var table = map[Key]string{
	{types.FrameworkNextJS, types.ProviderGoogle, types.KindCallback}:  "catalog/nextjs/google-callback.ts",
	{types.FrameworkNextJS, types.ProviderGoogle, types.KindRoute}:     "catalog/nextjs/google-route.ts",
	{types.FrameworkNextJS, types.ProviderGitHub, types.KindCallback}:  "catalog/nextjs/github-callback.ts",
	{types.FrameworkNextJS, types.ProviderGitHub, types.KindRoute}:     "catalog/nextjs/github-route.ts",
	{types.FrameworkPayload, types.ProviderGoogle, types.KindCallback}: "catalog/payload/google-callback.ts",
	{types.FrameworkPayload, types.ProviderGoogle, types.KindRoute}:    "catalog/payload/google-route.ts",
	{types.FrameworkPayload, types.ProviderGitHub, types.KindCallback}: "catalog/payload/github-callback.ts",
	{types.FrameworkPayload, types.ProviderGitHub, types.KindRoute}:    "catalog/payload/github-route.ts",
}

// Keys returns the supported matrix in framework, provider, kind order.
func Keys() []Key {
	keys := make([]Key, 0, len(table))
	for _, fw := range types.SupportedFrameworks {
		for _, p := range types.AllProviders {
			for _, k := range types.AllKinds {
				keys = append(keys, Key{fw, p, k})
			}
		}
	}
	return keys
}

// Render returns the template for (fw, p, kind). Combinations outside the
// catalog return an *UnsupportedTemplateError.
func Render(fw types.Framework, p types.Provider, kind types.FileKind) (string, error) {
	path, ok := table[Key{fw, p, kind}]
	if !ok {
		return "", &UnsupportedTemplateError{Framework: fw, Provider: p, Kind: kind}
	}
	data, err := catalog.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", path, err)
	}
	return string(data), nil
}

// ConfigFileName is the name of the shared configuration file.
const ConfigFileName = "auth-config.ts"

// RenderConfig returns the shared configuration file. Providers are listed
// exactly as given: no sorting, no deduplication.
func RenderConfig(providers []types.Provider, fw types.Framework) string {
	quoted := make([]string, len(providers))
	for i, p := range providers {
		quoted[i] = "'" + string(p) + "'"
	}

	var envChain []string
	for _, f := range types.SupportedFrameworks {
		envChain = append(envChain, "process.env."+f.BaseURLEnv())
	}
	envChain = append(envChain, "'http://localhost:3000'")

	return fmt.Sprintf(`// Auth configuration
interface AuthConfig {
  providers: string[];
  framework: string;
  redirectUrl: string;
}

export const authConfig: AuthConfig = {
  providers: [%s],
  framework: '%s',
  redirectUrl: %s
};
`, strings.Join(quoted, ", "), string(fw), strings.Join(envChain, " || "))
}
