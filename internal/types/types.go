// Package types defines the closed enumerations shared by the authkit
// pipeline: target frameworks, OAuth providers, and generated file kinds.
// String values match the names printed to the user and embedded in the
// generated configuration file.
package types

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Typed constants
// ---------------------------------------------------------------------------

// Framework identifies the web framework of the host project.
type Framework string

const (
	// FrameworkNone means no supported framework was detected.
	FrameworkNone    Framework = ""
	FrameworkNextJS  Framework = "Next.js"
	FrameworkPayload Framework = "Payload CMS"
)

// SupportedFrameworks lists every framework the catalog has templates for.
var SupportedFrameworks = []Framework{FrameworkNextJS, FrameworkPayload}

// IsSupported reports whether f is one of SupportedFrameworks.
func (f Framework) IsSupported() bool {
	return f == FrameworkNextJS || f == FrameworkPayload
}

// SourceExtension is the file extension of every generated file. Both
// supported frameworks are TypeScript projects.
const SourceExtension = "ts"

// Extension returns the source file extension used for generated files.
func (f Framework) Extension() string {
	return SourceExtension
}

// BaseURLEnv returns the environment variable the generated code reads to
// build redirect URIs. Unsupported frameworks return "".
func (f Framework) BaseURLEnv() string {
	switch f {
	case FrameworkNextJS:
		return "NEXTAUTH_URL"
	case FrameworkPayload:
		return "PAYLOAD_PUBLIC_SERVER_URL"
	default:
		return ""
	}
}

// String returns the display name, or "none" for FrameworkNone.
func (f Framework) String() string {
	if f == FrameworkNone {
		return "none"
	}
	return string(f)
}

// Provider identifies an OAuth identity provider.
type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderGitHub Provider = "github"
)

// AllProviders lists every supported provider in prompt order.
var AllProviders = []Provider{ProviderGoogle, ProviderGitHub}

// IsSupported reports whether p is one of AllProviders.
func (p Provider) IsSupported() bool {
	return p == ProviderGoogle || p == ProviderGitHub
}

// EnvPrefix returns the upper-cased prefix of the provider's credential
// variables, e.g. GOOGLE for GOOGLE_CLIENT_ID.
func (p Provider) EnvPrefix() string {
	return strings.ToUpper(string(p))
}

// ClientIDEnv returns the name of the client id environment variable.
func (p Provider) ClientIDEnv() string { return p.EnvPrefix() + "_CLIENT_ID" }

// ClientSecretEnv returns the name of the client secret environment variable.
func (p Provider) ClientSecretEnv() string { return p.EnvPrefix() + "_CLIENT_SECRET" }

// ParseProvider converts a user-supplied name into a Provider.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsSupported() {
		return "", fmt.Errorf("unknown provider %q: supported providers are %s", s, joinProviders(AllProviders))
	}
	return p, nil
}

// ParseProviders parses each name with ParseProvider, preserving order.
// Duplicate entries are rejected.
func ParseProviders(names []string) ([]Provider, error) {
	out := make([]Provider, 0, len(names))
	seen := make(map[Provider]bool, len(names))
	for _, name := range names {
		p, err := ParseProvider(name)
		if err != nil {
			return nil, err
		}
		if seen[p] {
			return nil, fmt.Errorf("provider %q listed more than once", p)
		}
		seen[p] = true
		out = append(out, p)
	}
	return out, nil
}

// FileKind distinguishes the two generated handler files per provider.
type FileKind string

const (
	KindCallback FileKind = "callback"
	KindRoute    FileKind = "route"
)

// AllKinds lists the file kinds in emission order.
var AllKinds = []FileKind{KindCallback, KindRoute}

// Suffix returns the file name suffix for the kind: "callback" or "auth".
func (k FileKind) Suffix() string {
	if k == KindRoute {
		return "auth"
	}
	return string(k)
}

func joinProviders(ps []Provider) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
