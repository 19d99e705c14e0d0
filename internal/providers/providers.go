// Package providers holds static metadata for each supported OAuth provider:
// endpoints, scopes, and the developer console where credentials are created.
package providers

import (
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/robertgumeny/authkit/internal/types"
)

// Spec describes one OAuth provider.
type Spec struct {
	Provider    types.Provider
	DisplayName string
	Endpoint    oauth2.Endpoint
	UserInfoURL string
	Scopes      []string
	ConsoleURL  string
	// AuthParams are extra query parameters the route handler appends to
	// the authorization URL, in order.
	AuthParams [][2]string
}

var registry = map[types.Provider]Spec{
	types.ProviderGoogle: {
		Provider:    types.ProviderGoogle,
		DisplayName: "Google",
		Endpoint:    endpoints.Google,
		UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		Scopes:      []string{"openid", "profile", "email"},
		ConsoleURL:  "https://console.developers.google.com/",
		AuthParams: [][2]string{
			{"response_type", "code"},
			{"access_type", "offline"},
			{"prompt", "consent"},
		},
	},
	types.ProviderGitHub: {
		Provider:    types.ProviderGitHub,
		DisplayName: "GitHub",
		Endpoint:    endpoints.GitHub,
		UserInfoURL: "https://api.github.com/user",
		Scopes:      []string{"user:email"},
		ConsoleURL:  "https://github.com/settings/developers",
	},
}

// Lookup returns the Spec for p.
func Lookup(p types.Provider) (Spec, error) {
	s, ok := registry[p]
	if !ok {
		return Spec{}, fmt.Errorf("no provider metadata for %q", p)
	}
	return s, nil
}

// MustLookup is Lookup for providers already validated by types.ParseProvider.
func MustLookup(p types.Provider) Spec {
	s, err := Lookup(p)
	if err != nil {
		panic(err)
	}
	return s
}

// CallbackPath returns the route path the provider redirects back to.
func CallbackPath(p types.Provider) string {
	return "/auth/" + string(p) + "/callback"
}

// InitiatePath returns the route path that starts the login flow.
func InitiatePath(p types.Provider) string {
	return "/auth/" + string(p)
}

// Scope returns the scopes joined the way the generated route sends them.
func (s Spec) Scope() string {
	return strings.Join(s.Scopes, " ")
}

// OAuth2Config builds the client configuration the generated handlers
// describe, with the redirect URL rooted at baseURL.
func (s Spec) OAuth2Config(clientID, clientSecret, baseURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  strings.TrimRight(baseURL, "/") + CallbackPath(s.Provider),
		Scopes:       s.Scopes,
		Endpoint:     s.Endpoint,
	}
}

// AuthCodeURL returns the authorization URL the generated route handler
// redirects to, including the provider's extra parameters.
func (s Spec) AuthCodeURL(cfg *oauth2.Config, state string) string {
	opts := make([]oauth2.AuthCodeOption, 0, len(s.AuthParams))
	for _, kv := range s.AuthParams {
		if kv[0] == "response_type" {
			// AuthCodeURL always sets response_type=code.
			continue
		}
		opts = append(opts, oauth2.SetAuthURLParam(kv[0], kv[1]))
	}
	return cfg.AuthCodeURL(state, opts...)
}
