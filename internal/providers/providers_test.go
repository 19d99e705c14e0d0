package providers_test

import (
	"net/url"
	"testing"

	"github.com/robertgumeny/authkit/internal/providers"
	"github.com/robertgumeny/authkit/internal/types"
)

func TestLookup_AllProvidersRegistered(t *testing.T) {
	for _, p := range types.AllProviders {
		spec, err := providers.Lookup(p)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", p, err)
		}
		if spec.Provider != p {
			t.Errorf("Lookup(%q).Provider = %q", p, spec.Provider)
		}
		if spec.Endpoint.AuthURL == "" || spec.Endpoint.TokenURL == "" || spec.UserInfoURL == "" {
			t.Errorf("Lookup(%q) has empty endpoint fields: %+v", p, spec)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, err := providers.Lookup(types.Provider("facebook")); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestPaths(t *testing.T) {
	if got := providers.InitiatePath(types.ProviderGitHub); got != "/auth/github" {
		t.Errorf("InitiatePath = %q", got)
	}
	if got := providers.CallbackPath(types.ProviderGoogle); got != "/auth/google/callback" {
		t.Errorf("CallbackPath = %q", got)
	}
}

func TestAuthCodeURL(t *testing.T) {
	tests := []struct {
		provider  types.Provider
		wantHost  string
		wantScope string
		extra     map[string]string
	}{
		{
			provider:  types.ProviderGoogle,
			wantHost:  "accounts.google.com",
			wantScope: "openid profile email",
			extra:     map[string]string{"access_type": "offline", "prompt": "consent"},
		},
		{
			provider:  types.ProviderGitHub,
			wantHost:  "github.com",
			wantScope: "user:email",
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			spec := providers.MustLookup(tt.provider)
			cfg := spec.OAuth2Config("client-123", "secret", "http://localhost:3000/")
			raw := spec.AuthCodeURL(cfg, "xyz")

			u, err := url.Parse(raw)
			if err != nil {
				t.Fatalf("parse %q: %v", raw, err)
			}
			if u.Host != tt.wantHost {
				t.Errorf("host = %q, want %q", u.Host, tt.wantHost)
			}
			q := u.Query()
			want := map[string]string{
				"client_id":     "client-123",
				"redirect_uri":  "http://localhost:3000/auth/" + string(tt.provider) + "/callback",
				"response_type": "code",
				"scope":         tt.wantScope,
				"state":         "xyz",
			}
			for k, v := range tt.extra {
				want[k] = v
			}
			for k, v := range want {
				if got := q.Get(k); got != v {
					t.Errorf("query %s = %q, want %q", k, got, v)
				}
			}
		})
	}
}
