package auth

import (
	"net/url"
	"strings"
	"testing"
)

func TestAuthCodeURL(t *testing.T) {
	pkce := &PKCE{
		Verifier: "test_verifier_with_enough_entropy_for_the_flow_0123456789",
		State:    "test_state",
	}

	cfg := NewConfig("test_client_id", "http://127.0.0.1:8888/callback")
	authURL := cfg.AuthCodeURL(pkce)

	u, err := url.Parse(authURL)
	if err != nil {
		t.Fatalf("AuthCodeURL() produced invalid URL: %v", err)
	}

	if u.Scheme != "https" || u.Host != "accounts.spotify.com" || u.Path != "/authorize" {
		t.Errorf("AuthCodeURL() base URL = %s://%s%s, want https://accounts.spotify.com/authorize",
			u.Scheme, u.Host, u.Path)
	}

	q := u.Query()

	tests := []struct {
		param string
		want  string
	}{
		{"client_id", "test_client_id"},
		{"response_type", "code"},
		{"redirect_uri", "http://127.0.0.1:8888/callback"},
		{"code_challenge_method", "S256"},
		{"code_challenge", pkce.Challenge()},
		{"state", "test_state"},
	}

	for _, tt := range tests {
		if got := q.Get(tt.param); got != tt.want {
			t.Errorf("AuthCodeURL() %s = %q, want %q", tt.param, got, tt.want)
		}
	}

	scopes := strings.Fields(q.Get("scope"))
	if len(scopes) != len(DefaultScopes) {
		t.Errorf("scope count = %d, want %d", len(scopes), len(DefaultScopes))
	}
	for _, want := range []string{"user-read-playback-state", "user-modify-playback-state", "playlist-read-private"} {
		found := false
		for _, s := range scopes {
			if s == want {
				found = true
			}
		}
		if !found {
			t.Errorf("scope %q missing from %v", want, scopes)
		}
	}
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig("id", "")
	if cfg.RedirectURI() != DefaultRedirectURI {
		t.Errorf("RedirectURI() = %q, want %q", cfg.RedirectURI(), DefaultRedirectURI)
	}
	if cfg.ClientID() != "id" {
		t.Errorf("ClientID() = %q, want %q", cfg.ClientID(), "id")
	}
}

func TestWithEndpoint(t *testing.T) {
	cfg := NewConfig("id", "").WithEndpoint("http://auth.test/authorize", "http://auth.test/token")
	u, err := url.Parse(cfg.AuthCodeURL(&PKCE{Verifier: "v", State: "s"}))
	if err != nil {
		t.Fatal(err)
	}
	if u.Host != "auth.test" {
		t.Errorf("host = %q, want auth.test", u.Host)
	}
}
