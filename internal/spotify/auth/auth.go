package auth

import (
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
)

// DefaultRedirectURI is the default callback URI for the local server.
const DefaultRedirectURI = "http://127.0.0.1:8888/callback"

// DefaultScopes are the Spotify scopes the client needs.
var DefaultScopes = []string{
	spotifyauth.ScopeUserReadPlaybackState,
	spotifyauth.ScopeUserModifyPlaybackState,
	spotifyauth.ScopeUserReadCurrentlyPlaying,
	spotifyauth.ScopePlaylistReadPrivate,
	spotifyauth.ScopeUserReadRecentlyPlayed,
	spotifyauth.ScopeUserReadPrivate,
	spotifyauth.ScopeUserReadEmail,
}

// Config holds the OAuth configuration for the PKCE authorization-code flow.
type Config struct {
	oauth oauth2.Config
}

// NewConfig creates a new OAuth configuration against the Spotify accounts service.
func NewConfig(clientID, redirectURI string) *Config {
	if redirectURI == "" {
		redirectURI = DefaultRedirectURI
	}
	return &Config{
		oauth: oauth2.Config{
			ClientID:    clientID,
			RedirectURL: redirectURI,
			Scopes:      DefaultScopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  spotifyauth.AuthURL,
				TokenURL: spotifyauth.TokenURL,
				// Public client: client_id travels in the form body.
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
	}
}

// WithEndpoint overrides the authorization and token URLs.
func (c *Config) WithEndpoint(authURL, tokenURL string) *Config {
	c.oauth.Endpoint.AuthURL = authURL
	c.oauth.Endpoint.TokenURL = tokenURL
	return c
}

// ClientID returns the configured client ID.
func (c *Config) ClientID() string {
	return c.oauth.ClientID
}

// RedirectURI returns the configured redirect URI.
func (c *Config) RedirectURI() string {
	return c.oauth.RedirectURL
}

// AuthCodeURL builds the authorization URL carrying the PKCE challenge and state.
func (c *Config) AuthCodeURL(pkce *PKCE) string {
	return c.oauth.AuthCodeURL(pkce.State,
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
		oauth2.SetAuthURLParam("code_challenge", pkce.Challenge()))
}
