package config

import "fmt"

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Spotify: SpotifyConfig{
			RedirectURI:  "http://127.0.0.1:8888/callback",
			CallbackPort: 8888,
		},
		TUI: TUIConfig{
			Theme:             "auto",
			HomeRefresh:       5000,
			NowPlayingRefresh: 1000,
			ProgressWidth:     35,
			VolumeStep:        10,
		},
		Search: SearchConfig{
			Limit: 15,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Spotify. A bare callback_port moves the default redirect with it.
	if c.Spotify.RedirectURI == "" {
		if c.Spotify.CallbackPort != 0 {
			c.Spotify.RedirectURI = fmt.Sprintf("http://127.0.0.1:%d/callback", c.Spotify.CallbackPort)
		} else {
			c.Spotify.RedirectURI = d.Spotify.RedirectURI
		}
	}
	if c.Spotify.CallbackPort == 0 {
		c.Spotify.CallbackPort = d.Spotify.CallbackPort
	}

	// TUI
	if c.TUI.Theme == "" {
		c.TUI.Theme = d.TUI.Theme
	}
	if c.TUI.HomeRefresh == 0 {
		c.TUI.HomeRefresh = d.TUI.HomeRefresh
	}
	if c.TUI.NowPlayingRefresh == 0 {
		c.TUI.NowPlayingRefresh = d.TUI.NowPlayingRefresh
	}
	if c.TUI.ProgressWidth == 0 {
		c.TUI.ProgressWidth = d.TUI.ProgressWidth
	}
	if c.TUI.VolumeStep == 0 {
		c.TUI.VolumeStep = d.TUI.VolumeStep
	}

	// Search
	if c.Search.Limit == 0 {
		c.Search.Limit = d.Search.Limit
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
