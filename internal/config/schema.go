package config

// Config is the root configuration structure.
type Config struct {
	Spotify SpotifyConfig `toml:"spotify"`
	Storage StorageConfig `toml:"storage"`
	TUI     TUIConfig     `toml:"tui"`
	Search  SearchConfig  `toml:"search"`
	Log     LogConfig     `toml:"log"`
}

// SpotifyConfig holds Spotify API settings.
type SpotifyConfig struct {
	ClientID     string `toml:"client_id"`
	RedirectURI  string `toml:"redirect_uri"`
	CallbackPort int    `toml:"callback_port"`
	Market       string `toml:"market"`
}

// StorageConfig locates the encrypted credential record.
type StorageConfig struct {
	CredentialsFile string `toml:"credentials_file"`
	KeyFile         string `toml:"key_file"`
}

// TUIConfig holds terminal UI settings. Intervals are in milliseconds.
type TUIConfig struct {
	Theme             string `toml:"theme"`
	HomeRefresh       int    `toml:"home_refresh"`
	NowPlayingRefresh int    `toml:"now_playing_refresh"`
	ProgressWidth     int    `toml:"progress_width"`
	VolumeStep        int    `toml:"volume_step"`
}

// SearchConfig holds search settings.
type SearchConfig struct {
	Limit int `toml:"limit"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}
