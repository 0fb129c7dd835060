package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// AppName names the config and data directories.
const AppName = "spotify-cli"

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.spotify-cli.toml, $XDG_CONFIG_HOME/spotify-cli/config.toml, ~/.config/spotify-cli/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	path := FindConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ApplyDefaults()
	loadDotEnv()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	loadDotEnv()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// FindConfigFile returns the first existing config file path, or "".
func FindConfigFile() string {
	for _, p := range candidatePaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// DefaultPath returns the path `config init` writes to.
func DefaultPath() string {
	paths := candidatePaths()
	if len(paths) == 0 {
		return filepath.Join(".", AppName+".toml")
	}
	return paths[len(paths)-1]
}

func candidatePaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	paths := []string{
		filepath.Join(home, "."+AppName+".toml"),
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	return append(paths, filepath.Join(xdgConfig, AppName, "config.toml"))
}

// DotEnvPath is the optional env file read before environment overrides.
func DotEnvPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, ".env")
}

// loadDotEnv exports SPOTIFY_CLI_* values from DotEnvPath. Variables already
// set in the environment win.
func loadDotEnv() {
	path := DotEnvPath()
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Spotify
	if v := os.Getenv("SPOTIFY_CLI_CLIENT_ID"); v != "" {
		cfg.Spotify.ClientID = v
	}
	if v := os.Getenv("SPOTIFY_CLI_REDIRECT_URI"); v != "" {
		cfg.Spotify.RedirectURI = v
	}
	if v := os.Getenv("SPOTIFY_CLI_CALLBACK_PORT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Spotify.CallbackPort = i
		}
	}
	if v := os.Getenv("SPOTIFY_CLI_MARKET"); v != "" {
		cfg.Spotify.Market = v
	}

	// Storage
	if v := os.Getenv("SPOTIFY_CLI_CREDENTIALS_FILE"); v != "" {
		cfg.Storage.CredentialsFile = v
	}

	// TUI
	if v := os.Getenv("SPOTIFY_CLI_THEME"); v != "" {
		cfg.TUI.Theme = v
	}

	// Log
	if v := os.Getenv("SPOTIFY_CLI_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SPOTIFY_CLI_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
