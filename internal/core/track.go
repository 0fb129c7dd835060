package core

import (
	"strings"
	"time"
)

// Track represents a playable track as last reported by Spotify.
type Track struct {
	ID       string         `json:"id"`
	URI      string         `json:"uri"`
	Name     string         `json:"name"`
	Artists  []string       `json:"artists"`
	Album    string         `json:"album"`
	AlbumArt *string        `json:"album_art,omitempty"`
	Duration time.Duration  `json:"duration"`
	Progress *time.Duration `json:"progress,omitempty"`
	Playing  bool           `json:"playing"`
}

// ArtistNames returns the artists joined for display.
func (t *Track) ArtistNames() string {
	if t == nil {
		return ""
	}
	return strings.Join(t.Artists, ", ")
}

// Position returns the playback position, or zero when unknown.
func (t *Track) Position() time.Duration {
	if t == nil || t.Progress == nil {
		return 0
	}
	return *t.Progress
}

// ClampProgress bounds p to [0, duration].
func ClampProgress(p, duration time.Duration) time.Duration {
	if p < 0 {
		return 0
	}
	if duration >= 0 && p > duration {
		return duration
	}
	return p
}
