package core

import (
	"context"
	"time"
)

// Player is the remote playback gateway.
//
// Read methods return an absence value (nil or empty) alongside a fetch
// error when the remote call fails, so callers can render "no data" without
// special-casing failures. Write methods return the remote error unchanged.
type Player interface {
	// State queries
	CurrentTrack(ctx context.Context) (*Track, error)
	PlaybackState(ctx context.Context) (*PlaybackState, error)
	Devices(ctx context.Context) ([]Device, error)
	Playlists(ctx context.Context) ([]Playlist, error)
	PlaylistTracks(ctx context.Context, playlistID string) ([]Track, error)
	Search(ctx context.Context, query string, types SearchType, limit int) (*SearchResults, error)
	RecentlyPlayed(ctx context.Context, limit int) ([]HistoryEntry, error)
	Profile(ctx context.Context) (*User, error)
	Queue(ctx context.Context) (*Queue, error)

	// Playback control
	Play(ctx context.Context, uri string) error
	PlayContext(ctx context.Context, contextURI, offsetURI string) error
	Pause(ctx context.Context) error
	TogglePlayPause(ctx context.Context) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Seek(ctx context.Context, position time.Duration) error

	// Settings
	SetVolume(ctx context.Context, percent int) error
	SetShuffle(ctx context.Context, on bool) error
	SetRepeat(ctx context.Context, mode RepeatMode) error

	// Queue and devices
	AddToQueue(ctx context.Context, trackURI string) error
	TransferPlayback(ctx context.Context, deviceID string, play bool) error
}

// ClampVolume bounds v to [0, 100].
func ClampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
