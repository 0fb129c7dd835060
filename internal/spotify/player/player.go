package player

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zmb3/spotify/v2"

	"github.com/tessro/spotify-cli/internal/core"
	apperrors "github.com/tessro/spotify-cli/internal/errors"
	"github.com/tessro/spotify-cli/internal/spotify/client"
)

const (
	maxPageLimit       = 50
	defaultSearchLimit = 10
	defaultRecentLimit = 20
	playlistPageSize   = 50
	trackPageSize      = 100
)

// Caps on paging so one fetch stays bounded.
var (
	maxPlaylists      = 500
	maxPlaylistTracks = 1000
)

// Player implements core.Player against the Spotify Web API.
type Player struct {
	client *spotify.Client
	market string
	log    logrus.FieldLogger
}

// Option configures a Player.
type Option func(*Player)

// WithMarket restricts search results to an ISO 3166-1 country code.
func WithMarket(market string) Option {
	return func(p *Player) { p.market = market }
}

// WithLogger sets the logger used for absorbed fetch failures.
func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Player) { p.log = l }
}

// New creates a new Spotify player.
func New(c *spotify.Client, opts ...Option) *Player {
	p := &Player{client: c, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// fetchErr logs and classifies a read-path failure.
func (p *Player) fetchErr(op string, err error) error {
	p.log.WithError(err).WithField("op", op).Debug("Fetch failed")
	return apperrors.Fetch(op, tagStatus(err))
}

// commandErr classifies a write-path failure. A 404 from the player
// endpoints means there was no device to act on.
func commandErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if client.IsNoActiveDevice(err) {
		return apperrors.Command(op, fmt.Errorf("%w: %w", apperrors.ErrNoActiveDevice, err))
	}
	return apperrors.Command(op, tagStatus(err))
}

// tagStatus attaches the sentinel matching a Web API status so callers can
// test for it with errors.Is.
func tagStatus(err error) error {
	var sentinel error
	switch {
	case client.IsRestricted(err):
		sentinel = apperrors.ErrPremiumRequired
	case client.IsRateLimited(err):
		sentinel = apperrors.ErrRateLimited
	case client.IsUnauthorized(err):
		sentinel = apperrors.ErrNotAuthenticated
	default:
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// CurrentTrack returns the track on the active device, or nil when idle.
func (p *Player) CurrentTrack(ctx context.Context) (*core.Track, error) {
	cp, err := p.client.PlayerCurrentlyPlaying(ctx)
	if err != nil {
		return nil, p.fetchErr("current track", err)
	}
	if cp == nil || cp.Item == nil {
		return nil, nil
	}
	return currentTrack(cp.Item, int(cp.Progress), cp.Playing), nil
}

// PlaybackState returns the full player state. Track is nil when nothing plays.
func (p *Player) PlaybackState(ctx context.Context) (*core.PlaybackState, error) {
	ps, err := p.client.PlayerState(ctx)
	if err != nil {
		return nil, p.fetchErr("playback state", err)
	}
	return convertState(ps), nil
}

// Devices returns the user's available playback devices.
func (p *Player) Devices(ctx context.Context) ([]core.Device, error) {
	devices, err := p.client.PlayerDevices(ctx)
	if err != nil {
		return nil, p.fetchErr("devices", err)
	}

	result := make([]core.Device, 0, len(devices))
	for _, d := range devices {
		result = append(result, convertDevice(d))
	}
	return result, nil
}

// Playlists returns the current user's playlists in library order.
func (p *Player) Playlists(ctx context.Context) ([]core.Playlist, error) {
	page, err := p.client.CurrentUsersPlaylists(ctx, spotify.Limit(playlistPageSize))
	if err != nil {
		return nil, p.fetchErr("playlists", err)
	}

	var result []core.Playlist
	for {
		for _, pl := range page.Playlists {
			if pl.ID == "" {
				continue
			}
			result = append(result, convertPlaylist(pl))
		}
		if len(result) >= maxPlaylists {
			break
		}
		err := p.client.NextPage(ctx, page)
		if errors.Is(err, spotify.ErrNoMorePages) {
			break
		}
		if err != nil {
			return nil, p.fetchErr("playlists", err)
		}
	}
	if len(result) > maxPlaylists {
		result = result[:maxPlaylists]
	}
	return result, nil
}

// PlaylistTracks returns a playlist's tracks in playlist order. Episodes and
// unavailable items are skipped.
func (p *Player) PlaylistTracks(ctx context.Context, playlistID string) ([]core.Track, error) {
	page, err := p.client.GetPlaylistItems(ctx, spotify.ID(playlistID), spotify.Limit(trackPageSize))
	if err != nil {
		return nil, p.fetchErr("playlist tracks", err)
	}

	var result []core.Track
	for {
		for _, item := range page.Items {
			if item.Track.Track == nil {
				continue
			}
			result = append(result, *convertTrack(item.Track.Track))
		}
		if len(result) >= maxPlaylistTracks {
			break
		}
		err := p.client.NextPage(ctx, page)
		if errors.Is(err, spotify.ErrNoMorePages) {
			break
		}
		if err != nil {
			return nil, p.fetchErr("playlist tracks", err)
		}
	}
	if len(result) > maxPlaylistTracks {
		result = result[:maxPlaylistTracks]
	}
	return result, nil
}

// Search queries the requested categories. An empty query is rejected
// without a remote call; categories not requested come back empty.
func (p *Player) Search(ctx context.Context, query string, types core.SearchType, limit int) (*core.SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &core.SearchResults{}, apperrors.Validation("search", apperrors.ErrEmptyQuery)
	}
	if types == 0 {
		types = core.SearchTracks
	}

	opts := []spotify.RequestOption{spotify.Limit(clampLimit(limit, defaultSearchLimit))}
	if p.market != "" {
		opts = append(opts, spotify.Market(p.market))
	}

	res, err := p.client.Search(ctx, query, searchType(types), opts...)
	if err != nil {
		return &core.SearchResults{}, p.fetchErr("search", err)
	}
	return convertSearch(res, types), nil
}

// RecentlyPlayed returns recently played tracks, newest first.
func (p *Player) RecentlyPlayed(ctx context.Context, limit int) ([]core.HistoryEntry, error) {
	items, err := p.client.PlayerRecentlyPlayedOpt(ctx, &spotify.RecentlyPlayedOptions{Limit: spotify.Numeric(clampLimit(limit, defaultRecentLimit))})
	if err != nil {
		return nil, p.fetchErr("recently played", err)
	}

	entries := make([]core.HistoryEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, core.HistoryEntry{
			Track:    convertSimpleTrack(item.Track),
			PlayedAt: item.PlayedAt,
		})
	}
	return entries, nil
}

// Queue returns the track playing now and the tracks queued after it, in
// the order Spotify will play them. Current is nil when nothing plays.
func (p *Player) Queue(ctx context.Context) (*core.Queue, error) {
	q, err := p.client.GetQueue(ctx)
	if err != nil {
		return nil, p.fetchErr("queue", err)
	}

	result := &core.Queue{Items: make([]core.Track, 0, len(q.Items))}
	if q.CurrentlyPlaying.ID != "" {
		result.Current = convertTrack(&q.CurrentlyPlaying)
	}
	for i := range q.Items {
		if q.Items[i].ID == "" {
			// Episodes and local files carry no track ID.
			continue
		}
		result.Items = append(result.Items, *convertTrack(&q.Items[i]))
	}
	return result, nil
}

// Profile returns the current user's profile.
func (p *Player) Profile(ctx context.Context) (*core.User, error) {
	u, err := p.client.CurrentUser(ctx)
	if err != nil {
		return nil, p.fetchErr("profile", err)
	}
	name := u.DisplayName
	if name == "" {
		name = u.ID
	}
	return &core.User{
		ID:          u.ID,
		DisplayName: name,
		Email:       u.Email,
		Product:     u.Product,
	}, nil
}

// Play resumes playback, or plays uri when given. Track URIs play alone;
// album, artist and playlist URIs play as a context.
func (p *Player) Play(ctx context.Context, uri string) error {
	if uri == "" {
		return commandErr("play", p.client.Play(ctx))
	}

	opts := &spotify.PlayOptions{}
	if isTrackURI(uri) {
		opts.URIs = []spotify.URI{spotify.URI(uri)}
	} else {
		ctxURI := spotify.URI(uri)
		opts.PlaybackContext = &ctxURI
	}
	return commandErr("play", p.client.PlayOpt(ctx, opts))
}

// PlayContext plays a context starting at offsetURI, or at its start when empty.
func (p *Player) PlayContext(ctx context.Context, contextURI, offsetURI string) error {
	ctxURI := spotify.URI(contextURI)
	opts := &spotify.PlayOptions{PlaybackContext: &ctxURI}
	if offsetURI != "" {
		opts.PlaybackOffset = &spotify.PlaybackOffset{URI: spotify.URI(offsetURI)}
	}
	return commandErr("play", p.client.PlayOpt(ctx, opts))
}

// Pause pauses playback.
func (p *Player) Pause(ctx context.Context) error {
	return commandErr("pause", p.client.Pause(ctx))
}

// TogglePlayPause pauses when playing and resumes otherwise.
func (p *Player) TogglePlayPause(ctx context.Context) error {
	ps, err := p.client.PlayerState(ctx)
	if err != nil {
		return commandErr("toggle", err)
	}
	if ps != nil && ps.Playing {
		return p.Pause(ctx)
	}
	return p.Play(ctx, "")
}

// Next skips to the next track.
func (p *Player) Next(ctx context.Context) error {
	return commandErr("next", p.client.Next(ctx))
}

// Prev skips to the previous track.
func (p *Player) Prev(ctx context.Context) error {
	return commandErr("previous", p.client.Previous(ctx))
}

// Seek moves to position in the current track. Negative positions seek to 0.
func (p *Player) Seek(ctx context.Context, position time.Duration) error {
	if position < 0 {
		position = 0
	}
	return commandErr("seek", p.client.Seek(ctx, int(position.Milliseconds())))
}

// SetVolume sets the volume, clamped to [0, 100].
func (p *Player) SetVolume(ctx context.Context, percent int) error {
	return commandErr("volume", p.client.Volume(ctx, core.ClampVolume(percent)))
}

// SetShuffle turns shuffle on or off.
func (p *Player) SetShuffle(ctx context.Context, on bool) error {
	return commandErr("shuffle", p.client.Shuffle(ctx, on))
}

// SetRepeat sets the repeat mode.
func (p *Player) SetRepeat(ctx context.Context, mode core.RepeatMode) error {
	return commandErr("repeat", p.client.Repeat(ctx, string(core.ParseRepeatMode(string(mode)))))
}

// AddToQueue appends a track to the playback queue.
func (p *Player) AddToQueue(ctx context.Context, trackURI string) error {
	id, ok := trackID(trackURI)
	if !ok {
		return apperrors.Validation("queue", fmt.Errorf("not a track URI: %q", trackURI))
	}
	return commandErr("queue", p.client.QueueSong(ctx, spotify.ID(id)))
}

// TransferPlayback moves playback to deviceID, starting it when play is set.
func (p *Player) TransferPlayback(ctx context.Context, deviceID string, play bool) error {
	return commandErr("transfer", p.client.TransferPlayback(ctx, spotify.ID(deviceID), play))
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > maxPageLimit {
		return maxPageLimit
	}
	return limit
}

func isTrackURI(uri string) bool {
	_, ok := trackID(uri)
	return ok
}

// trackID extracts the ID from spotify:track:<id>.
func trackID(uri string) (string, bool) {
	id, ok := strings.CutPrefix(uri, "spotify:track:")
	return id, ok && id != ""
}

// Ensure Player implements core.Player
var _ core.Player = (*Player)(nil)
