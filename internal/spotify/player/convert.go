package player

import (
	"time"

	"github.com/zmb3/spotify/v2"

	"github.com/tessro/spotify-cli/internal/core"
)

const unknownArtist = "Unknown Artist"

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func artistNames(artists []spotify.SimpleArtist) []string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	if len(names) == 0 {
		names = append(names, unknownArtist)
	}
	return names
}

func firstImage(images []spotify.Image) *string {
	if len(images) == 0 || images[0].URL == "" {
		return nil
	}
	url := images[0].URL
	return &url
}

// convertTrack converts a Spotify track to a core track.
func convertTrack(t *spotify.FullTrack) *core.Track {
	if t == nil {
		return nil
	}
	return &core.Track{
		ID:       string(t.ID),
		URI:      string(t.URI),
		Name:     t.Name,
		Artists:  artistNames(t.Artists),
		Album:    t.Album.Name,
		AlbumArt: firstImage(t.Album.Images),
		Duration: ms(int(t.Duration)),
	}
}

func convertSimpleTrack(t spotify.SimpleTrack) core.Track {
	return core.Track{
		ID:       string(t.ID),
		URI:      string(t.URI),
		Name:     t.Name,
		Artists:  artistNames(t.Artists),
		Duration: ms(int(t.Duration)),
	}
}

// currentTrack attaches live progress, clamped to the track duration.
func currentTrack(t *spotify.FullTrack, progressMs int, playing bool) *core.Track {
	track := convertTrack(t)
	progress := core.ClampProgress(ms(progressMs), track.Duration)
	track.Progress = &progress
	track.Playing = playing
	return track
}

// convertDevice converts a Spotify device to a core device.
func convertDevice(d spotify.PlayerDevice) core.Device {
	return core.Device{
		ID:         string(d.ID),
		Name:       d.Name,
		Type:       core.DeviceType(d.Type),
		Active:     d.Active,
		Volume:     core.ClampVolume(int(d.Volume)),
		Restricted: d.Restricted,
	}
}

func convertState(ps *spotify.PlayerState) *core.PlaybackState {
	state := &core.PlaybackState{Repeat: core.RepeatOff}
	if ps == nil {
		return state
	}

	state.Playing = ps.Playing
	state.Shuffle = ps.ShuffleState
	state.Repeat = core.ParseRepeatMode(ps.RepeatState)

	if ps.Device.ID != "" || ps.Device.Name != "" {
		d := convertDevice(ps.Device)
		state.Device = &d
		state.Volume = d.Volume
	}
	if ps.Item != nil {
		state.Track = currentTrack(ps.Item, int(ps.Progress), ps.Playing)
	}
	return state
}

func convertPlaylist(pl spotify.SimplePlaylist) core.Playlist {
	owner := pl.Owner.DisplayName
	if owner == "" {
		owner = pl.Owner.ID
	}
	return core.Playlist{
		ID:          string(pl.ID),
		Name:        pl.Name,
		Description: pl.Description,
		TrackCount:  int(pl.Tracks.Total),
		Owner:       owner,
		URI:         string(pl.URI),
		Public:      pl.IsPublic,
	}
}

func convertAlbum(a spotify.SimpleAlbum) core.Album {
	return core.Album{
		ID:          string(a.ID),
		Name:        a.Name,
		Artists:     artistNames(a.Artists),
		URI:         string(a.URI),
		ReleaseDate: a.ReleaseDate,
		ImageURL:    firstImage(a.Images),
	}
}

func convertArtist(a spotify.FullArtist) core.Artist {
	return core.Artist{
		ID:        string(a.ID),
		Name:      a.Name,
		URI:       string(a.URI),
		Followers: int(a.Followers.Count),
		Genres:    a.Genres,
	}
}

func searchType(types core.SearchType) spotify.SearchType {
	var t spotify.SearchType
	if types.Has(core.SearchTracks) {
		t |= spotify.SearchTypeTrack
	}
	if types.Has(core.SearchAlbums) {
		t |= spotify.SearchTypeAlbum
	}
	if types.Has(core.SearchArtists) {
		t |= spotify.SearchTypeArtist
	}
	if types.Has(core.SearchPlaylists) {
		t |= spotify.SearchTypePlaylist
	}
	return t
}

// convertSearch keeps remote order and drops categories that were not requested.
func convertSearch(res *spotify.SearchResult, types core.SearchType) *core.SearchResults {
	out := &core.SearchResults{}
	if res == nil {
		return out
	}

	if types.Has(core.SearchTracks) && res.Tracks != nil {
		for i := range res.Tracks.Tracks {
			out.Tracks = append(out.Tracks, *convertTrack(&res.Tracks.Tracks[i]))
		}
	}
	if types.Has(core.SearchAlbums) && res.Albums != nil {
		for _, a := range res.Albums.Albums {
			if a.ID == "" {
				continue
			}
			out.Albums = append(out.Albums, convertAlbum(a))
		}
	}
	if types.Has(core.SearchArtists) && res.Artists != nil {
		for _, a := range res.Artists.Artists {
			if a.ID == "" {
				continue
			}
			out.Artists = append(out.Artists, convertArtist(a))
		}
	}
	if types.Has(core.SearchPlaylists) && res.Playlists != nil {
		for _, pl := range res.Playlists.Playlists {
			// Spotify returns null entries for unavailable playlists.
			if pl.ID == "" {
				continue
			}
			out.Playlists = append(out.Playlists, convertPlaylist(pl))
		}
	}
	return out
}
