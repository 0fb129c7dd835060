package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tessro/spotify-cli/internal/core"
	"github.com/tessro/spotify-cli/internal/format"
	"github.com/tessro/spotify-cli/internal/tui/components"
	"github.com/tessro/spotify-cli/internal/tui/styles"
)

const playlistWindow = 15

type playlistsMode int

const (
	playlistsLoading playlistsMode = iota
	playlistsList
	playlistsTracks
)

type playlistsMsg struct {
	playlists []core.Playlist
	err       error
}

type playlistTracksMsg struct {
	playlistID string
	tracks     []core.Track
	err        error
}

type playlists struct {
	deps    *deps
	mode    playlistsMode
	spinner spinner.Model

	playlists []core.Playlist
	list      components.List

	open   *core.Playlist
	tracks []core.Track
	tlist  components.List

	err    string
	status status
}

func newPlaylists(d *deps) *playlists {
	return &playlists{
		deps:    d,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Playing)),
		list:    components.NewList(playlistWindow),
		tlist:   components.NewList(playlistWindow),
	}
}

func (p *playlists) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.fetchPlaylists())
}

func (p *playlists) fetchPlaylists() tea.Cmd {
	return p.deps.request(func(ctx context.Context) tea.Msg {
		pls, err := p.deps.player.Playlists(ctx)
		return playlistsMsg{playlists: pls, err: err}
	})
}

func (p *playlists) fetchTracks(id string) tea.Cmd {
	return p.deps.request(func(ctx context.Context) tea.Msg {
		tracks, err := p.deps.player.PlaylistTracks(ctx, id)
		return playlistTracksMsg{playlistID: id, tracks: tracks, err: err}
	})
}

func (p *playlists) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case playlistsMsg:
		p.mode = playlistsList
		p.playlists = msg.playlists
		p.list.SetLen(len(p.playlists))
		p.err = ""
		if msg.err != nil {
			p.err = "Failed to load playlists"
		}
		return p, nil

	case playlistTracksMsg:
		if p.mode != playlistsLoading || p.open == nil || p.open.ID != msg.playlistID {
			return p, nil
		}
		if msg.err != nil {
			p.mode = playlistsList
			p.open = nil
			p.err = "Failed to load tracks"
			return p, nil
		}
		p.mode = playlistsTracks
		p.tracks = msg.tracks
		p.tlist.SetLen(len(p.tracks))
		p.tlist.Reset()
		p.err = ""
		return p, nil

	case actionDoneMsg:
		return p, p.status.report(p.deps, msg)

	case statusExpiredMsg:
		p.status.expire(msg)
		return p, nil

	case spinner.TickMsg:
		if p.mode != playlistsLoading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		switch p.mode {
		case playlistsList:
			return p.handleListKey(msg)
		case playlistsTracks:
			return p.handleTracksKey(msg)
		default:
			if key.Matches(msg, keyBack) {
				if p.open != nil {
					p.open = nil
					p.mode = playlistsList
					return p, nil
				}
				return p, back()
			}
		}
	}
	return p, nil
}

func (p *playlists) handleListKey(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, keyBack):
		return p, back()
	case key.Matches(msg, keyUp):
		p.list.Up()
	case key.Matches(msg, keyDown):
		p.list.Down()
	case key.Matches(msg, keySelect):
		pl := p.selectedPlaylist()
		if pl == nil {
			return p, nil
		}
		p.open = pl
		p.mode = playlistsLoading
		return p, tea.Batch(p.spinner.Tick, p.fetchTracks(pl.ID))
	case key.Matches(msg, keyPlayAll):
		if pl := p.selectedPlaylist(); pl != nil {
			return p, p.playPlaylist(pl.URI)
		}
	}
	return p, nil
}

func (p *playlists) handleTracksKey(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, keyBack):
		p.mode = playlistsList
		p.open = nil
		p.tracks = nil
		p.tlist.SetLen(0)
		return p, nil
	case key.Matches(msg, keyUp):
		p.tlist.Up()
	case key.Matches(msg, keyDown):
		p.tlist.Down()
	case key.Matches(msg, keySelect):
		i := p.tlist.Cursor()
		if i < 0 || i >= len(p.tracks) {
			return p, nil
		}
		contextURI, trackURI := p.open.URI, p.tracks[i].URI
		return p, p.deps.action("✓ Now playing!", "Failed to play track", func(ctx context.Context) error {
			return p.deps.player.PlayContext(ctx, contextURI, trackURI)
		})
	case key.Matches(msg, keyPlayAll):
		return p, p.playPlaylist(p.open.URI)
	}
	return p, nil
}

func (p *playlists) playPlaylist(uri string) tea.Cmd {
	return p.deps.action("✓ Playing playlist!", "Failed to play playlist", func(ctx context.Context) error {
		return p.deps.player.PlayContext(ctx, uri, "")
	})
}

func (p *playlists) selectedPlaylist() *core.Playlist {
	i := p.list.Cursor()
	if i < 0 || i >= len(p.playlists) {
		return nil
	}
	pl := p.playlists[i]
	return &pl
}

func playlistLabel(pl core.Playlist) string {
	return fmt.Sprintf("%s • %s tracks", format.Truncate(pl.Name, 40), format.Number(pl.TrackCount))
}

func (p *playlists) View() string {
	var b strings.Builder

	switch p.mode {
	case playlistsLoading:
		b.WriteString(styles.Title.Render("Playlists"))
		b.WriteString("\n\n")
		if p.open != nil {
			b.WriteString(p.spinner.View() + " Loading tracks...")
		} else {
			b.WriteString(p.spinner.View() + " Loading playlists...")
		}

	case playlistsTracks:
		b.WriteString(styles.Title.Render(p.open.Name))
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("by %s • %d tracks", p.open.Owner, len(p.tracks))))
		b.WriteString("\n\n")
		if len(p.tracks) == 0 {
			b.WriteString(styles.Muted.Render("This playlist is empty."))
			break
		}
		labels := make([]string, len(p.tracks))
		for i, t := range p.tracks {
			labels[i] = trackLabel(t)
		}
		b.WriteString(p.tlist.Render(labels))

	default:
		b.WriteString(styles.Title.Render("Playlists"))
		b.WriteString("\n\n")
		if len(p.playlists) == 0 && p.err == "" {
			b.WriteString(styles.Muted.Render("No playlists found."))
			break
		}
		labels := make([]string, len(p.playlists))
		for i, pl := range p.playlists {
			labels[i] = playlistLabel(pl)
		}
		b.WriteString(p.list.Render(labels))
	}

	if p.err != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.Banner.Render(p.err))
	}
	if st := p.status.View(); st != "" {
		b.WriteString("\n\n")
		b.WriteString(st)
	}
	return b.String()
}

func (p *playlists) Help() help.KeyMap { return playlistsHelp{tracks: p.mode == playlistsTracks} }
