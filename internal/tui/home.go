package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tessro/spotify-cli/internal/core"
	"github.com/tessro/spotify-cli/internal/tui/components"
	"github.com/tessro/spotify-cli/internal/tui/styles"
)

type menuItem struct {
	label string
	to    ScreenID
	quit  bool
}

var homeMenu = []menuItem{
	{label: "Now Playing", to: ScreenNowPlaying},
	{label: "Search", to: ScreenSearch},
	{label: "Playlists", to: ScreenPlaylists},
	{label: "Devices", to: ScreenDevices},
	{label: "Exit", quit: true},
}

type profileMsg struct {
	user *core.User
	err  error
}

type homeTrackMsg struct {
	track *core.Track
	err   error
}

type home struct {
	deps  *deps
	poll  poller
	menu  components.List
	user  *core.User
	track *core.Track
	err   error
}

func newHome(d *deps) *home {
	h := &home{
		deps: d,
		poll: poller{interval: d.opts.HomeRefresh},
		menu: components.NewList(0),
	}
	h.menu.SetLen(len(homeMenu))
	return h
}

func (h *home) fetchProfile() tea.Cmd {
	return h.deps.request(func(ctx context.Context) tea.Msg {
		user, err := h.deps.player.Profile(ctx)
		return profileMsg{user: user, err: err}
	})
}

func (h *home) fetchTrack() tea.Cmd {
	return h.deps.request(func(ctx context.Context) tea.Msg {
		track, err := h.deps.player.CurrentTrack(ctx)
		return homeTrackMsg{track: track, err: err}
	})
}

func (h *home) Init() tea.Cmd {
	return tea.Batch(h.fetchProfile(), h.poll.start(h.fetchTrack()), h.poll.tick(h.deps))
}

func (h *home) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileMsg:
		h.user = msg.user
		return h, nil

	case homeTrackMsg:
		h.track = msg.track
		h.err = msg.err
		return h, h.poll.done(h.fetchTrack())

	case pollTickMsg:
		return h, h.poll.onTick(h.deps, h.fetchTrack())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyQuit):
			return h, tea.Quit
		case key.Matches(msg, keyUp):
			h.menu.Up()
		case key.Matches(msg, keyDown):
			h.menu.Down()
		case key.Matches(msg, keySelect):
			item := homeMenu[h.menu.Cursor()]
			if item.quit {
				return h, tea.Quit
			}
			return h, navigate(item.to)
		}
	}
	return h, nil
}

func (h *home) name() string {
	if h.user == nil || h.user.DisplayName == "" {
		return "Spotify User"
	}
	return h.user.DisplayName
}

func (h *home) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Welcome back, " + h.name() + "!"))
	b.WriteString("\n\n")
	b.WriteString(components.MiniNowPlaying(h.track))
	b.WriteString("\n")
	if h.err != nil {
		b.WriteString(styles.Banner.Render("Failed to fetch playback state"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	labels := make([]string, len(homeMenu))
	for i, item := range homeMenu {
		labels[i] = item.label
	}
	b.WriteString(h.menu.Render(labels))
	return b.String()
}

func (h *home) Help() help.KeyMap { return homeKeys{} }
