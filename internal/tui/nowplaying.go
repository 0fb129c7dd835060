package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tessro/spotify-cli/internal/core"
	"github.com/tessro/spotify-cli/internal/tui/components"
	"github.com/tessro/spotify-cli/internal/tui/styles"
)

type playbackMsg struct {
	state *core.PlaybackState
	err   error
}

type nowPlaying struct {
	deps    *deps
	poll    poller
	spinner spinner.Model
	panel   components.NowPlaying

	loading bool
	state   *core.PlaybackState
	err     error
	status  status
}

func newNowPlaying(d *deps) *nowPlaying {
	return &nowPlaying{
		deps:    d,
		poll:    poller{interval: d.opts.NowPlayingRefresh},
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Playing)),
		panel:   components.NewNowPlaying(d.opts.ProgressWidth),
		loading: true,
	}
}

func (n *nowPlaying) fetch() tea.Cmd {
	return n.deps.request(func(ctx context.Context) tea.Msg {
		state, err := n.deps.player.PlaybackState(ctx)
		return playbackMsg{state: state, err: err}
	})
}

func (n *nowPlaying) Init() tea.Cmd {
	return tea.Batch(n.spinner.Tick, n.poll.start(n.fetch()), n.poll.tick(n.deps))
}

func (n *nowPlaying) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case playbackMsg:
		n.loading = false
		n.state = msg.state
		n.err = msg.err
		return n, n.poll.done(n.fetch())

	case pollTickMsg:
		return n, n.poll.onTick(n.deps, n.fetch())

	case actionDoneMsg:
		return n, tea.Batch(n.status.report(n.deps, msg), n.poll.refresh(n.fetch()))

	case statusExpiredMsg:
		n.status.expire(msg)
		return n, nil

	case spinner.TickMsg:
		if !n.loading {
			return n, nil
		}
		var cmd tea.Cmd
		n.spinner, cmd = n.spinner.Update(msg)
		return n, cmd

	case tea.KeyMsg:
		return n.handleKey(msg)
	}
	return n, nil
}

func (n *nowPlaying) handleKey(msg tea.KeyMsg) (Screen, tea.Cmd) {
	p := n.deps.player
	k := nowPlayingKeyMap

	switch {
	case key.Matches(msg, keyBack):
		return n, back()
	case key.Matches(msg, k.Toggle):
		return n, n.deps.action("", "", p.TogglePlayPause)
	case key.Matches(msg, k.Next):
		return n, n.deps.action("", "", p.Next)
	case key.Matches(msg, k.Prev):
		return n, n.deps.action("", "", p.Prev)
	case key.Matches(msg, k.VolumeUp):
		return n, n.setVolume(n.deps.opts.VolumeStep)
	case key.Matches(msg, k.VolumeDown):
		return n, n.setVolume(-n.deps.opts.VolumeStep)
	case key.Matches(msg, k.Shuffle):
		if n.state == nil {
			return n, nil
		}
		on := !n.state.Shuffle
		return n, n.deps.action("", "", func(ctx context.Context) error {
			return p.SetShuffle(ctx, on)
		})
	case key.Matches(msg, k.Repeat):
		if n.state == nil {
			return n, nil
		}
		mode := n.state.Repeat.Next()
		return n, n.deps.action("", "", func(ctx context.Context) error {
			return p.SetRepeat(ctx, mode)
		})
	}
	return n, nil
}

func (n *nowPlaying) setVolume(delta int) tea.Cmd {
	if n.state == nil {
		return nil
	}
	v := core.ClampVolume(n.state.Volume + delta)
	return n.deps.action("", "", func(ctx context.Context) error {
		return n.deps.player.SetVolume(ctx, v)
	})
}

func (n *nowPlaying) View() string {
	var b strings.Builder

	switch {
	case n.loading:
		b.WriteString(n.spinner.View() + " Loading playback state...")
	case !n.state.HasTrack():
		b.WriteString(styles.Title.Render("No active playback"))
		b.WriteString("\n\n")
		b.WriteString(styles.Muted.Render("Start playing something on Spotify to control it here."))
		b.WriteString("\n")
		b.WriteString(styles.Dim.Render("Press ESC to go back"))
	default:
		b.WriteString(n.panel.Render(n.state))
	}

	if n.err != nil {
		b.WriteString("\n\n")
		b.WriteString(styles.Banner.Render("Failed to fetch playback state"))
	}
	if s := n.status.View(); s != "" {
		b.WriteString("\n\n")
		b.WriteString(s)
	}
	return b.String()
}

func (n *nowPlaying) Help() help.KeyMap { return nowPlayingKeyMap }
