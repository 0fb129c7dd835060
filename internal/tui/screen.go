package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/tessro/spotify-cli/internal/core"
	"github.com/tessro/spotify-cli/internal/tui/styles"
)

// ScreenID names a router state.
type ScreenID int

const (
	ScreenHome ScreenID = iota
	ScreenNowPlaying
	ScreenSearch
	ScreenPlaylists
	ScreenDevices
)

func (s ScreenID) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenNowPlaying:
		return "now-playing"
	case ScreenSearch:
		return "search"
	case ScreenPlaylists:
		return "playlists"
	case ScreenDevices:
		return "devices"
	default:
		return "unknown"
	}
}

// Screen is one router state. Screens never reference each other; they ask
// the router to move with navigate or back.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
}

type navigateMsg struct{ to ScreenID }

func navigate(to ScreenID) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: to} }
}

func back() tea.Cmd {
	return navigate(ScreenHome)
}

const (
	successTTL = 2 * time.Second
	errorTTL   = 3 * time.Second
)

// deps are the collaborators shared by every screen.
type deps struct {
	ctx    context.Context
	player core.Player
	opts   Options
	log    logrus.FieldLogger

	// after delivers msg once d has passed.
	after func(d time.Duration, msg tea.Msg) tea.Cmd
}

func tickAfter(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// request runs fn off the event loop with a per-request timeout.
func (d *deps) request(fn func(ctx context.Context) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(d.ctx, d.opts.RequestTimeout)
		defer cancel()
		return fn(ctx)
	}
}

// actionDoneMsg reports the outcome of a write command.
type actionDoneMsg struct {
	err     error
	success string
	failure string
}

// action runs a write command and reports it as an actionDoneMsg. failure
// prefixes the error text; success is shown when the command succeeds.
func (d *deps) action(success, failure string, fn func(ctx context.Context) error) tea.Cmd {
	return d.request(func(ctx context.Context) tea.Msg {
		err := fn(ctx)
		if err != nil {
			d.log.WithError(err).Debug("Command failed")
		}
		return actionDoneMsg{err: err, success: success, failure: failure}
	})
}

type statusExpiredMsg struct{ id int }

// status is a transient message line. Success and action errors expire on
// their own; a held message stays until replaced.
type status struct {
	text string
	err  bool
	id   int
}

func (s *status) set(d *deps, text string, isErr bool) tea.Cmd {
	s.id++
	s.text = text
	s.err = isErr
	ttl := successTTL
	if isErr {
		ttl = errorTTL
	}
	return d.after(ttl, statusExpiredMsg{id: s.id})
}

func (s *status) hold(text string) {
	s.id++
	s.text = text
	s.err = false
}

// report shows the outcome of an action.
func (s *status) report(d *deps, msg actionDoneMsg) tea.Cmd {
	if msg.err != nil {
		failure := msg.failure
		if failure == "" {
			failure = "Command failed: " + msg.err.Error()
		}
		return s.set(d, failure, true)
	}
	if msg.success == "" {
		s.clear()
		return nil
	}
	return s.set(d, msg.success, false)
}

func (s *status) expire(msg statusExpiredMsg) {
	if msg.id == s.id {
		s.clear()
	}
}

func (s *status) clear() {
	s.text = ""
	s.err = false
}

func (s status) View() string {
	switch {
	case s.text == "":
		return ""
	case s.err:
		return styles.ErrorText.Render(s.text)
	default:
		return styles.SuccessText.Render(s.text)
	}
}

type pollTickMsg struct{}

// poller drives a screen's refresh timer with a single in-flight guard.
// A tick that finds a fetch outstanding is skipped; a refresh requested
// while busy is coalesced into one follow-up fetch.
type poller struct {
	interval time.Duration
	inFlight bool
	pending  bool
}

func (p *poller) tick(d *deps) tea.Cmd {
	if p.interval <= 0 {
		return nil
	}
	return d.after(p.interval, pollTickMsg{})
}

// start marks a fetch as outstanding and returns it, or nil when one already is.
func (p *poller) start(fetch tea.Cmd) tea.Cmd {
	if p.inFlight {
		return nil
	}
	p.inFlight = true
	return fetch
}

// onTick continues the timer chain and fetches unless one is outstanding.
func (p *poller) onTick(d *deps, fetch tea.Cmd) tea.Cmd {
	return tea.Batch(p.tick(d), p.start(fetch))
}

// refresh fetches now, or once the outstanding fetch completes.
func (p *poller) refresh(fetch tea.Cmd) tea.Cmd {
	if p.inFlight {
		p.pending = true
		return nil
	}
	return p.start(fetch)
}

// done records a completed fetch and returns the coalesced follow-up, if any.
func (p *poller) done(fetch tea.Cmd) tea.Cmd {
	p.inFlight = false
	if p.pending {
		p.pending = false
		return p.start(fetch)
	}
	return nil
}
