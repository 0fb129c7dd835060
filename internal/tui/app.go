package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/tessro/spotify-cli/internal/config"
	"github.com/tessro/spotify-cli/internal/core"
	"github.com/tessro/spotify-cli/internal/tui/styles"
)

// Options tune the screens.
type Options struct {
	HomeRefresh       time.Duration
	NowPlayingRefresh time.Duration
	RequestTimeout    time.Duration
	ProgressWidth     int
	VolumeStep        int
	SearchLimit       int
	Theme             string
	Logger            logrus.FieldLogger
}

// DefaultOptions returns the stock intervals and sizes.
func DefaultOptions() Options {
	return Options{
		HomeRefresh:       5 * time.Second,
		NowPlayingRefresh: time.Second,
		RequestTimeout:    5 * time.Second,
		ProgressWidth:     35,
		VolumeStep:        10,
		SearchLimit:       15,
		Theme:             "auto",
	}
}

// OptionsFromConfig maps the [tui] and [search] sections onto Options.
func OptionsFromConfig(cfg *config.Config) Options {
	o := DefaultOptions()
	if cfg == nil {
		return o
	}
	if cfg.TUI.HomeRefresh > 0 {
		o.HomeRefresh = time.Duration(cfg.TUI.HomeRefresh) * time.Millisecond
	}
	if cfg.TUI.NowPlayingRefresh > 0 {
		o.NowPlayingRefresh = time.Duration(cfg.TUI.NowPlayingRefresh) * time.Millisecond
	}
	if cfg.TUI.ProgressWidth > 0 {
		o.ProgressWidth = cfg.TUI.ProgressWidth
	}
	if cfg.TUI.VolumeStep > 0 {
		o.VolumeStep = cfg.TUI.VolumeStep
	}
	if cfg.Search.Limit > 0 {
		o.SearchLimit = cfg.Search.Limit
	}
	if cfg.TUI.Theme != "" {
		o.Theme = cfg.TUI.Theme
	}
	return o
}

// screenMsg carries a message produced by the screen mounted at gen.
type screenMsg struct {
	gen uint64
	msg tea.Msg
}

// tag marks every message cmd produces with gen, descending into batches.
// Quit passes through untouched.
func tag(gen uint64, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		switch msg := cmd().(type) {
		case nil:
			return nil
		case tea.QuitMsg:
			return msg
		case tea.BatchMsg:
			cmds := make([]tea.Cmd, len(msg))
			for i, c := range msg {
				cmds[i] = tag(gen, c)
			}
			return tea.BatchMsg(cmds)
		default:
			return screenMsg{gen: gen, msg: msg}
		}
	}
}

// Model is the router. It owns the mounted screen and its generation; every
// mount bumps the generation, so results and timers from an unmounted screen
// are dropped on arrival.
type Model struct {
	deps    *deps
	current ScreenID
	screen  Screen
	gen     uint64
	width   int
	height  int
	help    help.Model
}

// New creates a router mounted on Home.
func New(ctx context.Context, player core.Player, opts Options) Model {
	defaults := DefaultOptions()
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaults.RequestTimeout
	}
	if opts.ProgressWidth <= 0 {
		opts.ProgressWidth = defaults.ProgressWidth
	}
	if opts.VolumeStep <= 0 {
		opts.VolumeStep = defaults.VolumeStep
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = defaults.SearchLimit
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	d := &deps{
		ctx:    ctx,
		player: player,
		opts:   opts,
		log:    log.WithField("component", "tui"),
		after:  tickAfter,
	}
	m := Model{deps: d, help: help.New()}
	m.mount(ScreenHome)
	return m
}

// Current returns the active router state.
func (m Model) Current() ScreenID {
	return m.current
}

func (m *Model) mount(id ScreenID) {
	m.gen++
	m.current = id
	m.screen = m.build(id)
}

func (m *Model) build(id ScreenID) Screen {
	switch id {
	case ScreenNowPlaying:
		return newNowPlaying(m.deps)
	case ScreenSearch:
		return newSearch(m.deps)
	case ScreenPlaylists:
		return newPlaylists(m.deps)
	case ScreenDevices:
		return newDevices(m.deps)
	default:
		return newHome(m.deps)
	}
}

// Init starts the mounted screen.
func (m Model) Init() tea.Cmd {
	return tag(m.gen, m.screen.Init())
}

// navigate moves along the star: Home to any screen, any screen to Home.
func (m Model) navigate(to ScreenID) (tea.Model, tea.Cmd) {
	if m.current != ScreenHome && to != ScreenHome {
		m.deps.log.WithFields(logrus.Fields{"from": m.current, "to": to}).Warn("Rejected navigation")
		return m, nil
	}
	m.deps.log.WithFields(logrus.Fields{"from": m.current, "to": to}).Debug("Navigate")
	m.mount(to)
	return m, m.Init()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case screenMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if nav, ok := msg.msg.(navigateMsg); ok {
			return m.navigate(nav.to)
		}
		return m.forward(msg.msg)
	}

	return m.forward(msg)
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	screen, cmd := m.screen.Update(msg)
	m.screen = screen
	return m, tag(m.gen, cmd)
}

// View renders the UI
func (m Model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Header(m.width-4),
		"",
		m.screen.View(),
		"",
		m.footer(),
	)
	return styles.App.Render(body)
}

func (m Model) footer() string {
	if h, ok := m.screen.(interface{ Help() help.KeyMap }); ok {
		return m.help.View(h.Help())
	}
	return ""
}

// Run starts the router and blocks until the user quits or ctx is done.
func Run(ctx context.Context, player core.Player, opts Options) error {
	styles.ApplyTheme(opts.Theme)

	p := tea.NewProgram(New(ctx, player, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
