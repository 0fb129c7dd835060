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

type devicesMsg struct {
	devices []core.Device
	err     error
}

type transferDoneMsg struct {
	err error
}

type devices struct {
	deps    *deps
	spinner spinner.Model
	list    components.List

	loading bool
	devices []core.Device
	err     error
	status  status
}

func newDevices(d *deps) *devices {
	return &devices{
		deps:    d,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Playing)),
		list:    components.NewList(0),
		loading: true,
	}
}

func (v *devices) Init() tea.Cmd {
	return tea.Batch(v.spinner.Tick, v.fetch())
}

func (v *devices) fetch() tea.Cmd {
	return v.deps.request(func(ctx context.Context) tea.Msg {
		ds, err := v.deps.player.Devices(ctx)
		return devicesMsg{devices: ds, err: err}
	})
}

func (v *devices) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case devicesMsg:
		v.loading = false
		v.devices = msg.devices
		v.err = msg.err
		v.list.SetLen(len(v.devices))
		return v, nil

	case transferDoneMsg:
		if msg.err != nil {
			return v, v.status.set(v.deps, "Failed to transfer playback", true)
		}
		return v, tea.Batch(v.status.set(v.deps, "✓ Playback transferred!", false), v.fetch())

	case statusExpiredMsg:
		v.status.expire(msg)
		return v, nil

	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyBack):
			return v, back()
		case key.Matches(msg, keyUp):
			v.list.Up()
		case key.Matches(msg, keyDown):
			v.list.Down()
		case key.Matches(msg, keyRefresh):
			if v.loading {
				return v, nil
			}
			v.loading = true
			return v, tea.Batch(v.spinner.Tick, v.fetch())
		case key.Matches(msg, keySelect):
			i := v.list.Cursor()
			if i < 0 || i >= len(v.devices) {
				return v, nil
			}
			return v, v.transfer(v.devices[i].ID)
		}
	}
	return v, nil
}

func (v *devices) transfer(id string) tea.Cmd {
	v.status.hold("Transferring playback...")
	return v.deps.request(func(ctx context.Context) tea.Msg {
		err := v.deps.player.TransferPlayback(ctx, id, true)
		if err != nil {
			v.deps.log.WithError(err).WithField("device", id).Debug("Transfer failed")
		}
		return transferDoneMsg{err: err}
	})
}

func (v *devices) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Devices"))
	b.WriteString("\n\n")

	switch {
	case v.loading && v.devices == nil:
		b.WriteString(v.spinner.View() + " Loading devices...")
	case v.err != nil:
		b.WriteString(styles.Banner.Render("Failed to load devices"))
	case len(v.devices) == 0:
		b.WriteString(styles.Muted.Render("No devices found."))
		b.WriteString("\n")
		b.WriteString(styles.Dim.Render("Make sure Spotify is open on at least one device."))
	default:
		b.WriteString(v.list.Render(components.DeviceLabels(v.devices)))
	}

	if st := v.status.View(); st != "" {
		b.WriteString("\n\n")
		b.WriteString(st)
	}
	return b.String()
}

func (v *devices) Help() help.KeyMap { return devicesKeys{} }
