package tui

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/tessro/spotify-cli/internal/core"
)

// fakePlayer is an in-memory core.Player that records every call.
type fakePlayer struct {
	mu    sync.Mutex
	calls []string

	user         *core.User
	track        *core.Track
	trackErr     error
	state        *core.PlaybackState
	stateErr     error
	devices      []core.Device
	devicesErr   error
	playlists    []core.Playlist
	playlistsErr error
	tracks       map[string][]core.Track
	tracksErr    error
	results      *core.SearchResults
	searchErr    error
	cmdErr       error
}

func (f *fakePlayer) record(format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

// count returns how many recorded calls start with prefix.
func (f *fakePlayer) count(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (f *fakePlayer) last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return ""
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakePlayer) CurrentTrack(ctx context.Context) (*core.Track, error) {
	f.record("CurrentTrack")
	if f.trackErr != nil {
		return nil, f.trackErr
	}
	return f.track, nil
}

func (f *fakePlayer) PlaybackState(ctx context.Context) (*core.PlaybackState, error) {
	f.record("PlaybackState")
	if f.stateErr != nil {
		return nil, f.stateErr
	}
	return f.state, nil
}

func (f *fakePlayer) Devices(ctx context.Context) ([]core.Device, error) {
	f.record("Devices")
	if f.devicesErr != nil {
		return nil, f.devicesErr
	}
	return f.devices, nil
}

func (f *fakePlayer) Playlists(ctx context.Context) ([]core.Playlist, error) {
	f.record("Playlists")
	if f.playlistsErr != nil {
		return nil, f.playlistsErr
	}
	return f.playlists, nil
}

func (f *fakePlayer) PlaylistTracks(ctx context.Context, playlistID string) ([]core.Track, error) {
	f.record("PlaylistTracks(%s)", playlistID)
	if f.tracksErr != nil {
		return nil, f.tracksErr
	}
	return f.tracks[playlistID], nil
}

func (f *fakePlayer) Search(ctx context.Context, query string, types core.SearchType, limit int) (*core.SearchResults, error) {
	f.record("Search(%s, %d)", query, limit)
	if f.searchErr != nil {
		return &core.SearchResults{}, f.searchErr
	}
	if f.results == nil {
		return &core.SearchResults{}, nil
	}
	return f.results, nil
}

func (f *fakePlayer) RecentlyPlayed(ctx context.Context, limit int) ([]core.HistoryEntry, error) {
	f.record("RecentlyPlayed(%d)", limit)
	return nil, nil
}

func (f *fakePlayer) Profile(ctx context.Context) (*core.User, error) {
	f.record("Profile")
	return f.user, nil
}

func (f *fakePlayer) Queue(ctx context.Context) (*core.Queue, error) {
	f.record("Queue")
	return &core.Queue{}, nil
}

func (f *fakePlayer) Play(ctx context.Context, uri string) error {
	f.record("Play(%s)", uri)
	return f.cmdErr
}

func (f *fakePlayer) PlayContext(ctx context.Context, contextURI, offsetURI string) error {
	f.record("PlayContext(%s, %s)", contextURI, offsetURI)
	return f.cmdErr
}

func (f *fakePlayer) Pause(ctx context.Context) error {
	f.record("Pause")
	return f.cmdErr
}

func (f *fakePlayer) TogglePlayPause(ctx context.Context) error {
	f.record("TogglePlayPause")
	return f.cmdErr
}

func (f *fakePlayer) Next(ctx context.Context) error {
	f.record("Next")
	return f.cmdErr
}

func (f *fakePlayer) Prev(ctx context.Context) error {
	f.record("Prev")
	return f.cmdErr
}

func (f *fakePlayer) Seek(ctx context.Context, position time.Duration) error {
	f.record("Seek(%s)", position)
	return f.cmdErr
}

func (f *fakePlayer) SetVolume(ctx context.Context, percent int) error {
	f.record("SetVolume(%d)", percent)
	return f.cmdErr
}

func (f *fakePlayer) SetShuffle(ctx context.Context, on bool) error {
	f.record("SetShuffle(%t)", on)
	return f.cmdErr
}

func (f *fakePlayer) SetRepeat(ctx context.Context, mode core.RepeatMode) error {
	f.record("SetRepeat(%s)", mode)
	return f.cmdErr
}

func (f *fakePlayer) AddToQueue(ctx context.Context, trackURI string) error {
	f.record("AddToQueue(%s)", trackURI)
	return f.cmdErr
}

func (f *fakePlayer) TransferPlayback(ctx context.Context, deviceID string, play bool) error {
	f.record("TransferPlayback(%s, %t)", deviceID, play)
	return f.cmdErr
}

var _ core.Player = (*fakePlayer)(nil)

// harness drives the router synchronously. Timer and animation messages
// are parked instead of delivered, so tests decide when time passes.
type harness struct {
	t      *testing.T
	m      Model
	parked []tea.Msg
	quit   bool
}

func newHarness(t *testing.T, p *fakePlayer) *harness {
	t.Helper()
	logger, _ := test.NewNullLogger()
	opts := DefaultOptions()
	opts.Logger = logger

	m := New(context.Background(), p, opts)
	m.deps.after = func(_ time.Duration, msg tea.Msg) tea.Cmd {
		return func() tea.Msg { return msg }
	}
	h := &harness{t: t, m: m}
	h.run(m.Init())
	return h
}

func unwrap(msg tea.Msg) tea.Msg {
	if sm, ok := msg.(screenMsg); ok {
		return sm.msg
	}
	return msg
}

func parkable(msg tea.Msg) bool {
	switch inner := unwrap(msg).(type) {
	case pollTickMsg, statusExpiredMsg, spinner.TickMsg:
		return true
	default:
		t := reflect.TypeOf(inner)
		return t != nil && t.PkgPath() == "github.com/charmbracelet/bubbles/cursor"
	}
}

func (h *harness) run(cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			h.quit = true
		default:
			if parkable(msg) {
				h.parked = append(h.parked, msg)
				continue
			}
			queue = append(queue, h.update(msg))
		}
	}
}

func (h *harness) update(msg tea.Msg) tea.Cmd {
	model, cmd := h.m.Update(msg)
	h.m = model.(Model)
	return cmd
}

func (h *harness) send(msg tea.Msg) {
	h.run(h.update(msg))
}

// fire delivers the parked messages whose payload has the same type as like.
func (h *harness) fire(like tea.Msg) {
	want := reflect.TypeOf(like)
	var due, keep []tea.Msg
	for _, msg := range h.parked {
		if reflect.TypeOf(unwrap(msg)) == want {
			due = append(due, msg)
		} else {
			keep = append(keep, msg)
		}
	}
	h.parked = keep
	for _, msg := range due {
		h.send(msg)
	}
}

func (h *harness) key(k tea.KeyType) {
	h.send(tea.KeyMsg{Type: k})
}

func (h *harness) press(keys string) {
	for _, r := range keys {
		if r == ' ' {
			h.key(tea.KeySpace)
			continue
		}
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// open moves the Home cursor to the menu entry for id and selects it.
func (h *harness) open(id ScreenID) {
	h.t.Helper()
	for i, item := range homeMenu {
		if item.to == id && !item.quit {
			for j := 0; j < i; j++ {
				h.key(tea.KeyDown)
			}
			h.key(tea.KeyEnter)
			if h.m.Current() != id {
				h.t.Fatalf("Current() = %v after opening, want %v", h.m.Current(), id)
			}
			return
		}
	}
	h.t.Fatalf("no menu entry for %v", id)
}

func (h *harness) view() string {
	return h.m.View()
}

func (h *harness) assertView(want ...string) {
	h.t.Helper()
	v := h.view()
	for _, w := range want {
		if !strings.Contains(v, w) {
			h.t.Errorf("View() missing %q:\n%s", w, v)
		}
	}
}

func (h *harness) refuteView(unwanted ...string) {
	h.t.Helper()
	v := h.view()
	for _, w := range unwanted {
		if strings.Contains(v, w) {
			h.t.Errorf("View() contains %q:\n%s", w, v)
		}
	}
}

func sampleTrack(id, name string) core.Track {
	progress := 30 * time.Second
	return core.Track{
		ID:       id,
		URI:      "spotify:track:" + id,
		Name:     name,
		Artists:  []string{"Artist " + id},
		Album:    "Album " + id,
		Duration: 3 * time.Minute,
		Progress: &progress,
		Playing:  true,
	}
}

func sampleState(volume int) *core.PlaybackState {
	track := sampleTrack("t1", "Song One")
	return &core.PlaybackState{
		Playing: true,
		Repeat:  core.RepeatOff,
		Volume:  volume,
		Device:  &core.Device{ID: "d1", Name: "Desk", Type: core.DeviceTypeComputer, Active: true, Volume: volume},
		Track:   &track,
	}
}
