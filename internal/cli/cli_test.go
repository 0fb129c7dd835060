package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/tessro/spotify-cli/internal/config"
	"github.com/tessro/spotify-cli/internal/core"
	apperrors "github.com/tessro/spotify-cli/internal/errors"
	"github.com/tessro/spotify-cli/internal/spotify/auth"
	"github.com/tessro/spotify-cli/internal/spotify/client"
	"github.com/tessro/spotify-cli/internal/tui"
)

type fakeAuth struct {
	authenticated bool
	token         *auth.Token
	loginErr      error
	loggedOut     bool
}

func (a *fakeAuth) IsAuthenticated(ctx context.Context) bool { return a.authenticated }

func (a *fakeAuth) Login(ctx context.Context) error {
	if a.loginErr != nil {
		return a.loginErr
	}
	a.authenticated = true
	return nil
}

func (a *fakeAuth) Logout() error {
	a.loggedOut = true
	a.authenticated = false
	a.token = nil
	return nil
}

func (a *fakeAuth) AccessToken(ctx context.Context) (string, error) { return "access", nil }

func (a *fakeAuth) Token() (*auth.Token, error) { return a.token, nil }

// fakePlayer embeds core.Player so unused methods panic.
type fakePlayer struct {
	core.Player

	mu      sync.Mutex
	calls   []string
	state   *core.PlaybackState
	results *core.SearchResults
	devices []core.Device
	user    *core.User
	history []core.HistoryEntry
	queue   *core.Queue
	cmdErr  error
}

func (p *fakePlayer) record(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, fmt.Sprintf(format, args...))
}

func (p *fakePlayer) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

func (p *fakePlayer) PlaybackState(ctx context.Context) (*core.PlaybackState, error) {
	p.record("PlaybackState")
	return p.state, nil
}

func (p *fakePlayer) Search(ctx context.Context, query string, types core.SearchType, limit int) (*core.SearchResults, error) {
	p.record("Search(%s, %d)", query, limit)
	if p.results == nil {
		return &core.SearchResults{}, nil
	}
	return p.results, nil
}

func (p *fakePlayer) Devices(ctx context.Context) ([]core.Device, error) {
	p.record("Devices")
	return p.devices, nil
}

func (p *fakePlayer) Profile(ctx context.Context) (*core.User, error) {
	p.record("Profile")
	return p.user, nil
}

func (p *fakePlayer) RecentlyPlayed(ctx context.Context, limit int) ([]core.HistoryEntry, error) {
	p.record("RecentlyPlayed(%d)", limit)
	return p.history, nil
}

func (p *fakePlayer) Queue(ctx context.Context) (*core.Queue, error) {
	p.record("Queue")
	return p.queue, nil
}

func (p *fakePlayer) Play(ctx context.Context, uri string) error {
	p.record("Play(%s)", uri)
	return p.cmdErr
}

func (p *fakePlayer) Pause(ctx context.Context) error {
	p.record("Pause")
	return p.cmdErr
}

func (p *fakePlayer) Next(ctx context.Context) error {
	p.record("Next")
	return p.cmdErr
}

func (p *fakePlayer) Prev(ctx context.Context) error {
	p.record("Prev")
	return p.cmdErr
}

func (p *fakePlayer) Seek(ctx context.Context, position time.Duration) error {
	p.record("Seek(%s)", position)
	return p.cmdErr
}

func (p *fakePlayer) SetVolume(ctx context.Context, percent int) error {
	p.record("SetVolume(%d)", percent)
	return p.cmdErr
}

type env struct {
	auth   *fakeAuth
	player *fakePlayer
	ui     bool
}

// setup points the commands at fakes and a throwaway config file.
func setup(t *testing.T) *env {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "[spotify]\nclient_id = \"test-client\"\n"
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("SPOTIFY_CLI_CLIENT_ID", "")
	t.Setenv("SPOTIFY_CLI_LOG_FILE", "")

	e := &env{
		auth:   &fakeAuth{authenticated: true},
		player: &fakePlayer{},
	}

	prevAuth, prevPlayer, prevUI, prevTerm := openAuth, openPlayer, launchUI, isTerminal
	isTerminal = func() bool { return false }
	openAuth = func(*config.Config, func(string)) (authenticator, error) { return e.auth, nil }
	openPlayer = func(*config.Config, client.TokenSource) core.Player { return e.player }
	launchUI = func(context.Context, core.Player, tui.Options) error {
		e.ui = true
		return nil
	}

	cfgFile, jsonOut, verbose = path, false, false
	playURI, playPick = "", false
	nowFollow, nowFormat, nowTimestamp, nowNoEmoji = false, "", false, false
	nowInterval = time.Second
	devicesPick = false
	recentLimit = 20
	queueLimit = 10
	configInitForce = false

	t.Cleanup(func() {
		openAuth, openPlayer, launchUI, isTerminal = prevAuth, prevPlayer, prevUI, prevTerm
		cfgFile, jsonOut = "", false
	})
	return e
}

// run executes the root command with args and returns stdout, stderr and
// the exit code.
func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	code := Execute(context.Background())
	return stdout.String(), stderr.String(), code
}

func sampleTrack() core.Track {
	return core.Track{
		ID:       "t1",
		URI:      "spotify:track:t1",
		Name:     "Harder Better",
		Artists:  []string{"Daft Punk"},
		Album:    "Discovery",
		Duration: 3*time.Minute + 44*time.Second,
	}
}

func TestParseVolume(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"70", 70, false},
		{"100", 100, false},
		{"55%", 55, false},
		{" 20 ", 20, false},
		{"150", 0, true},
		{"-1", 0, true},
		{"loud", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseVolume(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseVolume(%q) = %d, want error", tt.in, got)
				}
				if !apperrors.IsKind(err, apperrors.KindValidation) {
					t.Errorf("parseVolume(%q) kind = %v, want validation", tt.in, apperrors.KindOf(err))
				}
				if !errors.Is(err, apperrors.ErrInvalidVolume) {
					t.Errorf("parseVolume(%q) error = %v, want ErrInvalidVolume", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseVolume(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseVolume(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestVolumeRejectedBeforeAnyCall(t *testing.T) {
	e := setup(t)

	_, stderr, code := run(t, "volume", "150")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "volume must be between 0 and 100") {
		t.Errorf("stderr = %q, want volume range error", stderr)
	}
	if calls := e.player.Calls(); len(calls) != 0 {
		t.Errorf("calls = %v, want none", calls)
	}
}

func TestVolumeSendsExactLevel(t *testing.T) {
	e := setup(t)

	stdout, _, code := run(t, "volume", "70")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	calls := e.player.Calls()
	if len(calls) != 1 || calls[0] != "SetVolume(70)" {
		t.Errorf("calls = %v, want [SetVolume(70)]", calls)
	}
	if !strings.Contains(stdout, "Volume set to 70%") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestTransportCommands(t *testing.T) {
	tests := []struct {
		cmd  string
		call string
		want string
	}{
		{"pause", "Pause", "Playback paused"},
		{"next", "Next", "Skipped to next track"},
		{"prev", "Prev", "Previous track"},
		{"previous", "Prev", "Previous track"},
		{"restart", "Seek(0s)", "Restarted track"},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			e := setup(t)
			stdout, _, code := run(t, tt.cmd)
			if code != 0 {
				t.Fatalf("exit code = %d, want 0", code)
			}
			calls := e.player.Calls()
			if len(calls) != 1 || calls[0] != tt.call {
				t.Errorf("calls = %v, want [%s]", calls, tt.call)
			}
			if !strings.Contains(stdout, tt.want) {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"0", 0, false},
		{"45", 45 * time.Second, false},
		{"1:30", 90 * time.Second, false},
		{"12:05", 12*time.Minute + 5*time.Second, false},
		{"1:5", 0, true},
		{"1:75", 0, true},
		{"-3", 0, true},
		{"soon", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePosition(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePosition(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parsePosition(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSeek(t *testing.T) {
	e := setup(t)

	stdout, _, code := run(t, "seek", "1:30")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if calls := e.player.Calls(); len(calls) != 1 || calls[0] != "Seek(1m30s)" {
		t.Errorf("calls = %v, want [Seek(1m30s)]", calls)
	}
	if !strings.Contains(stdout, "Seeked to 1:30") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestCommandFailure(t *testing.T) {
	e := setup(t)
	e.player.cmdErr = apperrors.Command("pause", apperrors.ErrNoActiveDevice)

	_, stderr, code := run(t, "pause")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "no active device") {
		t.Errorf("stderr = %q, want no active device", stderr)
	}
	if !strings.Contains(stderr, "Suggestion:") {
		t.Errorf("stderr = %q, want a suggestion", stderr)
	}
}

func TestNotAuthenticated(t *testing.T) {
	e := setup(t)
	e.auth.authenticated = false

	_, stderr, code := run(t, "next")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "not authenticated") {
		t.Errorf("stderr = %q, want not authenticated", stderr)
	}
	if !strings.Contains(stderr, "spotify login") {
		t.Errorf("stderr = %q, want login suggestion", stderr)
	}
	if calls := e.player.Calls(); len(calls) != 0 {
		t.Errorf("calls = %v, want none", calls)
	}
}

func TestPlay(t *testing.T) {
	t.Run("resume", func(t *testing.T) {
		e := setup(t)
		stdout, _, code := run(t, "play")
		if code != 0 {
			t.Fatalf("exit code = %d, want 0", code)
		}
		if calls := e.player.Calls(); len(calls) != 1 || calls[0] != "Play()" {
			t.Errorf("calls = %v, want [Play()]", calls)
		}
		if !strings.Contains(stdout, "Playback resumed") {
			t.Errorf("stdout = %q", stdout)
		}
	})

	t.Run("query", func(t *testing.T) {
		e := setup(t)
		e.player.results = &core.SearchResults{Tracks: []core.Track{sampleTrack()}}

		stdout, _, code := run(t, "play", "harder", "better")
		if code != 0 {
			t.Fatalf("exit code = %d, want 0", code)
		}
		want := []string{"Search(harder better, 1)", "Play(spotify:track:t1)"}
		if calls := e.player.Calls(); strings.Join(calls, ";") != strings.Join(want, ";") {
			t.Errorf("calls = %v, want %v", calls, want)
		}
		if !strings.Contains(stdout, "Now playing: Harder Better by Daft Punk") {
			t.Errorf("stdout = %q", stdout)
		}
	})

	t.Run("no match", func(t *testing.T) {
		e := setup(t)

		_, stderr, code := run(t, "play", "zzz")
		if code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
		if !strings.Contains(stderr, `no matching tracks for "zzz"`) {
			t.Errorf("stderr = %q", stderr)
		}
		for _, c := range e.player.Calls() {
			if strings.HasPrefix(c, "Play(") {
				t.Errorf("unexpected %s", c)
			}
		}
	})

	t.Run("uri", func(t *testing.T) {
		e := setup(t)
		_, _, code := run(t, "play", "--uri", "spotify:album:a1")
		if code != 0 {
			t.Fatalf("exit code = %d, want 0", code)
		}
		if calls := e.player.Calls(); len(calls) != 1 || calls[0] != "Play(spotify:album:a1)" {
			t.Errorf("calls = %v", calls)
		}
	})
}

func TestNow(t *testing.T) {
	t.Run("nothing playing", func(t *testing.T) {
		setup(t)
		stdout, _, code := run(t, "now")
		if code != 0 {
			t.Fatalf("exit code = %d, want 0", code)
		}
		if !strings.Contains(stdout, "Nothing is currently playing") {
			t.Errorf("stdout = %q", stdout)
		}
	})

	t.Run("nothing playing json", func(t *testing.T) {
		setup(t)
		stdout, _, _ := run(t, "now", "--json")
		var doc map[string]any
		if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
			t.Fatalf("invalid JSON %q: %v", stdout, err)
		}
		if doc["playing"] != false {
			t.Errorf("playing = %v, want false", doc["playing"])
		}
	})

	t.Run("panel", func(t *testing.T) {
		e := setup(t)
		track := sampleTrack()
		e.player.state = &core.PlaybackState{
			Playing: true,
			Volume:  40,
			Device:  &core.Device{ID: "d1", Name: "Desk", Type: "Computer", Active: true},
			Track:   &track,
		}

		stdout, _, code := run(t, "now")
		if code != 0 {
			t.Fatalf("exit code = %d, want 0", code)
		}
		for _, want := range []string{"Harder Better", "Daft Punk", "Discovery", "3:44", "on Desk • 40%"} {
			if !strings.Contains(stdout, want) {
				t.Errorf("stdout missing %q:\n%s", want, stdout)
			}
		}
	})
}

func TestLoginLogout(t *testing.T) {
	t.Run("login", func(t *testing.T) {
		e := setup(t)
		e.auth.authenticated = false
		e.player.user = &core.User{ID: "u1", DisplayName: "Tess"}

		stdout, _, code := run(t, "login")
		if code != 0 {
			t.Fatalf("exit code = %d, want 0", code)
		}
		if !strings.Contains(stdout, "Successfully authenticated as Tess") {
			t.Errorf("stdout = %q", stdout)
		}
	})

	t.Run("login denied", func(t *testing.T) {
		e := setup(t)
		e.auth.loginErr = apperrors.Auth("login", apperrors.ErrAuthDenied)

		_, stderr, code := run(t, "login")
		if code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
		if !strings.Contains(stderr, "authorization denied") {
			t.Errorf("stderr = %q", stderr)
		}
	})

	t.Run("logout", func(t *testing.T) {
		e := setup(t)
		stdout, _, code := run(t, "logout", "--json")
		if code != 0 {
			t.Fatalf("exit code = %d, want 0", code)
		}
		if !e.auth.loggedOut {
			t.Error("Logout not called")
		}
		if !strings.Contains(stdout, `"status":"logged_out"`) {
			t.Errorf("stdout = %q", stdout)
		}
	})
}

func TestStatus(t *testing.T) {
	t.Run("no credential", func(t *testing.T) {
		setup(t)
		stdout, _, code := run(t, "status")
		if code != 0 {
			t.Fatalf("exit code = %d, want 0", code)
		}
		if !strings.Contains(stdout, "Not authenticated") {
			t.Errorf("stdout = %q", stdout)
		}
	})

	t.Run("authenticated", func(t *testing.T) {
		e := setup(t)
		e.auth.token = &auth.Token{AccessToken: "a", ExpiresAt: time.Now().Add(time.Hour).UnixMilli()}
		e.player.user = &core.User{ID: "u1", DisplayName: "Tess", Email: "t@example.com", Product: "premium"}

		stdout, _, code := run(t, "status")
		if code != 0 {
			t.Fatalf("exit code = %d, want 0", code)
		}
		for _, want := range []string{"Authenticated as: Tess (t@example.com)", "Account type: premium", "Token expires:"} {
			if !strings.Contains(stdout, want) {
				t.Errorf("stdout missing %q:\n%s", want, stdout)
			}
		}
	})
}

func TestDevicesTable(t *testing.T) {
	e := setup(t)
	e.player.devices = []core.Device{
		{ID: "d1", Name: "Desk", Type: "Computer", Active: true, Volume: 40},
		{ID: "d2", Name: "Kitchen", Type: "Speaker", Volume: 70},
	}

	stdout, _, code := run(t, "devices")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, want := range []string{"NAME", "Desk", "Kitchen", "Speaker", "d2"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestRecent(t *testing.T) {
	e := setup(t)
	e.player.history = []core.HistoryEntry{
		{Track: sampleTrack(), PlayedAt: time.Now().Add(-5 * time.Minute)},
	}

	stdout, _, code := run(t, "recent", "-n", "5")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if calls := e.player.Calls(); len(calls) != 1 || calls[0] != "RecentlyPlayed(5)" {
		t.Errorf("calls = %v, want [RecentlyPlayed(5)]", calls)
	}
	for _, want := range []string{"Harder Better", "minutes ago"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestQueue(t *testing.T) {
	e := setup(t)
	current := sampleTrack()
	e.player.queue = &core.Queue{
		Current: &current,
		Items: []core.Track{
			{ID: "t2", Name: "Digital Love", Artists: []string{"Daft Punk"}, Duration: 5 * time.Minute},
			{ID: "t3", Name: "Aerodynamic", Artists: []string{"Daft Punk"}, Duration: 3 * time.Minute},
			{ID: "t4", Name: "Voyager", Artists: []string{"Daft Punk"}, Duration: 4 * time.Minute},
		},
	}

	stdout, _, code := run(t, "queue", "-n", "2")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, want := range []string{"Now playing:", "Harder Better", "1. Digital Love", "2. Aerodynamic", "and 1 more"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "Voyager") {
		t.Errorf("stdout shows tracks past the limit:\n%s", stdout)
	}
	if strings.Index(stdout, "Digital Love") > strings.Index(stdout, "Aerodynamic") {
		t.Errorf("queue order not preserved:\n%s", stdout)
	}
}

func TestQueueEmpty(t *testing.T) {
	e := setup(t)
	e.player.queue = &core.Queue{}

	stdout, _, code := run(t, "queue")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if strings.TrimSpace(stdout) != "Queue is empty" {
		t.Errorf("stdout = %q, want Queue is empty", stdout)
	}

	stdout, _, code = run(t, "queue", "--json")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	var doc struct {
		Current *core.Track  `json:"current"`
		Items   []core.Track `json:"items"`
	}
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout, err)
	}
	if doc.Current != nil || doc.Items == nil || len(doc.Items) != 0 {
		t.Errorf("JSON = %s, want null current and empty items", stdout)
	}
}

func TestVersion(t *testing.T) {
	setup(t)

	stdout, _, code := run(t, "version", "--json")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	var doc map[string]string
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout, err)
	}
	if doc["version"] != Version {
		t.Errorf("version = %q, want %q", doc["version"], Version)
	}
}

func TestDefaultLaunchesPlayer(t *testing.T) {
	e := setup(t)

	_, _, code := run(t)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !e.ui {
		t.Error("interactive player not launched")
	}
}

func TestIsInteractive(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		want bool
	}{
		{cmd: rootCmd, want: true},
		{cmd: uiCmd, want: true},
		{cmd: pauseCmd, want: false},
		{cmd: recentCmd, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.Name(), func(t *testing.T) {
			if got := isInteractive(tt.cmd); got != tt.want {
				t.Errorf("isInteractive(%s) = %v, want %v", tt.cmd.Name(), got, tt.want)
			}
		})
	}
}

func TestDefaultWithoutLogin(t *testing.T) {
	e := setup(t)
	e.auth.authenticated = false

	stdout, stderr, code := run(t)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if e.ui {
		t.Error("interactive player launched without credentials")
	}
	for _, want := range []string{"Welcome to Spotify CLI!", "Run: spotify login"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
	if !strings.Contains(stdout, "    Welcome to Spotify CLI!") {
		t.Errorf("welcome title not centered:\n%s", stdout)
	}
}

func TestConfigInitAndPath(t *testing.T) {
	setup(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	stdout, _, code := run(t, "config", "path", "--config", path)
	if code != 0 {
		t.Fatalf("config path exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout, "(not created yet)") {
		t.Errorf("config path = %q, want not created yet", stdout)
	}

	stdout, _, code = run(t, "config", "init", "--config", path)
	if code != 0 {
		t.Fatalf("config init exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout, "Created config file: "+path) {
		t.Errorf("config init = %q", stdout)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for _, want := range []string{"# spotify-cli configuration", "[spotify]", "callback_port = 8888"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("config file missing %q:\n%s", want, data)
		}
	}

	// Not a terminal, so an existing file is left alone without --force.
	_, stderr, code := run(t, "config", "init", "--config", path)
	if code != 1 {
		t.Errorf("second config init exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "already exists") {
		t.Errorf("stderr = %q, want already exists", stderr)
	}
}

func TestConfigShow(t *testing.T) {
	setup(t)

	stdout, _, code := run(t, "config", "show")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout, `client_id = "test-client"`) {
		t.Errorf("config show = %q", stdout)
	}
}
