package tui

import "github.com/charmbracelet/bubbles/key"

var (
	keyUp      = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	keyDown    = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	keySelect  = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select"))
	keyBack    = key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "back"))
	keyEsc     = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	keyQuit    = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	keyRefresh = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh"))
)

type homeKeys struct{}

func (homeKeys) ShortHelp() []key.Binding {
	return []key.Binding{keyUp, keyDown, keySelect, keyQuit}
}

func (k homeKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type nowPlayingKeys struct {
	Toggle     key.Binding
	Next       key.Binding
	Prev       key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Shuffle    key.Binding
	Repeat     key.Binding
}

var nowPlayingKeyMap = nowPlayingKeys{
	Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
	Next:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next")),
	Prev:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "prev")),
	VolumeUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "vol up")),
	VolumeDown: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "vol down")),
	Shuffle:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shuffle")),
	Repeat:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "repeat")),
}

func (k nowPlayingKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Next, k.Prev, k.VolumeUp, k.VolumeDown, k.Shuffle, k.Repeat, keyBack}
}

func (k nowPlayingKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type searchKeys struct {
	Search  key.Binding
	Queue   key.Binding
	PlayNow key.Binding
}

var searchKeyMap = searchKeys{
	Search:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
	Queue:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add to queue")),
	PlayNow: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "play now")),
}

// searchHelp switches bindings with the search mode.
type searchHelp struct{ results bool }

func (h searchHelp) ShortHelp() []key.Binding {
	if h.results {
		return []key.Binding{keyUp, keyDown, searchKeyMap.Queue, searchKeyMap.PlayNow, keyEsc}
	}
	return []key.Binding{searchKeyMap.Search, keyEsc}
}

func (h searchHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

var keyPlayAll = key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "play all"))

type playlistsHelp struct{ tracks bool }

func (h playlistsHelp) ShortHelp() []key.Binding {
	sel := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))
	if h.tracks {
		sel = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play"))
	}
	return []key.Binding{keyUp, keyDown, sel, keyPlayAll, keyBack}
}

func (h playlistsHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

type devicesKeys struct{}

func (devicesKeys) ShortHelp() []key.Binding {
	transfer := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "transfer"))
	return []key.Binding{keyUp, keyDown, transfer, keyRefresh, keyBack}
}

func (k devicesKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
