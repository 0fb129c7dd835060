package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tessro/spotify-cli/internal/core"
	"github.com/tessro/spotify-cli/internal/format"
	"github.com/tessro/spotify-cli/internal/tui/components"
	"github.com/tessro/spotify-cli/internal/tui/styles"
)

type searchMode int

const (
	searchInput searchMode = iota
	searchLoading
	searchResults
)

type searchDoneMsg struct {
	query   string
	results *core.SearchResults
	err     error
}

type search struct {
	deps    *deps
	mode    searchMode
	input   textinput.Model
	spinner spinner.Model
	list    components.List

	query  string
	tracks []core.Track
	err    error
	status status
}

func newSearch(d *deps) *search {
	ti := textinput.New()
	ti.Placeholder = "Search for tracks..."
	ti.CharLimit = 100
	ti.Width = 50
	ti.Prompt = "🔍 "
	ti.Focus()

	return &search{
		deps:    d,
		input:   ti,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Playing)),
		list:    components.NewList(d.opts.SearchLimit),
	}
}

func (s *search) Init() tea.Cmd {
	return textinput.Blink
}

func (s *search) run(query string) tea.Cmd {
	limit := s.deps.opts.SearchLimit
	return s.deps.request(func(ctx context.Context) tea.Msg {
		res, err := s.deps.player.Search(ctx, query, core.SearchTracks, limit)
		return searchDoneMsg{query: query, results: res, err: err}
	})
}

func (s *search) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDoneMsg:
		if s.mode != searchLoading || msg.query != s.query {
			return s, nil
		}
		s.err = msg.err
		if msg.err != nil {
			s.mode = searchInput
			s.input.Focus()
			return s, textinput.Blink
		}
		s.tracks = nil
		if msg.results != nil {
			s.tracks = msg.results.Tracks
		}
		s.list.SetLen(len(s.tracks))
		s.list.Reset()
		s.mode = searchResults
		return s, nil

	case actionDoneMsg:
		return s, s.status.report(s.deps, msg)

	case statusExpiredMsg:
		s.status.expire(msg)
		return s, nil

	case spinner.TickMsg:
		if s.mode != searchLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		switch s.mode {
		case searchInput:
			return s.handleInputKey(msg)
		case searchResults:
			return s.handleResultsKey(msg)
		default:
			if key.Matches(msg, keyEsc) {
				return s.toInput()
			}
			return s, nil
		}
	}

	if s.mode == searchInput {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *search) handleInputKey(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, keyEsc):
		return s, back()
	case key.Matches(msg, searchKeyMap.Search):
		query := strings.TrimSpace(s.input.Value())
		if query == "" {
			return s, nil
		}
		s.query = query
		s.err = nil
		s.mode = searchLoading
		s.input.Blur()
		return s, tea.Batch(s.spinner.Tick, s.run(query))
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *search) handleResultsKey(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, keyEsc):
		return s.toInput()
	case key.Matches(msg, keyUp):
		s.list.Up()
	case key.Matches(msg, keyDown):
		s.list.Down()
	case key.Matches(msg, searchKeyMap.Queue):
		if t := s.selected(); t != nil {
			uri := t.URI
			return s, s.deps.action("✓ Added to queue!", "", func(ctx context.Context) error {
				return s.deps.player.AddToQueue(ctx, uri)
			})
		}
	case key.Matches(msg, searchKeyMap.PlayNow):
		if t := s.selected(); t != nil {
			uri := t.URI
			return s, s.deps.action("✓ Now playing!", "", func(ctx context.Context) error {
				return s.deps.player.Play(ctx, uri)
			})
		}
	}
	return s, nil
}

func (s *search) toInput() (Screen, tea.Cmd) {
	s.mode = searchInput
	s.tracks = nil
	s.list.SetLen(0)
	s.input.Focus()
	return s, textinput.Blink
}

func (s *search) selected() *core.Track {
	i := s.list.Cursor()
	if i < 0 || i >= len(s.tracks) {
		return nil
	}
	return &s.tracks[i]
}

func trackLabel(t core.Track) string {
	return format.Truncate(t.Name, 30) + " • " +
		format.Truncate(t.ArtistNames(), 20) + " • " +
		format.Duration(t.Duration)
}

func (s *search) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Search"))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	switch s.mode {
	case searchLoading:
		b.WriteString(s.spinner.View() + " Searching...")
	case searchResults:
		if len(s.tracks) == 0 {
			b.WriteString(styles.Muted.Render("No results found. Try a different search."))
			break
		}
		labels := make([]string, len(s.tracks))
		for i, t := range s.tracks {
			labels[i] = trackLabel(t)
		}
		b.WriteString(s.list.Render(labels))
	}

	if s.err != nil {
		b.WriteString(styles.Banner.Render("Search failed. Please try again."))
	}
	if st := s.status.View(); st != "" {
		b.WriteString("\n\n")
		b.WriteString(st)
	}
	return b.String()
}

func (s *search) Help() help.KeyMap { return searchHelp{results: s.mode == searchResults} }
