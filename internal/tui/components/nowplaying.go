package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tessro/spotify-cli/internal/core"
	"github.com/tessro/spotify-cli/internal/format"
	"github.com/tessro/spotify-cli/internal/tui/styles"
)

// NowPlaying renders a playback state as a full panel.
type NowPlaying struct {
	ProgressWidth int
}

// NewNowPlaying creates a new NowPlaying component
func NewNowPlaying(progressWidth int) NowPlaying {
	return NowPlaying{ProgressWidth: progressWidth}
}

// Render renders the now playing panel. state must carry a track.
func (n NowPlaying) Render(state *core.PlaybackState) string {
	track := state.Track

	title := styles.StatusIcon(state.Playing) + " " + styles.Title.Render(track.Name)
	artists := styles.Subtitle.Render(track.ArtistNames())
	album := styles.Dim.Render(track.Album)

	bar := format.ProgressBar(track.Position(), track.Duration, n.ProgressWidth)
	progress := fmt.Sprintf("%s %s %s",
		format.Duration(track.Position()),
		styles.ProgressBar(bar),
		format.Duration(track.Duration))

	shuffle := "OFF"
	if state.Shuffle {
		shuffle = "ON"
	}
	settings := styles.Muted.Render(fmt.Sprintf("Shuffle %s   Repeat %s   Volume %d%%",
		shuffle, styles.RepeatIcon(state.Repeat), state.Volume))

	lines := []string{title, "  " + artists, "  " + album, "", progress, "", settings}
	if state.Device != nil {
		lines = append(lines, styles.Dim.Render(fmt.Sprintf("Playing on: %s (%s)", state.Device.Name, state.Device.Type)))
	}

	return styles.Panel(true).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// MiniNowPlaying renders a one-line summary for the home screen.
func MiniNowPlaying(track *core.Track) string {
	if track == nil {
		return styles.Muted.Render("Nothing playing right now")
	}
	return fmt.Sprintf("%s %s %s",
		styles.StatusIcon(track.Playing),
		styles.Title.Render(format.Truncate(track.Name, 35)),
		styles.Subtitle.Render("• "+format.Truncate(track.ArtistNames(), 30)))
}
