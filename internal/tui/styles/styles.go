package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tessro/spotify-cli/internal/core"
)

// Colors
var (
	SpotifyGreen = lipgloss.Color("#1DB954")

	Primary   = lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#7C3AED"}
	Success   = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#10B981"}
	Warning   = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"}
	Error     = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#EF4444"}
	Border    = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
	Text      = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}
	TextMuted = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}
	TextDim   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
)

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextMuted)

	Highlight = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	Playing = lipgloss.NewStyle().
		Foreground(SpotifyGreen)

	Paused = lipgloss.NewStyle().
		Foreground(Warning)

	Brand = lipgloss.NewStyle().
		Bold(true).
		Foreground(SpotifyGreen)

	SuccessText = lipgloss.NewStyle().
		Foreground(Success)

	ErrorText = lipgloss.NewStyle().
		Foreground(Error)

	Banner = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Border styles
var (
	BorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)

	FocusedBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary)

	App = lipgloss.NewStyle().
		Padding(1, 2)
)

// ApplyTheme forces a light or dark palette; "auto" keeps terminal detection.
func ApplyTheme(theme string) {
	switch theme {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}
}

// Panel returns the bordered panel style.
func Panel(focused bool) lipgloss.Style {
	if focused {
		return FocusedBorder.Padding(0, 1)
	}
	return BorderStyle.Padding(0, 1)
}

// ProgressBar colors a format.ProgressBar: elapsed in green, remainder dim.
func ProgressBar(bar string) string {
	runes := []rune(bar)
	split := len(runes)
	for i, r := range runes {
		if r != '━' {
			split = i
			break
		}
	}
	if split < len(runes) && runes[split] == '●' {
		split++
	}
	return Playing.Render(string(runes[:split])) + Dim.Render(string(runes[split:]))
}

// StatusIcon returns an icon for playback status
func StatusIcon(playing bool) string {
	if playing {
		return Playing.Render("▶")
	}
	return Paused.Render("⏸")
}

// DeviceIcon returns an icon for device type
func DeviceIcon(t core.DeviceType) string {
	switch t {
	case core.DeviceTypeComputer:
		return "💻"
	case core.DeviceTypeSmartphone, core.DeviceTypeTablet:
		return "📱"
	case core.DeviceTypeSpeaker, core.DeviceTypeCastAudio:
		return "🔊"
	case core.DeviceTypeTV, core.DeviceTypeCastVideo:
		return "📺"
	case core.DeviceTypeAutomobile:
		return "🚗"
	default:
		return "🎵"
	}
}

// RepeatIcon renders a repeat mode.
func RepeatIcon(mode core.RepeatMode) string {
	switch mode {
	case core.RepeatTrack:
		return "🔂"
	case core.RepeatContext:
		return "🔁"
	default:
		return "OFF"
	}
}

// Header renders the application title bar centered in width columns.
func Header(width int) string {
	title := Brand.Render("♫ SPOTIFY CLI") + Muted.Render(" • Your music, your terminal")
	if width <= 0 {
		return title
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, title)
}
