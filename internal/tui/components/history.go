package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/tessro/spotify-cli/internal/core"
	"github.com/tessro/spotify-cli/internal/format"
	"github.com/tessro/spotify-cli/internal/tui/styles"
)

// History renders recently played tracks, newest first, with the time since
// each play right-aligned in width columns.
func History(entries []core.HistoryEntry, width int, now time.Time) string {
	if len(entries) == 0 {
		return styles.Muted.Render("No recently played tracks")
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		ago := format.AgoFrom(entry.PlayedAt, now)

		// Icon prefix, separator and the gap before the time.
		available := width - 2 - 3 - 1 - format.Width(ago)
		if available < 10 {
			available = 10
		}
		artistSpace := available / 3
		title := format.Truncate(entry.Track.Name, available-artistSpace)
		artist := format.Truncate(entry.Track.ArtistNames(), artistSpace)

		info := fmt.Sprintf("%s — %s", title, artist)
		pad := width - 2 - format.Width(info) - format.Width(ago)
		if pad < 1 {
			pad = 1
		}
		lines = append(lines, fmt.Sprintf("%s %s%s%s",
			styles.Dim.Render("✓"), info, strings.Repeat(" ", pad), styles.Dim.Render(ago)))
	}
	return strings.Join(lines, "\n")
}
