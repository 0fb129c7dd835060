package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/tessro/spotify-cli/internal/format"
	"github.com/tessro/spotify-cli/internal/tui/styles"
)

// Table provides a simple table formatter.
type Table struct {
	w *tabwriter.Writer
}

// NewTable creates a table writing to out with the given headers.
func NewTable(out io.Writer, headers ...string) *Table {
	t := &Table{w: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)}
	if len(headers) > 0 {
		t.Row(headers...)
	}
	return t
}

// Row adds a row to the table.
func (t *Table) Row(values ...string) {
	_, _ = t.w.Write([]byte(strings.Join(values, "\t") + "\n"))
}

// Flush writes the table output.
func (t *Table) Flush() {
	_ = t.w.Flush()
}

// printJSON writes v as one JSON document.
func printJSON(out io.Writer, v any) error {
	return json.NewEncoder(out).Encode(v)
}

// printf writes a line to out.
func printf(out io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(out, format+"\n", args...)
}

// result prints a one-line outcome, or {"status": status, ...fields} with --json.
func result(out io.Writer, status, text string, fields map[string]any) error {
	if JSONOutput() {
		doc := map[string]any{"status": status}
		for k, v := range fields {
			doc[k] = v
		}
		return printJSON(out, doc)
	}
	printf(out, "%s", text)
	return nil
}

// StatusIcon returns an icon for the given boolean status.
func StatusIcon(active bool) string {
	if active {
		return "●"
	}
	return "○"
}

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(styles.SpotifyGreen).
	Padding(1, 2)

// box draws lines inside a rounded green border.
func box(lines ...string) string {
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// centeredBox is box with every line centered on the widest one.
func centeredBox(lines ...string) string {
	w := 0
	for _, l := range lines {
		w = max(w, format.Width(l))
	}
	centered := make([]string, len(lines))
	for i, l := range lines {
		centered[i] = format.PadCenter(l, w)
	}
	return box(centered...)
}
