package components

import (
	"fmt"
	"strings"

	"github.com/tessro/spotify-cli/internal/tui/styles"
)

// List is a cursor over n items shown through a fixed-size window.
type List struct {
	n      int
	cursor int
	offset int
	window int
}

// NewList creates a list that shows at most window rows (0 shows all).
func NewList(window int) List {
	return List{window: window}
}

// SetLen updates the item count, keeping the cursor in range.
func (l *List) SetLen(n int) {
	l.n = n
	if l.cursor >= n {
		l.cursor = n - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.scroll()
}

// Len returns the item count.
func (l *List) Len() int {
	return l.n
}

// Reset moves the cursor back to the first item.
func (l *List) Reset() {
	l.cursor = 0
	l.offset = 0
}

// Up moves the cursor up one item.
func (l *List) Up() {
	if l.cursor > 0 {
		l.cursor--
	}
	l.scroll()
}

// Down moves the cursor down one item.
func (l *List) Down() {
	if l.cursor < l.n-1 {
		l.cursor++
	}
	l.scroll()
}

// Cursor returns the selected index, or -1 when the list is empty.
func (l *List) Cursor() int {
	if l.n == 0 {
		return -1
	}
	return l.cursor
}

func (l *List) scroll() {
	if l.window <= 0 {
		l.offset = 0
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.window {
		l.offset = l.cursor - l.window + 1
	}
	if last := l.n - l.window; l.offset > last {
		l.offset = last
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// Visible returns the half-open index range currently in the window.
func (l *List) Visible() (start, end int) {
	start, end = l.offset, l.n
	if l.window > 0 && end > start+l.window {
		end = start + l.window
	}
	return start, end
}

// Render draws labels for the visible rows with a selector on the cursor.
// len(labels) should equal Len().
func (l *List) Render(labels []string) string {
	var b strings.Builder
	start, end := l.Visible()
	if end > len(labels) {
		end = len(labels)
	}

	if start > 0 {
		b.WriteString(styles.Dim.Render(fmt.Sprintf("  ↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		if i == l.cursor {
			b.WriteString(styles.Highlight.Render("▸ " + labels[i]))
		} else {
			b.WriteString("  " + labels[i])
		}
		b.WriteString("\n")
	}
	if rest := len(labels) - end; rest > 0 {
		b.WriteString(styles.Dim.Render(fmt.Sprintf("  …and %d more", rest)))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
