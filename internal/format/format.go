// Package format renders view models as fixed-width text.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

const (
	barFilled = "━"
	barHead   = "●"
	barEmpty  = "─"
	ellipsis  = "…"
)

// Ambiguous-width runes count as one column regardless of locale.
var width = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Duration formats d as M:SS, flooring to the second.
func Duration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// ProgressBar renders exactly n glyphs. Progress past the duration renders
// as full; a non-positive duration renders as empty.
func ProgressBar(progress, duration time.Duration, n int) string {
	if n <= 0 {
		return ""
	}
	if duration <= 0 {
		return strings.Repeat(barEmpty, n)
	}

	frac := float64(progress) / float64(duration)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	filled := int(frac * float64(n))
	if filled >= n {
		return strings.Repeat(barFilled, n)
	}
	return strings.Repeat(barFilled, filled) + barHead + strings.Repeat(barEmpty, n-filled-1)
}

// Truncate shortens s to at most max display columns, ending with an
// ellipsis when anything was cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	return width.Truncate(s, max, ellipsis)
}

// Width returns the display width of s.
func Width(s string) int {
	return width.StringWidth(s)
}

// Number abbreviates large counts: 1234 → 1.2K, 5600000 → 5.6M.
func Number(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// PadCenter centers s in n columns, putting the odd column on the right.
func PadCenter(s string, n int) string {
	w := Width(s)
	if w >= n {
		return s
	}
	left := (n - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", n-w-left)
}

// Ago describes t relative to now, e.g. "3 minutes ago".
func Ago(t time.Time) string {
	return AgoFrom(t, time.Now())
}

// AgoFrom describes t relative to now.
func AgoFrom(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
