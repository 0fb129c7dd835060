package format

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{999 * time.Millisecond, "0:00"},
		{5 * time.Second, "0:05"},
		{3*time.Minute + 7*time.Second, "3:07"},
		{75*time.Minute + 3*time.Second + 900*time.Millisecond, "75:03"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		if got := Duration(tt.in); got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProgressBarWidth(t *testing.T) {
	const d = 200 * time.Second
	for _, n := range []int{1, 2, 10, 35} {
		for p := time.Duration(0); p <= 2*d; p += 7 * time.Second {
			bar := ProgressBar(p, d, n)
			if got := utf8.RuneCountInString(bar); got != n {
				t.Fatalf("ProgressBar(%v, %v, %d) has %d glyphs, want %d", p, d, n, got, n)
			}
		}
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name     string
		progress time.Duration
		duration time.Duration
		width    int
		want     string
	}{
		{"start", 0, 10 * time.Second, 5, "●────"},
		{"half", 5 * time.Second, 10 * time.Second, 4, "━━●─"},
		{"end", 10 * time.Second, 10 * time.Second, 4, "━━━━"},
		{"overrun", 30 * time.Second, 10 * time.Second, 4, "━━━━"},
		{"negative", -time.Second, 10 * time.Second, 3, "●──"},
		{"zero duration", 5 * time.Second, 0, 3, "───"},
		{"zero width", time.Second, time.Second, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressBar(tt.progress, tt.duration, tt.width); got != tt.want {
				t.Errorf("ProgressBar() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s    string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 5, "hell…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
		{"", 3, ""},
		{"日本語のタイトル", 5, "日本…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.s, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
		}
	}
}

func TestTruncateProperty(t *testing.T) {
	inputs := []string{"", "a", "abcdef", "Bohemian Rhapsody - Remastered 2011", "Sigur Rós", "日本語", "🎵 emoji title"}
	for _, s := range inputs {
		for max := 1; max <= 40; max++ {
			got := Truncate(s, max)
			if w := Width(got); w > max {
				t.Errorf("Truncate(%q, %d) width = %d", s, max, w)
			}
			cut := Width(s) > max
			if strings.HasSuffix(got, ellipsis) != cut {
				t.Errorf("Truncate(%q, %d) = %q; ellipsis %v, want %v", s, max, got, !cut, cut)
			}
		}
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{3400, "3.4K"},
		{1_234_567, "1.2M"},
	}
	for _, tt := range tests {
		if got := Number(tt.in); got != tt.want {
			t.Errorf("Number(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPadCenter(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"ab", 6, "  ab  "},
		{"ab", 5, " ab  "},
		{"abc", 2, "abc"},
		{"", 2, "  "},
	}
	for _, tt := range tests {
		if got := PadCenter(tt.s, tt.n); got != tt.want {
			t.Errorf("PadCenter(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
		}
	}
}

func TestAgoFrom(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-3 * time.Minute), "3 minutes ago"},
		{now.Add(-2 * time.Hour), "2 hours ago"},
		{now, "now"},
	}
	for _, tt := range tests {
		if got := AgoFrom(tt.t, now); got != tt.want {
			t.Errorf("AgoFrom(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}
