package core

import (
	"testing"
	"time"
)

func TestRepeatModeNext(t *testing.T) {
	tests := []struct {
		in   RepeatMode
		want RepeatMode
	}{
		{RepeatOff, RepeatContext},
		{RepeatContext, RepeatTrack},
		{RepeatTrack, RepeatOff},
		{RepeatMode("bogus"), RepeatOff},
	}

	for _, tt := range tests {
		if got := tt.in.Next(); got != tt.want {
			t.Errorf("%q.Next() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseRepeatMode(t *testing.T) {
	for in, want := range map[string]RepeatMode{
		"off":     RepeatOff,
		"context": RepeatContext,
		"track":   RepeatTrack,
		"":        RepeatOff,
	} {
		if got := ParseRepeatMode(in); got != want {
			t.Errorf("ParseRepeatMode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClampVolume(t *testing.T) {
	for v := -50; v <= 200; v += 7 {
		got := ClampVolume(v)
		if got < 0 || got > 100 {
			t.Fatalf("ClampVolume(%d) = %d, out of range", v, got)
		}
		if v >= 0 && v <= 100 && got != v {
			t.Errorf("ClampVolume(%d) = %d, want %d", v, got, v)
		}
	}
}

func TestClampProgress(t *testing.T) {
	d := 3 * time.Minute
	if got := ClampProgress(-time.Second, d); got != 0 {
		t.Errorf("ClampProgress(negative) = %v, want 0", got)
	}
	if got := ClampProgress(5*time.Minute, d); got != d {
		t.Errorf("ClampProgress(over) = %v, want %v", got, d)
	}
	if got := ClampProgress(time.Minute, d); got != time.Minute {
		t.Errorf("ClampProgress(in range) = %v, want %v", got, time.Minute)
	}
}

func TestActiveDevice(t *testing.T) {
	devices := []Device{
		{ID: "a", Name: "Laptop"},
		{ID: "b", Name: "Phone", Active: true},
	}
	if got := ActiveDevice(devices); got == nil || got.ID != "b" {
		t.Errorf("ActiveDevice() = %v, want device b", got)
	}

	devices[0].Active = true
	if got := ActiveDevice(devices); got != nil {
		t.Errorf("ActiveDevice() with two active = %v, want nil", got)
	}
	if got := ActiveDevice(nil); got != nil {
		t.Errorf("ActiveDevice(nil) = %v, want nil", got)
	}
}

func TestSearchType(t *testing.T) {
	if !SearchAll.Has(SearchPlaylists) {
		t.Error("SearchAll should include playlists")
	}
	if SearchTracks.Has(SearchAlbums) {
		t.Error("SearchTracks should not include albums")
	}

	var r *SearchResults
	if !r.Empty() {
		t.Error("nil results should be empty")
	}
	r = &SearchResults{Artists: []Artist{{Name: "A"}}}
	if r.Empty() {
		t.Error("results with an artist should not be empty")
	}
}

func TestArtistNames(t *testing.T) {
	tr := &Track{Artists: []string{"One", "Two"}}
	if got, want := tr.ArtistNames(), "One, Two"; got != want {
		t.Errorf("ArtistNames() = %q, want %q", got, want)
	}
	var nilTrack *Track
	if got := nilTrack.ArtistNames(); got != "" {
		t.Errorf("nil ArtistNames() = %q, want empty", got)
	}
}

func TestQueueEmpty(t *testing.T) {
	track := Track{ID: "t1"}
	tests := []struct {
		name  string
		queue *Queue
		empty bool
		len   int
	}{
		{name: "nil", queue: nil, empty: true},
		{name: "idle", queue: &Queue{}, empty: true},
		{name: "playing only", queue: &Queue{Current: &track}, empty: false},
		{name: "queued only", queue: &Queue{Items: []Track{track}}, empty: false, len: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.queue.Empty(); got != tt.empty {
				t.Errorf("Empty() = %v, want %v", got, tt.empty)
			}
			if got := tt.queue.Len(); got != tt.len {
				t.Errorf("Len() = %d, want %d", got, tt.len)
			}
		})
	}
}
