// Package watch follows the remote playback state and reports what changed
// between polls.
package watch

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tessro/spotify-cli/internal/core"
)

// Kind classifies a playback change.
type Kind int

const (
	TrackChanged Kind = iota
	TrackFinished
	TrackSkipped
	Paused
	Resumed
	Stopped
	VolumeChanged
	DeviceChanged
)

func (k Kind) String() string {
	switch k {
	case TrackChanged:
		return "track_change"
	case TrackFinished:
		return "track_finish"
	case TrackSkipped:
		return "track_skip"
	case Paused:
		return "pause"
	case Resumed:
		return "resume"
	case Stopped:
		return "stop"
	case VolumeChanged:
		return "volume_change"
	case DeviceChanged:
		return "device_change"
	default:
		return "unknown"
	}
}

// finishedAt is the fraction of a track that counts as listened through.
const finishedAt = 0.95

// Event is one observed change.
type Event struct {
	Kind Kind
	At   time.Time
	Prev *core.PlaybackState
	Curr *core.PlaybackState
}

// Subject returns the track the event is about: the outgoing track for
// finish, skip and stop, otherwise the current one.
func (e Event) Subject() *core.Track {
	switch e.Kind {
	case TrackFinished, TrackSkipped, Stopped:
		if e.Prev != nil {
			return e.Prev.Track
		}
		return nil
	default:
		if e.Curr != nil {
			return e.Curr.Track
		}
		return nil
	}
}

// Watcher polls a player and emits the differences between polls.
type Watcher struct {
	player   core.Player
	interval time.Duration
	log      logrus.FieldLogger
	now      func() time.Time
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithInterval sets the poll interval.
func WithInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithLogger sets the logger used for skipped polls.
func WithLogger(log logrus.FieldLogger) Option {
	return func(w *Watcher) { w.log = log }
}

// New creates a Watcher polling every second.
func New(player core.Player, opts ...Option) *Watcher {
	w := &Watcher{
		player:   player,
		interval: time.Second,
		log:      logrus.StandardLogger(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run polls until ctx is done, sending events to out. It closes out on
// return. A failed poll is skipped and the previous state kept.
func (w *Watcher) Run(ctx context.Context, out chan<- Event) error {
	defer close(out)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var prev *core.PlaybackState
	first := true
	for {
		curr, err := w.player.PlaybackState(ctx)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w.log.WithError(err).Debug("Skipping poll")
		default:
			var events []Event
			if first {
				events = Initial(curr, w.now())
			} else {
				events = Diff(prev, curr, w.now())
			}
			for _, e := range events {
				select {
				case out <- e:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			prev, first = curr, false
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Initial reports the state found by the first poll.
func Initial(curr *core.PlaybackState, at time.Time) []Event {
	if !curr.HasTrack() {
		return nil
	}
	return []Event{{Kind: TrackChanged, At: at, Curr: curr}}
}

// Diff returns the changes from prev to curr in a fixed order: track, play
// state, volume, device.
func Diff(prev, curr *core.PlaybackState, at time.Time) []Event {
	var events []Event
	add := func(k Kind) {
		events = append(events, Event{Kind: k, At: at, Prev: prev, Curr: curr})
	}

	switch {
	case prev.HasTrack() && !curr.HasTrack():
		add(Stopped)
		return events
	case !prev.HasTrack() && curr.HasTrack():
		add(TrackChanged)
	case prev.HasTrack() && curr.HasTrack() && prev.Track.URI != curr.Track.URI:
		if finished(prev.Track) {
			add(TrackFinished)
		} else {
			add(TrackSkipped)
		}
		add(TrackChanged)
	}
	if !curr.HasTrack() {
		return events
	}

	if prev.HasTrack() {
		switch {
		case prev.Playing && !curr.Playing:
			add(Paused)
		case !prev.Playing && curr.Playing:
			add(Resumed)
		}
		if prev.Volume != curr.Volume {
			add(VolumeChanged)
		}
		if deviceID(prev) != deviceID(curr) {
			add(DeviceChanged)
		}
	}
	return events
}

func finished(t *core.Track) bool {
	if t.Duration <= 0 {
		return false
	}
	return float64(t.Position()) >= float64(t.Duration)*finishedAt
}

func deviceID(s *core.PlaybackState) string {
	if s == nil || s.Device == nil {
		return ""
	}
	return s.Device.ID
}
