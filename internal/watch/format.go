package watch

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// Formatter renders events as single lines.
type Formatter struct {
	emoji     bool
	timestamp bool
	tmpl      *template.Template
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithEmoji toggles the leading emoji.
func WithEmoji(on bool) FormatterOption {
	return func(f *Formatter) { f.emoji = on }
}

// WithTimestamp toggles the leading HH:MM:SS.
func WithTimestamp(on bool) FormatterOption {
	return func(f *Formatter) { f.timestamp = on }
}

// NewFormatter creates a Formatter. tmpl, when non-empty, is a text/template
// over Fields and replaces the default line.
func NewFormatter(tmpl string, opts ...FormatterOption) (*Formatter, error) {
	f := &Formatter{emoji: true}
	for _, opt := range opts {
		opt(f)
	}
	if tmpl != "" {
		t, err := template.New("event").Parse(tmpl)
		if err != nil {
			return nil, fmt.Errorf("invalid format template: %w", err)
		}
		f.tmpl = t
	}
	return f, nil
}

// Fields is the flat view of an event used by templates and JSON output.
type Fields struct {
	Type    string    `json:"type"`
	Emoji   string    `json:"-"`
	At      time.Time `json:"at"`
	Time    string    `json:"-"`
	Title   string    `json:"title,omitempty"`
	Artists string    `json:"artists,omitempty"`
	Album   string    `json:"album,omitempty"`
	URI     string    `json:"uri,omitempty"`
	Device  string    `json:"device,omitempty"`
	Volume  int       `json:"volume"`
}

// FieldsOf flattens e.
func FieldsOf(e Event) Fields {
	fields := Fields{
		Type:  e.Kind.String(),
		Emoji: emoji(e.Kind),
		At:    e.At,
		Time:  e.At.Format("15:04:05"),
	}
	if t := e.Subject(); t != nil {
		fields.Title = t.Name
		fields.Artists = t.ArtistNames()
		fields.Album = t.Album
		fields.URI = t.URI
	}
	if e.Curr != nil {
		fields.Volume = e.Curr.Volume
		if e.Curr.Device != nil {
			fields.Device = e.Curr.Device.Name
		}
	}
	return fields
}

// Format renders e.
func (f *Formatter) Format(e Event) string {
	fields := FieldsOf(e)
	if f.tmpl != nil {
		var buf bytes.Buffer
		if err := f.tmpl.Execute(&buf, fields); err == nil {
			return buf.String()
		}
	}

	var parts []string
	if f.timestamp {
		parts = append(parts, fields.Time)
	}
	if f.emoji {
		parts = append(parts, fields.Emoji)
	}
	parts = append(parts, describe(e.Kind, fields))
	return strings.Join(parts, " ")
}

func describe(k Kind, f Fields) string {
	track := func(verb, fallback string) string {
		if f.Title == "" {
			return fallback
		}
		return fmt.Sprintf("%s: %s by %s", verb, f.Title, f.Artists)
	}

	switch k {
	case TrackChanged:
		return track("Now playing", "Track changed")
	case TrackFinished:
		return track("Finished", "Track finished")
	case TrackSkipped:
		return track("Skipped", "Track skipped")
	case Stopped:
		return "Playback stopped"
	case Paused:
		return "Paused"
	case Resumed:
		return "Resumed"
	case VolumeChanged:
		return fmt.Sprintf("Volume: %d%%", f.Volume)
	case DeviceChanged:
		if f.Device == "" {
			return "Device changed"
		}
		return "Device: " + f.Device
	default:
		return "Unknown event"
	}
}

func emoji(k Kind) string {
	switch k {
	case TrackChanged:
		return "🎵"
	case TrackFinished:
		return "✅"
	case TrackSkipped:
		return "⏭️"
	case Paused:
		return "⏸️"
	case Resumed:
		return "▶️"
	case Stopped:
		return "⏹️"
	case VolumeChanged:
		return "🔊"
	case DeviceChanged:
		return "📱"
	default:
		return "❓"
	}
}
