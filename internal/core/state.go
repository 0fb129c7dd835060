package core

// RepeatMode is the repeat setting of the player.
type RepeatMode string

const (
	RepeatOff     RepeatMode = "off"
	RepeatContext RepeatMode = "context"
	RepeatTrack   RepeatMode = "track"
)

// Next cycles off -> context -> track -> off.
func (r RepeatMode) Next() RepeatMode {
	switch r {
	case RepeatOff:
		return RepeatContext
	case RepeatContext:
		return RepeatTrack
	default:
		return RepeatOff
	}
}

// ParseRepeatMode maps a remote repeat_state onto a RepeatMode, defaulting to off.
func ParseRepeatMode(s string) RepeatMode {
	switch RepeatMode(s) {
	case RepeatContext:
		return RepeatContext
	case RepeatTrack:
		return RepeatTrack
	default:
		return RepeatOff
	}
}

// PlaybackState represents the full player state.
type PlaybackState struct {
	Playing bool       `json:"playing"`
	Shuffle bool       `json:"shuffle"`
	Repeat  RepeatMode `json:"repeat"`
	Volume  int        `json:"volume"`
	Device  *Device    `json:"device,omitempty"`
	Track   *Track     `json:"track,omitempty"`
}

// HasTrack returns true if there is an active track.
func (s *PlaybackState) HasTrack() bool {
	return s != nil && s.Track != nil
}
