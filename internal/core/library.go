package core

import "time"

// Playlist represents a playlist owned or followed by the user.
type Playlist struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TrackCount  int    `json:"track_count"`
	Owner       string `json:"owner"`
	URI         string `json:"uri"`
	Public      bool   `json:"public"`
}

// Album is an album search result.
type Album struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Artists     []string `json:"artists"`
	URI         string   `json:"uri"`
	ReleaseDate string   `json:"release_date"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

// Artist is an artist search result.
type Artist struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	URI       string   `json:"uri"`
	Followers int      `json:"followers"`
	Genres    []string `json:"genres"`
}

// HistoryEntry represents a recently played track.
type HistoryEntry struct {
	Track    Track     `json:"track"`
	PlayedAt time.Time `json:"played_at"`
}

// User is the current user's profile.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Product     string `json:"product"`
}
