package core

// SearchType selects result categories; values combine as a bitmask.
type SearchType int

const (
	SearchTracks SearchType = 1 << iota
	SearchAlbums
	SearchArtists
	SearchPlaylists

	SearchAll = SearchTracks | SearchAlbums | SearchArtists | SearchPlaylists
)

// Has reports whether t includes every category in other.
func (t SearchType) Has(other SearchType) bool {
	return t&other == other
}

// SearchResults holds one ordered sequence per category.
type SearchResults struct {
	Tracks    []Track    `json:"tracks"`
	Albums    []Album    `json:"albums"`
	Artists   []Artist   `json:"artists"`
	Playlists []Playlist `json:"playlists"`
}

// Empty returns true if no category has results.
func (r *SearchResults) Empty() bool {
	return r == nil || len(r.Tracks)+len(r.Albums)+len(r.Artists)+len(r.Playlists) == 0
}
