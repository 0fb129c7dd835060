package wizard

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/tessro/spotify-cli/internal/core"
	"github.com/tessro/spotify-cli/internal/format"
)

// TrackOptions builds picker options keyed by track URI.
func TrackOptions(tracks []core.Track) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(tracks))
	for _, t := range tracks {
		label := fmt.Sprintf("%s • %s • %s",
			format.Truncate(t.Name, 40),
			format.Truncate(t.ArtistNames(), 30),
			format.Duration(t.Duration))
		options = append(options, huh.NewOption(label, t.URI))
	}
	return options
}

// PickTrack asks the user to choose one of the search matches for query.
// It returns nil when the user cancels.
func PickTrack(ctx context.Context, query string, tracks []core.Track) (*core.Track, error) {
	if len(tracks) == 0 {
		return nil, nil
	}
	uri := tracks[0].URI

	ok, err := selectOne(ctx,
		fmt.Sprintf("Results for %q", query),
		"Pick a track to play",
		TrackOptions(tracks), &uri)
	if err != nil || !ok {
		return nil, err
	}
	for i := range tracks {
		if tracks[i].URI == uri {
			return &tracks[i], nil
		}
	}
	return nil, nil
}
