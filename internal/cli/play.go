package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tessro/spotify-cli/internal/core"
	apperrors "github.com/tessro/spotify-cli/internal/errors"
	"github.com/tessro/spotify-cli/internal/wizard"
)

const pickLimit = 10

var (
	playURI  string
	playPick bool
)

var playCmd = &cobra.Command{
	Use:   "play [query]",
	Short: "Play a track or resume playback",
	Long: `Search for a track and play the best match.
Without arguments, resumes current playback.

Examples:
  spotify play                      # Resume playback
  spotify play bohemian rhapsody    # Search and play a track
  spotify play --pick daft punk     # Choose among the matches
  spotify play --uri spotify:album:xxx`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playURI, "uri", "", "play a specific Spotify URI")
	playCmd.Flags().BoolVar(&playPick, "pick", false, "choose among the top matches interactively")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	query := strings.TrimSpace(strings.Join(args, " "))

	p, err := connect(ctx)
	if err != nil {
		return err
	}

	if playURI != "" {
		if err := p.Play(ctx, playURI); err != nil {
			return err
		}
		return result(out, "playing", "▶ Playing "+playURI, map[string]any{"uri": playURI})
	}

	if query == "" {
		if err := p.Play(ctx, ""); err != nil {
			return err
		}
		return result(out, "resumed", "▶ Playback resumed", nil)
	}

	limit := 1
	if playPick && isTerminal() {
		limit = pickLimit
	}
	results, err := p.Search(ctx, query, core.SearchTracks, limit)
	if err != nil {
		return err
	}
	if len(results.Tracks) == 0 {
		return apperrors.WithSuggestion(
			fmt.Errorf("%w for %q", apperrors.ErrNoMatch, query),
			"Try a different search")
	}

	track := &results.Tracks[0]
	if limit > 1 {
		track, err = wizard.PickTrack(ctx, query, results.Tracks)
		if err != nil {
			return err
		}
		if track == nil {
			return result(out, "cancelled", "Nothing selected", nil)
		}
	}

	if err := p.Play(ctx, track.URI); err != nil {
		return err
	}
	return result(out, "playing",
		fmt.Sprintf("▶ Now playing: %s by %s", track.Name, track.ArtistNames()),
		map[string]any{"track": track})
}
