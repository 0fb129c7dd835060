package cli

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tessro/spotify-cli/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui"},
	Short:   "Launch the interactive player",
	Long: `Launch the interactive terminal player. This is also what runs when
spotify is started without a command.

Screens:
  Now Playing  current track, progress, shuffle/repeat, volume
  Search       find tracks, queue them or play them now
  Playlists    browse your playlists and play from any track
  Devices      move playback to another device

Keys on Now Playing:
  space  play/pause     n/p  next/previous
  +/-    volume         s    shuffle
  r      repeat         esc  back to home`,
	Args: cobra.NoArgs,
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

// launchUI is swapped out by tests.
var launchUI = tui.Run

func runUI(cmd *cobra.Command, args []string) error {
	if cfg.Spotify.ClientID == "" {
		return errMissingClientID
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	p, err := connect(ctx)
	if err != nil {
		printf(out, "%s", centeredBox(
			"Welcome to Spotify CLI!",
			"",
			"You need to authenticate first.",
			"Run: spotify login",
		))
		log.WithError(err).Debug("Not starting the player")
		return &exitError{code: 1}
	}

	opts := tui.OptionsFromConfig(cfg)
	opts.Logger = log.WithField("component", "tui")
	return launchUI(ctx, p, opts)
}
