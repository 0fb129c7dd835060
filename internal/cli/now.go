package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tessro/spotify-cli/internal/core"
	"github.com/tessro/spotify-cli/internal/format"
	"github.com/tessro/spotify-cli/internal/tui/styles"
	"github.com/tessro/spotify-cli/internal/watch"
)

var (
	nowFollow    bool
	nowInterval  time.Duration
	nowFormat    string
	nowTimestamp bool
	nowNoEmoji   bool
)

var nowCmd = &cobra.Command{
	Use:     "now",
	Aliases: []string{"np"},
	Short:   "Show currently playing track",
	Long: `Show the currently playing track.

With --follow, keep watching and print a line for every track change,
pause and resume until interrupted.

Format templates (--format) can use:
  {{.Type}} {{.Emoji}} {{.Time}} {{.Title}} {{.Artists}} {{.Album}}
  {{.URI}} {{.Device}} {{.Volume}}`,
	Args: cobra.NoArgs,
	RunE: runNow,
}

func init() {
	nowCmd.Flags().BoolVarP(&nowFollow, "follow", "f", false, "keep printing playback changes")
	nowCmd.Flags().DurationVar(&nowInterval, "interval", time.Second, "poll interval for --follow")
	nowCmd.Flags().StringVar(&nowFormat, "format", "", "Go template for --follow lines")
	nowCmd.Flags().BoolVar(&nowTimestamp, "timestamps", false, "prefix --follow lines with the time")
	nowCmd.Flags().BoolVar(&nowNoEmoji, "no-emoji", false, "omit emoji from --follow lines")
	rootCmd.AddCommand(nowCmd)
}

func runNow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	p, err := connect(ctx)
	if err != nil {
		return err
	}
	if nowFollow {
		return follow(cmd, p)
	}

	state, err := p.PlaybackState(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if JSONOutput() {
		if !state.HasTrack() {
			return printJSON(out, map[string]any{"playing": false})
		}
		return printJSON(out, state)
	}
	if !state.HasTrack() {
		printf(out, "Nothing is currently playing")
		return nil
	}
	printf(out, "%s", nowPanel(state))
	return nil
}

// nowPanel draws the boxed summary printed by `now`.
func nowPanel(state *core.PlaybackState) string {
	t := state.Track
	bar := format.ProgressBar(t.Position(), t.Duration, cfg.TUI.ProgressWidth)
	lines := []string{
		styles.StatusIcon(state.Playing) + " " + styles.Title.Render(t.Name),
		styles.Subtitle.Render(t.ArtistNames()),
		styles.Dim.Render(t.Album),
		"",
		fmt.Sprintf("%s %s %s", format.Duration(t.Position()), styles.ProgressBar(bar), format.Duration(t.Duration)),
	}
	if state.Device != nil {
		lines = append(lines, styles.Dim.Render(fmt.Sprintf("on %s • %d%%", state.Device.Name, state.Volume)))
	}
	return box(lines...)
}

func follow(cmd *cobra.Command, p core.Player) error {
	formatter, err := watch.NewFormatter(nowFormat,
		watch.WithEmoji(!nowNoEmoji),
		watch.WithTimestamp(nowTimestamp))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	w := watch.New(p, watch.WithInterval(nowInterval))
	events := make(chan watch.Event, 16)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		return w.Run(ctx, events)
	})
	g.Go(func() error {
		for e := range events {
			if JSONOutput() {
				if err := printJSON(out, watch.FieldsOf(e)); err != nil {
					return err
				}
				continue
			}
			printf(out, "%s", formatter.Format(e))
		}
		return nil
	})

	err = g.Wait()
	if cmd.Context().Err() != nil {
		// Interrupted by the user.
		return nil
	}
	return err
}
