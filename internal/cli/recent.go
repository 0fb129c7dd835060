package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tessro/spotify-cli/internal/core"
	"github.com/tessro/spotify-cli/internal/tui/components"
)

const defaultWidth = 80

var recentLimit int

var recentCmd = &cobra.Command{
	Use:     "recent",
	Aliases: []string{"history"},
	Short:   "Show recently played tracks",
	Args:    cobra.NoArgs,
	RunE:    runRecent,
}

func init() {
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 20, "number of tracks (max 50)")
	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	p, err := connect(ctx)
	if err != nil {
		return err
	}
	entries, err := p.RecentlyPlayed(ctx, recentLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if JSONOutput() {
		if entries == nil {
			entries = []core.HistoryEntry{}
		}
		return printJSON(out, entries)
	}
	printf(out, "%s", components.History(entries, terminalWidth(), time.Now()))
	return nil
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
