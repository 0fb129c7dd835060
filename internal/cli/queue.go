package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tessro/spotify-cli/internal/core"
	"github.com/tessro/spotify-cli/internal/format"
	"github.com/tessro/spotify-cli/internal/tui/components"
	"github.com/tessro/spotify-cli/internal/tui/styles"
)

var queueLimit int

var queueCmd = &cobra.Command{
	Use:     "queue",
	Aliases: []string{"q"},
	Short:   "Show the playback queue",
	Args:    cobra.NoArgs,
	RunE:    runQueue,
}

func init() {
	queueCmd.Flags().IntVarP(&queueLimit, "limit", "n", 10, "number of upcoming tracks to show (0 for all)")
	rootCmd.AddCommand(queueCmd)
}

func runQueue(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	p, err := connect(ctx)
	if err != nil {
		return err
	}
	queue, err := p.Queue(ctx)
	if err != nil {
		return err
	}
	if queue == nil {
		queue = &core.Queue{}
	}
	if queue.Items == nil {
		queue.Items = []core.Track{}
	}

	out := cmd.OutOrStdout()
	if JSONOutput() {
		return printJSON(out, queue)
	}
	if queue.Empty() {
		printf(out, "Queue is empty\n")
		return nil
	}

	if queue.Current != nil {
		printf(out, "%s %s\n", styles.Subtitle.Render("Now playing:"), trackLine(queue.Current))
	}
	if queue.Len() == 0 {
		printf(out, "%s\n", styles.Muted.Render("Nothing queued"))
		return nil
	}

	labels := make([]string, queue.Len())
	for i := range queue.Items {
		labels[i] = fmt.Sprintf("%d. %s", i+1, trackLine(&queue.Items[i]))
	}
	list := components.NewList(max(queueLimit, 0))
	list.SetLen(len(labels))
	printf(out, "%s\n%s\n", styles.Subtitle.Render("Up next:"), list.Render(labels))
	return nil
}

func trackLine(t *core.Track) string {
	return fmt.Sprintf("%s — %s (%s)", t.Name, t.ArtistNames(), format.Duration(t.Duration))
}
