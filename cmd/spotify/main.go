// Command spotify controls Spotify playback from the terminal.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tessro/spotify-cli/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cli.Execute(ctx)
}
