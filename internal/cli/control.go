package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tessro/spotify-cli/internal/core"
	apperrors "github.com/tessro/spotify-cli/internal/errors"
	"github.com/tessro/spotify-cli/internal/format"
)

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause playback",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, "paused", "⏸ Playback paused", core.Player.Pause)
	},
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Skip to next track",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, "skipped", "⏭ Skipped to next track", core.Player.Next)
	},
}

var prevCmd = &cobra.Command{
	Use:     "prev",
	Aliases: []string{"previous"},
	Short:   "Go to previous track",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, "previous", "⏮ Previous track", core.Player.Prev)
	},
}

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the current track",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, "restarted", "⏪ Restarted track", func(p core.Player, ctx context.Context) error {
			return p.Seek(ctx, 0)
		})
	},
}

var seekCmd = &cobra.Command{
	Use:   "seek <position>",
	Short: "Seek within the current track",
	Long: `Move playback to a position in the current track.

Examples:
  spotify seek 1:30
  spotify seek 45`,
	Args: cobra.ExactArgs(1),
	RunE: runSeek,
}

var volumeCmd = &cobra.Command{
	Use:   "volume <0-100>",
	Short: "Set volume (0-100)",
	Long: `Set the playback volume on the active device.

Examples:
  spotify volume 50
  spotify volume 0`,
	Args: cobra.ExactArgs(1),
	RunE: runVolume,
}

func init() {
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(prevCmd)
	rootCmd.AddCommand(restartCmd)
	rootCmd.AddCommand(seekCmd)
	rootCmd.AddCommand(volumeCmd)
}

// runCommand connects and issues a single playback command.
func runCommand(cmd *cobra.Command, status, text string, fn func(core.Player, context.Context) error) error {
	ctx := cmd.Context()
	p, err := connect(ctx)
	if err != nil {
		return err
	}
	if err := fn(p, ctx); err != nil {
		return err
	}
	return result(cmd.OutOrStdout(), status, text, nil)
}

// parseVolume accepts an integer percentage in [0, 100].
func parseVolume(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if err != nil || v < 0 || v > 100 {
		return 0, apperrors.Validation("volume", fmt.Errorf("%w, got %q", apperrors.ErrInvalidVolume, s))
	}
	return v, nil
}

func runVolume(cmd *cobra.Command, args []string) error {
	level, err := parseVolume(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	p, err := connect(ctx)
	if err != nil {
		return err
	}
	if err := p.SetVolume(ctx, level); err != nil {
		return err
	}
	return result(cmd.OutOrStdout(), "volume_set",
		fmt.Sprintf("🔊 Volume set to %d%%", level),
		map[string]any{"volume": level})
}

// parsePosition accepts seconds ("45") or minutes and seconds ("1:30").
func parsePosition(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	minutes, seconds := "0", s
	if m, sec, ok := strings.Cut(s, ":"); ok {
		minutes, seconds = m, sec
		if len(sec) != 2 {
			return 0, apperrors.Validation("seek", fmt.Errorf("invalid position %q, want M:SS or seconds", s))
		}
	}
	m, errM := strconv.Atoi(minutes)
	sec, errS := strconv.Atoi(seconds)
	if errM != nil || errS != nil || m < 0 || sec < 0 || (strings.Contains(s, ":") && sec > 59) {
		return 0, apperrors.Validation("seek", fmt.Errorf("invalid position %q, want M:SS or seconds", s))
	}
	return time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
}

func runSeek(cmd *cobra.Command, args []string) error {
	position, err := parsePosition(args[0])
	if err != nil {
		return err
	}
	return runCommand(cmd, "seeked", "⏩ Seeked to "+format.Duration(position), func(p core.Player, ctx context.Context) error {
		return p.Seek(ctx, position)
	})
}
