package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tessro/spotify-cli/internal/config"
	apperrors "github.com/tessro/spotify-cli/internal/errors"
	"github.com/tessro/spotify-cli/internal/logging"
)

var (
	cfgFile string
	jsonOut bool
	verbose bool

	cfg       *config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "spotify",
	Short: "Control Spotify from the terminal",
	Long: `A terminal client for Spotify.

Run without a command to open the interactive player, or use one of the
commands below for one-shot control.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(cmd); err != nil {
			return err
		}
		return initLogging(cmd)
	},
	RunE:          runUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.spotify-cli.toml)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig(cmd *cobra.Command) error {
	var err error
	switch {
	case cfgFile != "" && cmd.Parent() == configCmd && !fileExists(cfgFile):
		// config init and config path may name a file that does not exist yet.
		cfg = config.Default()
	case cfgFile != "":
		cfg, err = config.LoadFrom(cfgFile)
	default:
		cfg, err = config.Load()
	}
	if err != nil {
		return apperrors.WithSuggestion(
			fmt.Errorf("failed to load config: %w", err),
			"Fix the file or run 'spotify config init' to create a fresh one")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidConfig, err)
	}

	return nil
}

func initLogging(cmd *cobra.Command) error {
	closer, err := logging.Setup(logging.Options{
		Config:      cfg.Log,
		Verbose:     verbose,
		Interactive: isInteractive(cmd),
	})
	if err != nil {
		return err
	}
	logCloser = closer
	log.WithField("command", cmd.CommandPath()).Debug("Starting")
	return nil
}

// isInteractive reports whether cmd takes over the terminal. The bare root
// command launches the UI, so it counts.
func isInteractive(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd == uiCmd
}

// exitError ends the process with code after the command already printed
// everything the user needs.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	if logCloser != nil {
		_ = logCloser.Close()
	}
	if err == nil {
		return 0
	}

	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), apperrors.Format(err))
	return 1
}

// Config returns the loaded configuration.
func Config() *config.Config {
	return cfg
}

// JSONOutput returns true if JSON output is requested.
func JSONOutput() bool {
	return jsonOut
}

// Verbose returns true if verbose output is requested.
func Verbose() bool {
	return verbose
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
