package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/tessro/spotify-cli/internal/config"
	"github.com/tessro/spotify-cli/internal/wizard"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Commands for viewing and creating the spotify-cli configuration file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the effective configuration, after defaults and environment overrides.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long:  `Create a new configuration file with default values.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if JSONOutput() {
		return printJSON(out, cfg)
	}
	return encodeConfig(out, cfg)
}

func encodeConfig(w io.Writer, c *config.Config) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = "  "
	return encoder.Encode(c)
}

// configPath is where config init writes: --config when given, else the
// file in use, else the XDG location.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if p := config.FindConfigFile(); p != "" {
		return p
	}
	return config.DefaultPath()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath()

	if _, err := os.Stat(path); err == nil && !configInitForce {
		if !isTerminal() {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}
		ok, err := wizard.Confirm(cmd.Context(), fmt.Sprintf("Overwrite %s?", path))
		if err != nil {
			return err
		}
		if !ok {
			return result(cmd.OutOrStdout(), "unchanged", "Left "+path+" unchanged", map[string]any{"path": path})
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	_, _ = fmt.Fprintln(f, "# spotify-cli configuration")
	_, _ = fmt.Fprintln(f, "# Environment variables SPOTIFY_CLI_* override these values.")
	_, _ = fmt.Fprintln(f, "")
	if err := encodeConfig(f, config.Default()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	out := cmd.OutOrStdout()
	if JSONOutput() {
		return printJSON(out, map[string]string{"status": "created", "path": path})
	}
	printf(out, "Created config file: %s", path)
	printf(out, "\nNext steps:")
	printf(out, "  1. Set spotify.client_id in the config file or via SPOTIFY_CLI_CLIENT_ID")
	printf(out, "  2. Run 'spotify login' to authenticate with Spotify")
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path := configPath()
	_, err := os.Stat(path)
	exists := err == nil

	if JSONOutput() {
		return printJSON(cmd.OutOrStdout(), map[string]any{"path": path, "exists": exists})
	}
	if !exists {
		printf(cmd.OutOrStdout(), "%s (not created yet)", path)
		return nil
	}
	printf(cmd.OutOrStdout(), "%s", path)
	return nil
}
