package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tessro/spotify-cli/internal/wizard"
)

const loginTimeout = 5 * time.Minute

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with Spotify",
	Long: `Opens a browser to authenticate with Spotify using the OAuth PKCE flow.
A local listener on the configured callback port receives the redirect.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove saved credentials",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	if cfg.Spotify.ClientID == "" {
		return errMissingClientID
	}
	out := cmd.OutOrStdout()

	svc, err := openAuth(cfg, func(authURL string) {
		if !JSONOutput() {
			printf(cmd.ErrOrStderr(), "If your browser does not open, visit:\n\n%s\n", authURL)
		}
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), loginTimeout)
	defer cancel()

	if err := wizard.Spin(ctx, "Waiting for Spotify authorization...", svc.Login); err != nil {
		return err
	}

	name, id := "Spotify User", ""
	if user, err := openPlayer(cfg, svc).Profile(ctx); err == nil && user != nil {
		name, id = user.DisplayName, user.ID
	}

	if JSONOutput() {
		return printJSON(out, map[string]any{
			"status":       "authenticated",
			"user_id":      id,
			"display_name": name,
		})
	}
	printf(out, "✓ Successfully authenticated as %s", name)
	printf(out, "\nRun `spotify` to start the interactive player.")
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	svc, err := openAuth(cfg, nil)
	if err != nil {
		return err
	}
	if err := svc.Logout(); err != nil {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}
	return result(cmd.OutOrStdout(), "logged_out", "✓ Logged out successfully", nil)
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	svc, err := openAuth(cfg, nil)
	if err != nil {
		return err
	}
	token, err := svc.Token()
	if err != nil {
		return err
	}

	if token == nil {
		if JSONOutput() {
			return printJSON(out, map[string]any{"authenticated": false})
		}
		printf(out, "Not authenticated with Spotify.")
		printf(out, "Run 'spotify login' to authenticate.")
		return nil
	}

	if !svc.IsAuthenticated(ctx) {
		if JSONOutput() {
			return printJSON(out, map[string]any{"authenticated": false, "expired": true})
		}
		printf(out, "Credentials expired and could not be refreshed.")
		printf(out, "Run 'spotify login' to re-authenticate.")
		return nil
	}

	// Refresh may have moved the expiry.
	if t, err := svc.Token(); err == nil && t != nil {
		token = t
	}
	user, _ := openPlayer(cfg, svc).Profile(ctx)

	if JSONOutput() {
		doc := map[string]any{
			"authenticated": true,
			"expires_at":    token.Expiry(),
		}
		if user != nil {
			doc["user_id"] = user.ID
			doc["display_name"] = user.DisplayName
			doc["email"] = user.Email
			doc["product"] = user.Product
		}
		return printJSON(out, doc)
	}

	if user != nil {
		printf(out, "Authenticated as: %s (%s)", user.DisplayName, user.Email)
		printf(out, "Account type: %s", user.Product)
	} else {
		printf(out, "Authenticated with Spotify.")
	}
	printf(out, "Token expires: %s (%s)", token.Expiry().Format(time.RFC3339), humanize.Time(token.Expiry()))
	return nil
}
