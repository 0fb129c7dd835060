package cli

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/tessro/spotify-cli/internal/browser"
	"github.com/tessro/spotify-cli/internal/config"
	"github.com/tessro/spotify-cli/internal/core"
	apperrors "github.com/tessro/spotify-cli/internal/errors"
	"github.com/tessro/spotify-cli/internal/spotify/auth"
	"github.com/tessro/spotify-cli/internal/spotify/client"
	"github.com/tessro/spotify-cli/internal/spotify/player"
	"github.com/tessro/spotify-cli/internal/wizard"
)

// authenticator is the credential service as the commands use it.
type authenticator interface {
	IsAuthenticated(ctx context.Context) bool
	Login(ctx context.Context) error
	Logout() error
	AccessToken(ctx context.Context) (string, error)
	Token() (*auth.Token, error)
}

// Swapped out by tests.
var (
	openAuth   = newAuthService
	openPlayer = newGateway
	isTerminal = wizard.IsTerminal
)

func newAuthService(cfg *config.Config, notify func(authURL string)) (authenticator, error) {
	storage, err := auth.NewTokenStorage(cfg.Storage.CredentialsFile, cfg.Storage.KeyFile)
	if err != nil {
		return nil, err
	}

	opts := []auth.Option{
		auth.WithBrowser(browser.Open),
		auth.WithLogger(log.WithField("component", "auth")),
	}
	if notify != nil {
		opts = append(opts, auth.WithNotify(notify))
	}
	oauth := auth.NewConfig(cfg.Spotify.ClientID, cfg.Spotify.RedirectURI)
	return auth.NewService(oauth, storage, cfg.Spotify.CallbackPort, opts...), nil
}

func newGateway(cfg *config.Config, tokens client.TokenSource) core.Player {
	c := client.New(tokens, client.WithLogger(log.WithField("component", "client")))
	return player.New(c,
		player.WithMarket(cfg.Spotify.Market),
		player.WithLogger(log.WithField("component", "player")))
}

var errMissingClientID = apperrors.WithSuggestion(
	errors.New("spotify.client_id not configured"),
	"Set spotify.client_id in "+config.DefaultPath()+" or export SPOTIFY_CLI_CLIENT_ID")

func notAuthenticated() error {
	return apperrors.WithSuggestion(
		apperrors.Auth("", apperrors.ErrNotAuthenticated),
		"Run 'spotify login' to authenticate with Spotify")
}

// connect returns the gateway for the stored credential, refreshing it once
// if it has expired.
func connect(ctx context.Context) (core.Player, error) {
	svc, err := openAuth(cfg, nil)
	if err != nil {
		return nil, err
	}
	if !svc.IsAuthenticated(ctx) {
		return nil, notAuthenticated()
	}
	return openPlayer(cfg, svc), nil
}
