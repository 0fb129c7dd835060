package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	apperrors "github.com/tessro/spotify-cli/internal/errors"
)

// Service is the credential store and auth flow. It is the only mutator of
// the stored credential; all access is serialized by mu.
type Service struct {
	config  *Config
	storage *TokenStorage
	port    int

	openURL func(string) error
	notify  func(authURL string)
	log     logrus.FieldLogger
	now     func() time.Time

	mu    sync.Mutex
	token *Token
}

// Option configures a Service.
type Option func(*Service)

// WithBrowser sets the function used to open the authorization URL.
func WithBrowser(open func(string) error) Option {
	return func(s *Service) { s.openURL = open }
}

// WithNotify sets a callback receiving the authorization URL before the browser opens.
func WithNotify(fn func(authURL string)) Option {
	return func(s *Service) { s.notify = fn }
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Service) { s.log = l }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a credential service listening for callbacks on port.
func NewService(cfg *Config, storage *TokenStorage, port int, opts ...Option) *Service {
	s := &Service{
		config:  cfg,
		storage: storage,
		port:    port,
		openURL: func(string) error { return fmt.Errorf("no browser configured") },
		log:     logrus.StandardLogger(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsAuthenticated reports whether a usable credential exists, refreshing an
// expired one once. It never returns an error.
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, err := s.loadLocked()
	if err != nil {
		s.log.WithError(err).Debug("Failed to load credential")
		return false
	}
	if tok == nil {
		return false
	}
	if !tok.IsExpired(s.now()) {
		return true
	}
	if err := s.refreshLocked(ctx); err != nil {
		s.log.WithError(err).Debug("Silent refresh failed")
		return false
	}
	return true
}

// Login runs the authorization-code flow with PKCE and stores the result.
// The callback listener is shut down on every return path.
func (s *Service) Login(ctx context.Context) error {
	pkce, err := NewPKCE()
	if err != nil {
		return apperrors.Auth("login", fmt.Errorf("failed to generate PKCE: %w", err))
	}

	server, err := NewCallbackServer(s.port)
	if err != nil {
		return apperrors.Auth("login", err)
	}
	server.Start()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.log.WithError(err).Debug("Callback server shutdown")
		}
	}()

	authURL := s.config.AuthCodeURL(pkce)
	s.log.WithField("port", server.Port()).Info("Starting Spotify authentication")
	if s.notify != nil {
		s.notify(authURL)
	}
	if err := s.openURL(authURL); err != nil {
		s.log.WithError(err).Warn("Could not open browser")
	}

	result, err := server.Wait(ctx)
	if err != nil {
		return apperrors.Auth("login", fmt.Errorf("waiting for authorization: %w", err))
	}
	if result.Denied() {
		return apperrors.Auth("login", fmt.Errorf("%w: %s", apperrors.ErrAuthDenied, result.Error))
	}
	if result.State != pkce.State {
		return apperrors.Auth("login", apperrors.ErrStateMismatch)
	}

	tok, err := ExchangeCode(ctx, s.config, result.Code, pkce.Verifier, s.now())
	if err != nil {
		return apperrors.Auth("login", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Save(tok); err != nil {
		return apperrors.Auth("login", err)
	}
	s.token = tok
	s.log.Info("Spotify authentication completed")
	return nil
}

// Refresh exchanges the stored refresh token for a new access token.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshLocked(ctx)
}

// Logout deletes the stored credential. Logging out twice is not an error.
func (s *Service) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = nil
	return s.storage.Delete()
}

// AccessToken returns a valid access token, refreshing it when expired.
func (s *Service) AccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, err := s.loadLocked()
	if err != nil {
		return "", apperrors.Auth("access token", err)
	}
	if tok == nil {
		return "", apperrors.Auth("access token", apperrors.ErrNotAuthenticated)
	}
	if tok.IsExpired(s.now()) {
		if err := s.refreshLocked(ctx); err != nil {
			return "", err
		}
	}
	return s.token.AccessToken, nil
}

// Token returns a copy of the stored credential, or nil when logged out.
func (s *Service) Token() (*Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, err := s.loadLocked()
	if err != nil || tok == nil {
		return nil, err
	}
	cp := *tok
	return &cp, nil
}

func (s *Service) loadLocked() (*Token, error) {
	if s.token != nil {
		return s.token, nil
	}
	tok, err := s.storage.Load()
	if err != nil {
		return nil, err
	}
	s.token = tok
	return tok, nil
}

func (s *Service) refreshLocked(ctx context.Context) error {
	tok, err := s.loadLocked()
	if err != nil {
		return apperrors.Auth("refresh", err)
	}
	if tok == nil || tok.RefreshToken == "" {
		return apperrors.Auth("refresh", apperrors.ErrNoRefreshToken)
	}

	newTok, err := RefreshAccessToken(ctx, s.config, tok.RefreshToken, s.now())
	if err != nil {
		return apperrors.Auth("refresh", err)
	}
	if err := s.storage.Save(newTok); err != nil {
		return apperrors.Auth("refresh", err)
	}
	s.token = newTok
	s.log.WithField("expires_at", newTok.Expiry().Format(time.RFC3339)).Debug("Access token refreshed")
	return nil
}
