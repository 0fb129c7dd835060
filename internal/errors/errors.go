package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNoRefreshToken   = errors.New("no refresh token available")
	ErrAuthDenied       = errors.New("authorization denied")
	ErrStateMismatch    = errors.New("state mismatch")
	ErrNoActiveDevice   = errors.New("no active device")
	ErrPremiumRequired  = errors.New("premium required")
	ErrNoMatch          = errors.New("no matching tracks")
	ErrInvalidVolume    = errors.New("volume must be between 0 and 100")
	ErrEmptyQuery       = errors.New("search query cannot be empty")
	ErrRateLimited      = errors.New("rate limited")
	ErrNetworkError     = errors.New("network error")
	ErrTimeout          = errors.New("request timeout")
	ErrConfigNotFound   = errors.New("config file not found")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

// Kind classifies where an error came from and how it is surfaced.
type Kind int

const (
	KindUnknown Kind = iota
	// KindAuth covers missing, invalid or expired credentials.
	KindAuth
	// KindFetch covers read-path failures; callers get an absence value.
	KindFetch
	// KindCommand covers write-path failures; shown transiently, never retried.
	KindCommand
	// KindValidation covers bad input rejected before any remote call.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindFetch:
		return "fetch"
	case KindCommand:
		return "command"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is a classified error carrying the operation that failed.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Auth wraps err as an authentication failure.
func Auth(op string, err error) error { return newError(KindAuth, op, err) }

// Fetch wraps err as a read-path failure.
func Fetch(op string, err error) error { return newError(KindFetch, op, err) }

// Command wraps err as a write-path failure.
func Command(op string, err error) error { return newError(KindCommand, op, err) }

// Validation wraps err as an input validation failure.
func Validation(op string, err error) error { return newError(KindValidation, op, err) }

// KindOf returns the kind of the outermost classified error in the chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Is, As and New forward to the standard library.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target any) bool { return errors.As(err, target) }

func New(text string) error { return errors.New(text) }

// CLIError wraps an error with a user-friendly suggestion.
type CLIError struct {
	Err        error
	Suggestion string
}

func (e *CLIError) Error() string {
	return e.Err.Error()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &CLIError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) && cliErr.Suggestion != "" {
		return cliErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	if IsKind(err, KindAuth) || errors.Is(err, ErrNotAuthenticated) || errors.Is(err, ErrNoRefreshToken) ||
		strings.Contains(errStr, "invalid access token") || strings.Contains(errStr, "token expired") {
		return "Run 'spotify login' to authenticate with Spotify"
	}

	if errors.Is(err, ErrNoActiveDevice) || strings.Contains(errStr, "no active device") {
		return "Open Spotify on a device and start playing, or run 'spotify devices --pick'"
	}

	if errors.Is(err, ErrPremiumRequired) || strings.Contains(errStr, "premium required") || strings.Contains(errStr, "restricted device") {
		return "This feature requires Spotify Premium"
	}

	if errors.Is(err, ErrRateLimited) || strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "429") {
		return "Too many requests. Wait a moment and try again"
	}

	if errors.Is(err, ErrNetworkError) || errors.Is(err, ErrTimeout) ||
		strings.Contains(errStr, "network") || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "connection refused") {
		return "Check your internet connection and try again"
	}

	if errors.Is(err, ErrConfigNotFound) || errors.Is(err, ErrInvalidConfig) {
		return "Run 'spotify config init' to create a configuration file"
	}

	if strings.Contains(errStr, "500") || strings.Contains(errStr, "server error") {
		return "Spotify is having issues. Try again in a moment"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
