package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zmb3/spotify/v2"
)

const (
	// BaseURL is the Spotify Web API base URL. The trailing slash is required
	// by the spotify client's URL joining.
	BaseURL = "https://api.spotify.com/v1/"

	// Retry configuration for transient errors
	maxRetries    = 3
	baseRetryWait = 500 * time.Millisecond
	maxRetryAfter = 30 * time.Second
)

// TokenSource supplies a valid access token for each request.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Transport authorizes requests against the Web API and retries transient
// failures: network errors, 429 and 5xx. Other responses are returned as-is.
type Transport struct {
	Base       http.RoundTripper
	Tokens     TokenSource
	Log        log.FieldLogger
	MaxRetries int
	RetryWait  time.Duration
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	token, err := t.Tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	logger := t.logger().WithFields(log.Fields{
		"method": req.Method,
		"url":    req.URL.Path,
	})

	var lastErr error
	for attempt := 0; attempt <= t.MaxRetries; attempt++ {
		out := req.Clone(ctx)
		out.Header.Set("Authorization", "Bearer "+token)
		if attempt > 0 && req.Body != nil {
			if req.GetBody == nil {
				return nil, fmt.Errorf("cannot retry request without replayable body: %w", lastErr)
			}
			body, err := req.GetBody()
			if err != nil {
				return nil, err
			}
			out.Body = body
		}

		logger.WithField("attempt", attempt).Debug("Spotify request")

		resp, err := t.base().RoundTrip(out)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			logger.WithError(err).Debug("Network error")
			if attempt == t.MaxRetries {
				break
			}
			if err := sleep(ctx, t.backoff(attempt, 0)); err != nil {
				return nil, err
			}
			continue
		}

		if !retryable(resp.StatusCode) || attempt == t.MaxRetries {
			logger.WithField("status", resp.StatusCode).Debug("Spotify response")
			return resp, nil
		}

		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		lastErr = fmt.Errorf("status %d", resp.StatusCode)

		wait := t.backoff(attempt, retryAfter)
		logger.WithFields(log.Fields{
			"status": resp.StatusCode,
			"wait":   wait,
		}).Debug("Transient error, will retry")
		if err := sleep(ctx, wait); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("request failed after %d retries: %w", t.MaxRetries, lastErr)
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *Transport) logger() log.FieldLogger {
	if t.Log != nil {
		return t.Log
	}
	return log.StandardLogger()
}

// backoff doubles the base wait per attempt; a server Retry-After wins when larger.
func (t *Transport) backoff(attempt int, retryAfter time.Duration) time.Duration {
	wait := t.RetryWait * time.Duration(1<<attempt)
	if retryAfter > wait {
		wait = retryAfter
	}
	return wait
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	d := time.Duration(secs) * time.Second
	if d > maxRetryAfter {
		d = maxRetryAfter
	}
	return d
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type options struct {
	baseURL   string
	http      *http.Client
	log       log.FieldLogger
	retryWait time.Duration
}

// Option configures New.
type Option func(*options)

// WithBaseURL points the client at a different API root.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithHTTPClient sets the underlying client; its Transport is wrapped.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.http = c }
}

// WithLogger sets the request logger.
func WithLogger(l log.FieldLogger) Option {
	return func(o *options) { o.log = l }
}

// WithRetryWait sets the base delay between retries.
func WithRetryWait(d time.Duration) Option {
	return func(o *options) { o.retryWait = d }
}

// New creates a Spotify Web API client authorized by tokens.
func New(tokens TokenSource, opts ...Option) *spotify.Client {
	o := options{
		baseURL:   BaseURL,
		http:      &http.Client{Timeout: 30 * time.Second},
		log:       log.StandardLogger(),
		retryWait: baseRetryWait,
	}
	for _, opt := range opts {
		opt(&o)
	}

	hc := *o.http
	hc.Transport = &Transport{
		Base:       o.http.Transport,
		Tokens:     tokens,
		Log:        o.log,
		MaxRetries: maxRetries,
		RetryWait:  o.retryWait,
	}

	return spotify.New(&hc, spotify.WithBaseURL(o.baseURL))
}

// Status returns the HTTP status of a Web API error, or 0.
func Status(err error) int {
	var apiErr spotify.Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	var apiErrPtr *spotify.Error
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.Status
	}
	return 0
}

// IsNoActiveDevice reports whether the player had no device to act on.
func IsNoActiveDevice(err error) bool {
	return Status(err) == http.StatusNotFound
}

// IsRestricted reports a 403, returned for non-Premium accounts and for
// commands the current context disallows.
func IsRestricted(err error) bool {
	return Status(err) == http.StatusForbidden
}

// IsRateLimited reports whether retries were exhausted on a 429.
func IsRateLimited(err error) bool {
	return Status(err) == http.StatusTooManyRequests
}

// IsUnauthorized reports whether the access token was rejected.
func IsUnauthorized(err error) bool {
	return Status(err) == http.StatusUnauthorized
}
