package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

// Token is the persisted credential. ExpiresAt is in epoch milliseconds.
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type,omitempty"`
	Scope        string `json:"scope,omitempty"`
	ExpiresAt    int64  `json:"expires_at"`
}

// IsExpired reports whether the access token is no longer valid at now.
func (t *Token) IsExpired(now time.Time) bool {
	return now.UnixMilli() >= t.ExpiresAt
}

// Expiry returns ExpiresAt as a time.
func (t *Token) Expiry() time.Time {
	return time.UnixMilli(t.ExpiresAt)
}

// fromOAuth2 converts a token endpoint response. The expiry is measured from
// now using expires_in when the response carries it. A response without any
// expiry is treated as valid for an hour, Spotify's documented lifetime.
func fromOAuth2(tok *oauth2.Token, now time.Time) *Token {
	expiry := tok.Expiry
	if secs, ok := expiresIn(tok); ok {
		expiry = now.Add(time.Duration(secs) * time.Second)
	} else if expiry.IsZero() {
		expiry = now.Add(time.Hour)
	}

	t := &Token{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		ExpiresAt:    expiry.UnixMilli(),
	}
	if scope, ok := tok.Extra("scope").(string); ok {
		t.Scope = scope
	}
	return t
}

func expiresIn(tok *oauth2.Token) (int64, bool) {
	switch v := tok.Extra("expires_in").(type) {
	case float64:
		return int64(v), v > 0
	case int64:
		return v, v > 0
	case json.Number:
		n, err := v.Int64()
		return n, err == nil && n > 0
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil && n > 0
	}
	return 0, false
}

// ExchangeCode exchanges an authorization code and PKCE verifier for tokens.
func ExchangeCode(ctx context.Context, cfg *Config, code, codeVerifier string, now time.Time) (*Token, error) {
	tok, err := cfg.oauth.Exchange(ctx, code, oauth2.VerifierOption(codeVerifier))
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}
	return fromOAuth2(tok, now), nil
}

// RefreshAccessToken uses a refresh token to get a new access token.
// The returned token keeps refreshToken when the endpoint does not rotate it.
func RefreshAccessToken(ctx context.Context, cfg *Config, refreshToken string, now time.Time) (*Token, error) {
	src := cfg.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %w", err)
	}

	t := fromOAuth2(tok, now)
	if t.RefreshToken == "" {
		t.RefreshToken = refreshToken
	}
	return t, nil
}
