package auth

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	// DefaultTokenFileName is the default name for the encrypted credential record.
	DefaultTokenFileName = "credentials.enc"

	// DefaultKeyFileName is the default name for the record's encryption key.
	DefaultKeyFileName = "credentials.key"

	keySize   = 32
	nonceSize = 24
)

// ErrCorruptRecord is returned when the stored record cannot be decrypted.
var ErrCorruptRecord = errors.New("credential record is corrupt or was written with a different key")

// TokenStorage persists tokens to disk, sealed with NaCl secretbox.
type TokenStorage struct {
	path    string
	keyPath string
}

// NewTokenStorage creates token storage at the given paths.
// Empty paths use the defaults under os.UserConfigDir()/spotify-cli.
func NewTokenStorage(path, keyPath string) (*TokenStorage, error) {
	if path == "" || keyPath == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get config directory: %w", err)
		}
		dir := filepath.Join(configDir, "spotify-cli")
		if path == "" {
			path = filepath.Join(dir, DefaultTokenFileName)
		}
		if keyPath == "" {
			keyPath = filepath.Join(filepath.Dir(path), DefaultKeyFileName)
		}
	}

	return &TokenStorage{path: path, keyPath: keyPath}, nil
}

// Save encrypts and persists a token.
func (s *TokenStorage) Save(token *Token) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	key, err := s.loadKey(true)
	if err != nil {
		return err
	}

	plaintext, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], plaintext, &nonce, key)

	if err := os.WriteFile(s.path, sealed, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Load reads and decrypts the stored token. It returns nil, nil when none is stored.
func (s *TokenStorage) Load() (*Token, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	key, err := s.loadKey(false)
	if err != nil {
		return nil, err
	}

	if len(data) < nonceSize+secretbox.Overhead {
		return nil, ErrCorruptRecord
	}
	var nonce [nonceSize]byte
	copy(nonce[:], data[:nonceSize])

	plaintext, ok := secretbox.Open(nil, data[nonceSize:], &nonce, key)
	if !ok {
		return nil, ErrCorruptRecord
	}

	var token Token
	if err := json.Unmarshal(plaintext, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return &token, nil
}

// Delete removes the stored token and its key. Deleting twice is not an error.
func (s *TokenStorage) Delete() error {
	for _, p := range []string{s.path, s.keyPath} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete %s: %w", filepath.Base(p), err)
		}
	}
	return nil
}

// Path returns the path to the token file.
func (s *TokenStorage) Path() string {
	return s.path
}

func (s *TokenStorage) loadKey(create bool) (*[keySize]byte, error) {
	var key [keySize]byte

	data, err := os.ReadFile(s.keyPath)
	switch {
	case err == nil:
		if len(data) != keySize {
			return nil, ErrCorruptRecord
		}
		copy(key[:], data)
		return &key, nil
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read key file: %w", err)
	case !create:
		return nil, ErrCorruptRecord
	}

	if _, err := io.ReadFull(rand.Reader, key[:]); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.keyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create key directory: %w", err)
	}
	if err := os.WriteFile(s.keyPath, key[:], 0600); err != nil {
		return nil, fmt.Errorf("failed to write key file: %w", err)
	}
	return &key, nil
}
