// Package session owns the client side of authentication: the bearer token
// persisted on disk and the lazily fetched role behind it. Tokens carry no
// client-enforced expiry; a 401 from any call is the only expiry signal.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotLoggedIn is returned when an authenticated action runs with no
// stored token. Callers should direct the user to log in and abort.
var ErrNotLoggedIn = errors.New("not logged in")

const tokenFile = "token.json"

// Store persists the bearer token under the config directory.
type Store struct {
	path string
}

// NewStore creates a token store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, tokenFile)}
}

type tokenRecord struct {
	AccessToken string `json:"access_token"`
}

// Token returns the stored bearer token, or ErrNotLoggedIn when none
// exists.
func (s *Store) Token() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", ErrNotLoggedIn
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	var rec tokenRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", fmt.Errorf("failed to parse token file: %w", err)
	}
	if rec.AccessToken == "" {
		return "", ErrNotLoggedIn
	}
	return rec.AccessToken, nil
}

// Save writes the bearer token, creating the directory if needed. The file
// is user-readable only.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	data, err := json.MarshalIndent(tokenRecord{AccessToken: token}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	return nil
}

// Clear removes the stored token. Clearing an absent token is not an
// error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}
