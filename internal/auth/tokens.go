// Package auth stores the backend-issued access token on disk. The
// client never validates token signatures — that is the server's job —
// it only reads the expiry claim to know when a login has gone stale.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoToken is returned when no stored login exists.
var ErrNoToken = errors.New("not logged in")

// Token is the persisted login state, mirroring the backend's login
// response.
type Token struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	UserRole     string    `json:"user_role,omitempty"`
	UserLanguage string    `json:"user_language,omitempty"`
	SavedAt      time.Time `json:"saved_at"`
}

// ExpiresAt reads the exp claim from the access token without verifying
// the signature.
func (t Token) ExpiresAt() (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(t.AccessToken, claims); err != nil {
		return time.Time{}, fmt.Errorf("parse access token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("access token has no exp claim")
	}
	return exp.Time, nil
}

// Expired reports whether the token's exp claim is in the past. A token
// whose expiry cannot be read is treated as expired.
func (t Token) Expired(now time.Time) bool {
	exp, err := t.ExpiresAt()
	if err != nil {
		return true
	}
	return !now.Before(exp)
}

// Store reads and writes the token file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a Store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultTokenPath resolves the token file location:
// $XDG_STATE_HOME/kazlearn/token.json, falling back to
// ~/.local/state/kazlearn/token.json.
func DefaultTokenPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "kazlearn", "token.json"), nil
}

// Save writes the token file with owner-only permissions.
func (s *Store) Save(tok Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(tok)
}

// Load reads the stored token. Returns ErrNoToken if none exists.
func (s *Store) Load() (Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) saveLocked(tok Token) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}

	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

func (s *Store) loadLocked() (Token, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Token{}, ErrNoToken
	}
	if err != nil {
		return Token{}, fmt.Errorf("read token file: %w", err)
	}

	var tok Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return Token{}, fmt.Errorf("decode token file: %w", err)
	}
	if tok.AccessToken == "" {
		return Token{}, ErrNoToken
	}
	return tok, nil
}

// Clear deletes the stored token. Clearing an absent token is not an
// error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

// UpdateAccessToken replaces only the access token, keeping the other
// stored fields. Used when the backend rotates the token mid-flight via
// the X-New-Token response header. The lock is held across the whole
// read-modify-write so concurrent rotations cannot lose a field or
// resurrect a stale token.
func (s *Store) UpdateAccessToken(accessToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, err := s.loadLocked()
	if err != nil {
		tok = Token{TokenType: "bearer"}
	}
	tok.AccessToken = accessToken
	tok.SavedAt = time.Now()
	return s.saveLocked(tok)
}
