package client

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

// Tokens is the access/refresh pair issued by POST /api/token/
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenStore persists the token pair between runs
type TokenStore interface {
	Load() (Tokens, error)
	Save(Tokens) error
	Clear() error
}

// MemoryStore keeps tokens in memory only
type MemoryStore struct {
	mu     sync.Mutex
	tokens Tokens
}

func (s *MemoryStore) Load() (Tokens, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens, nil
}

func (s *MemoryStore) Save(t Tokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = t
	return nil
}

func (s *MemoryStore) Clear() error {
	return s.Save(Tokens{})
}

// FileStore keeps tokens in a JSON file readable only by the owner
type FileStore struct {
	Path string
}

// DefaultTokenPath returns <user config dir>/specdash/tokens.json
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "specdash", "tokens.json"), nil
}

func (s FileStore) Load() (Tokens, error) {
	raw, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return Tokens{}, nil
	}
	if err != nil {
		return Tokens{}, err
	}
	var t Tokens
	if err := json.Unmarshal(raw, &t); err != nil {
		return Tokens{}, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return t, nil
}

func (s FileStore) Save(t Tokens) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, raw, 0o600)
}

func (s FileStore) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Session holds the current token pair and writes every change through to
// its store. It is safe for concurrent use.
type Session struct {
	mu     sync.RWMutex
	store  TokenStore
	tokens Tokens
}

// NewSession loads any persisted tokens from store
func NewSession(store TokenStore) (*Session, error) {
	t, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tokens: %w", err)
	}
	return &Session{store: store, tokens: t}, nil
}

// Tokens returns the current pair
func (s *Session) Tokens() Tokens {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens
}

// Authenticated reports whether an access token is held
func (s *Session) Authenticated() bool {
	return s.Tokens().Access != ""
}

// Set replaces both tokens
func (s *Session) Set(t Tokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = t
	return s.store.Save(t)
}

// SetAccess replaces the access token, keeping the refresh token
func (s *Session) SetAccess(access string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens.Access = access
	return s.store.Save(s.tokens)
}

// Clear forgets both tokens
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = Tokens{}
	return s.store.Clear()
}

// AccessExpired decodes the exp claim of the access token without verifying
// the signature. A missing or undecodable token counts as expired.
func (s *Session) AccessExpired(now time.Time) bool {
	access := s.Tokens().Access
	if access == "" {
		return true
	}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(access, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}
