package client

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Fixed storage keys for persisted client state.
const (
	tokenKey      = "auth_token"
	rememberedKey = "remembered_login"
)

// TokenStore persists the opaque bearer token and the opted-in
// remembered login identifier under fixed keys in a state directory.
// It is the only cross-component shared resource; writers are limited
// to login, logout, and the unauthorized-response handler.
type TokenStore struct {
	mu  sync.RWMutex
	dir string

	token      string
	remembered string
}

// NewTokenStore opens (creating if needed) the state directory and
// loads any persisted values.
func NewTokenStore(dir string) (*TokenStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	s := &TokenStore{dir: dir}
	s.token = readKey(dir, tokenKey)
	s.remembered = readKey(dir, rememberedKey)
	return s, nil
}

func readKey(dir, key string) string {
	b, err := os.ReadFile(filepath.Join(dir, key))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func (s *TokenStore) writeKey(key, value string) error {
	return os.WriteFile(filepath.Join(s.dir, key), []byte(value), 0o600)
}

func (s *TokenStore) removeKey(key string) error {
	err := os.Remove(filepath.Join(s.dir, key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Token returns the persisted bearer token, empty when logged out.
func (s *TokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken persists a freshly issued bearer token.
func (s *TokenStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return s.writeKey(tokenKey, token)
}

// ClearToken removes the persisted token. Clearing an already-cleared
// store is a no-op.
func (s *TokenStore) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return s.removeKey(tokenKey)
}

// RememberedLogin returns the opted-in login identifier, if any.
func (s *TokenStore) RememberedLogin() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.remembered
}

// SetRememberedLogin persists the login identifier the user opted to
// remember.
func (s *TokenStore) SetRememberedLogin(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remembered = id
	return s.writeKey(rememberedKey, id)
}

// ClearRememberedLogin removes the remembered identifier.
func (s *TokenStore) ClearRememberedLogin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remembered = ""
	return s.removeKey(rememberedKey)
}
