// Package session owns the authentication lifecycle: restoring a
// persisted token on startup, login/logout, and the reaction to a 401
// from any call. All state writes go through the manager's mutex, so
// consumers only ever observe consistent snapshots.
package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"roomdesk/internal/client"
	"roomdesk/internal/domain"
	"roomdesk/internal/validation"
)

// commitDelay is how long a successful login waits before publishing
// the authenticated state, so the persisted token is durably on disk
// before anything reacts to the state change.
const commitDelay = 10 * time.Millisecond

// State is a point-in-time view of the session.
type State struct {
	User          *domain.User
	Authenticated bool
	Loading       bool
}

// Manager drives the session state machine.
type Manager struct {
	api    *client.API
	tokens *client.TokenStore
	logger *zap.Logger

	mu     sync.Mutex
	state  State
	closed bool
}

// NewManager builds the manager and starts restoring any persisted
// token in the background. Until that settles, Snapshot reports
// Loading. The manager also registers itself as the API's 401 handler.
func NewManager(api *client.API, tokens *client.TokenStore, logger *zap.Logger) *Manager {
	m := &Manager{
		api:    api,
		tokens: tokens,
		logger: logger,
		state:  State{Loading: true},
	}
	api.OnUnauthorized(m.expire)
	go m.restore()
	return m
}

// restore resolves the persisted token to a user, or settles
// unauthenticated. A token the server no longer accepts is cleared so
// the next startup skips the round trip.
func (m *Manager) restore() {
	if m.tokens.Token() == "" {
		m.settle(nil)
		return
	}
	user, err := m.api.Auth.Profile(context.Background())
	if err != nil {
		m.logger.Warn("persisted token rejected, clearing", zap.Error(err))
		if err := m.tokens.ClearToken(); err != nil {
			m.logger.Warn("failed to clear token", zap.Error(err))
		}
		m.settle(nil)
		return
	}
	m.settle(user)
}

func (m *Manager) settle(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.state = State{User: user, Authenticated: user != nil}
}

// Login validates the credentials, exchanges them with the backend,
// persists the token and remembered id, and publishes the
// authenticated state after commitDelay. The returned user is
// available immediately even though Snapshot lags by the delay.
func (m *Manager) Login(ctx context.Context, in domain.LoginInput) (*domain.User, error) {
	if err := validation.Login(in); err != nil {
		return nil, err
	}

	res, err := m.api.Auth.Login(ctx, in)
	if err != nil {
		return nil, err
	}

	if err := m.tokens.SetToken(res.Token); err != nil {
		m.logger.Warn("failed to persist token", zap.Error(err))
	}
	if in.Remember {
		if err := m.tokens.SetRememberedLogin(in.UserID); err != nil {
			m.logger.Warn("failed to persist remembered login", zap.Error(err))
		}
	} else {
		if err := m.tokens.ClearRememberedLogin(); err != nil {
			m.logger.Warn("failed to clear remembered login", zap.Error(err))
		}
	}

	user := res.User
	go func() {
		time.Sleep(commitDelay)
		m.settle(&user)
	}()
	return &user, nil
}

// Logout tells the server best-effort, then unconditionally clears the
// stored token and resets the state. Safe to call when already logged
// out.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.api.Auth.Logout(ctx); err != nil {
		m.logger.Warn("logout request failed", zap.Error(err))
	}
	if err := m.tokens.ClearToken(); err != nil {
		m.logger.Warn("failed to clear token", zap.Error(err))
	}
	m.settle(nil)
}

// expire reacts to a 401 on any call: the token store is already
// cleared by the client, so only the published state needs resetting.
func (m *Manager) expire() {
	m.logger.Info("session expired")
	m.settle(nil)
}

// RememberedLogin returns the persisted login id, if any.
func (m *Manager) RememberedLogin() string {
	return m.tokens.RememberedLogin()
}

// Snapshot returns the current session state.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Close stops the manager from publishing further state changes.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}
