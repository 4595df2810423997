package mock

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"roomdesk/internal/domain"
)

const tokenPrefix = "mock-jwt-token-"

// Login checks the credentials against the seeded allow-list and issues
// a deterministic fabricated token on success.
func (s *Store) Login(ctx context.Context, in domain.LoginInput) (*domain.LoginResult, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.userID != in.UserID {
			continue
		}
		if bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(in.Password)) != nil {
			break
		}
		token := fmt.Sprintf("%s%d", tokenPrefix, acc.user.ID)
		s.sessions[token] = acc.user
		s.logger.Info("mock login", zap.String("user_id", in.UserID), zap.String("role", acc.user.Role))
		return &domain.LoginResult{Token: token, User: acc.user}, nil
	}
	return nil, domain.AuthError("invalid credentials")
}

// Logout drops the session if the token is known. Unknown tokens are
// tolerated so logout stays idempotent.
func (s *Store) Logout(ctx context.Context, token string) error {
	if err := s.sleep(ctx, s.scaled(logoutLatency)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Profile resolves the bearer token back to its user. Tokens issued in
// a previous process survive as long as the numeric suffix still names
// a seeded account.
func (s *Store) Profile(ctx context.Context, token string) (*domain.User, error) {
	if err := s.sleep(ctx, s.scaled(profileLatency)); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.sessions[token]; ok {
		return &u, nil
	}
	if id, ok := strings.CutPrefix(token, tokenPrefix); ok {
		if n, err := strconv.Atoi(id); err == nil {
			for _, acc := range s.accounts {
				if acc.user.ID == n {
					u := acc.user
					return &u, nil
				}
			}
		}
	}
	return nil, domain.AuthError("unauthenticated")
}
