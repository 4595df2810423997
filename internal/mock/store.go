// Package mock is the in-memory stand-in for the real backend, used for
// development and demos when no server is reachable. It implements the
// same operation contracts as the HTTP-backed client, simulates request
// latency, and enforces referential checks across collections.
package mock

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"roomdesk/internal/domain"
)

// Default artificial latencies, matching the timings the dashboard was
// tuned against. Loading states are not exercised by instant responses.
const (
	DefaultLatency = 400 * time.Millisecond
	logoutLatency  = 200 * time.Millisecond
	profileLatency = 300 * time.Millisecond
)

// Store owns every in-memory collection. It is constructed once at
// startup and passed by reference to whichever client implementation
// needs it; there is no package-level state.
type Store struct {
	mu      sync.Mutex
	latency time.Duration
	logger  *zap.Logger

	customers []domain.Customer
	rooms     []domain.Room
	contracts []domain.Contract
	branches  []domain.Branch
	payments  []domain.Payment
	schedules []domain.Schedule

	accounts []account
	// sessions maps issued bearer tokens to their user.
	sessions map[string]domain.User
}

// Option configures a Store.
type Option func(*Store)

// WithLatency overrides the artificial per-call latency. Tests pass 0.
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// WithoutFixtures starts the store with empty collections (the login
// allow-list is still seeded).
func WithoutFixtures() Option {
	return func(s *Store) {
		s.customers = nil
		s.rooms = nil
		s.contracts = nil
		s.branches = nil
		s.payments = nil
		s.schedules = nil
	}
}

// NewStore builds a seeded store.
func NewStore(logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		latency:  DefaultLatency,
		logger:   logger,
		sessions: map[string]domain.User{},
	}
	s.seed()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// sleep simulates network latency, honoring cancellation.
func (s *Store) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return domain.WrapError(domain.KindTransport, ctx.Err())
	}
}

func (s *Store) wait(ctx context.Context) error {
	return s.sleep(ctx, s.latency)
}

// scaled derives per-op latencies (logout, profile) from the configured
// base so that a zero-latency test store stays instant.
func (s *Store) scaled(d time.Duration) time.Duration {
	if s.latency == 0 {
		return 0
	}
	return d
}

// paginate slices a filtered collection. Pages are 1-indexed and the
// final page may be short; totalPages is ceil(len/limit).
func paginate[T any](items []T, page, limit int) *domain.Page[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	total := len(items)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return &domain.Page[T]{
		Items:      out,
		Total:      total,
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
	}
}

// nextID assigns max existing id + 1, starting at 1 for an empty
// collection.
func nextID[T any](items []T, id func(T) int) int {
	max := 0
	for _, it := range items {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}
