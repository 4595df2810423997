// Package fetch wraps client operations with derived request state:
// data, loading, and a normalized error string. It is the one place
// consumers read asynchronous results from; they never touch transport
// errors directly.
package fetch

import (
	"context"
	"errors"
	"sync"

	"roomdesk/internal/domain"
	"roomdesk/internal/validation"
)

// UnexpectedErrorMessage is the catch-all message for failures without
// a structured server message.
const UnexpectedErrorMessage = "an unexpected error occurred"

// Normalize reduces any operation failure to the single message string
// forms render. A classified error with a server message keeps that
// message; field errors keep their joined text; everything else is the
// generic message.
func Normalize(err error) string {
	var de *domain.Error
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	var ve validation.Errors
	if errors.As(err, &ve) {
		return ve.Error()
	}
	return UnexpectedErrorMessage
}

// State is a point-in-time snapshot of a resource or mutation.
// HasData distinguishes "no result yet" from a zero-valued result.
type State[T any] struct {
	Data    T
	HasData bool
	Loading bool
	Err     string
}

// Resource runs a fetch at construction and again whenever its
// dependency values change or Refetch is called. A read failure keeps
// the previous data in place so the UI can offer a retry without
// flashing empty state.
type Resource[T any] struct {
	mu    sync.Mutex
	fn    func(context.Context, []any) (T, error)
	deps  []any
	state State[T]
	// seq numbers issued fetches; completions that are not the latest
	// issued are discarded, so out-of-order responses cannot clobber
	// newer state.
	seq    uint64
	closed bool
}

// NewResource starts the initial fetch immediately. deps are the
// operation's positional argument values; each fetch receives the
// snapshot current at issuance, and SetDeps with different values
// refetches.
func NewResource[T any](fn func(context.Context, []any) (T, error), deps ...any) *Resource[T] {
	r := &Resource[T]{fn: fn, deps: deps}
	r.mu.Lock()
	r.start()
	r.mu.Unlock()
	return r
}

// start issues a fetch. Caller holds the lock.
func (r *Resource[T]) start() {
	r.seq++
	r.state.Loading = true
	r.state.Err = ""
	snapshot := append([]any(nil), r.deps...)
	go r.run(r.seq, snapshot)
}

func (r *Resource[T]) run(seq uint64, deps []any) {
	// In-flight requests are never aborted; stale completions are
	// dropped below instead.
	data, err := r.fn(context.Background(), deps)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || seq != r.seq {
		return
	}
	r.state.Loading = false
	if err != nil {
		r.state.Err = Normalize(err)
		return
	}
	r.state.Data = data
	r.state.HasData = true
}

// SetDeps refetches when any dependency value changed (shallow,
// per-argument comparison).
func (r *Resource[T]) SetDeps(deps ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if sameDeps(r.deps, deps) {
		return
	}
	r.deps = deps
	r.start()
}

// Refetch repeats the fetch immediately with the current dependencies.
func (r *Resource[T]) Refetch() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.start()
}

// Snapshot returns the current derived state.
func (r *Resource[T]) Snapshot() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Close suppresses every later state write. In-flight fetches keep
// running but their results are dropped.
func (r *Resource[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}

func sameDeps(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Mutation wraps a one-argument operation (create, update, delete).
type Mutation[In, Out any] struct {
	mu    sync.Mutex
	fn    func(context.Context, In) (Out, error)
	state State[Out]
}

// NewMutation builds an idle mutation; nothing runs until Mutate.
func NewMutation[In, Out any](fn func(context.Context, In) (Out, error)) *Mutation[In, Out] {
	return &Mutation[In, Out]{fn: fn}
}

// Mutate invokes the operation. On success the result is stored and
// returned; on failure the normalized message is stored and the error
// is returned to the caller untouched.
func (m *Mutation[In, Out]) Mutate(ctx context.Context, in In) (Out, error) {
	m.mu.Lock()
	m.state.Loading = true
	m.state.Err = ""
	m.mu.Unlock()

	out, err := m.fn(ctx, in)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Loading = false
	if err != nil {
		m.state.Err = Normalize(err)
		var zero Out
		return zero, err
	}
	m.state.Data = out
	m.state.HasData = true
	return out, nil
}

// Snapshot returns the current derived state.
func (m *Mutation[In, Out]) Snapshot() State[Out] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// OptimisticMutation applies a caller-supplied speculative result
// before the operation resolves. Success replaces it with the
// authoritative result; failure discards it entirely rather than
// attempting a partial merge.
type OptimisticMutation[In, Out any] struct {
	mu        sync.Mutex
	fn        func(context.Context, In) (Out, error)
	speculate func(In) Out
	state     State[Out]
}

// NewOptimistic builds an optimistic mutation. speculate may be nil,
// which degrades to plain mutation behavior with optimistic rollback.
func NewOptimistic[In, Out any](fn func(context.Context, In) (Out, error), speculate func(In) Out) *OptimisticMutation[In, Out] {
	return &OptimisticMutation[In, Out]{fn: fn, speculate: speculate}
}

// Mutate runs the operation with the speculative result visible while
// it is in flight.
func (m *OptimisticMutation[In, Out]) Mutate(ctx context.Context, in In) (Out, error) {
	m.mu.Lock()
	m.state.Loading = true
	m.state.Err = ""
	if m.speculate != nil {
		m.state.Data = m.speculate(in)
		m.state.HasData = true
	}
	m.mu.Unlock()

	out, err := m.fn(ctx, in)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Loading = false
	if err != nil {
		var zero Out
		m.state.Data = zero
		m.state.HasData = false
		m.state.Err = Normalize(err)
		return zero, err
	}
	m.state.Data = out
	m.state.HasData = true
	return out, nil
}

// Snapshot returns the current derived state.
func (m *OptimisticMutation[In, Out]) Snapshot() State[Out] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}
