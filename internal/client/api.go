// Package client is the typed façade over the backend. Operations are
// served either by the HTTP implementation (resty) or by the in-memory
// mock engine; the implementation is picked once at construction from
// configuration and never mixed per call.
package client

import (
	"context"
	"time"

	"go.uber.org/zap"

	"roomdesk/internal/config"
	"roomdesk/internal/domain"
	"roomdesk/internal/mock"
)

// AuthAPI is the authentication sub-contract.
type AuthAPI interface {
	// Login exchanges credentials for a bearer token and user.
	Login(ctx context.Context, in domain.LoginInput) (*domain.LoginResult, error)
	// Logout notifies the server best-effort. Local token clearing is
	// the caller's job (the session manager always clears).
	Logout(ctx context.Context) error
	// Profile resolves the stored token to the current user.
	Profile(ctx context.Context) (*domain.User, error)
}

// CustomersAPI manages customer records.
type CustomersAPI interface {
	List(ctx context.Context, page, limit int, search string) (*domain.Page[domain.Customer], error)
	Get(ctx context.Context, id int) (*domain.Customer, error)
	Create(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id int, p domain.CustomerPatch) (*domain.Customer, error)
	Delete(ctx context.Context, id int) error
}

// RoomsAPI manages room records. available is tri-state; nil lists all.
type RoomsAPI interface {
	List(ctx context.Context, page, limit int, available *bool) (*domain.Page[domain.Room], error)
	Get(ctx context.Context, id int) (*domain.Room, error)
	Create(ctx context.Context, in domain.RoomInput) (*domain.Room, error)
	Update(ctx context.Context, id int, p domain.RoomPatch) (*domain.Room, error)
	Delete(ctx context.Context, id int) error
}

// ContractsAPI manages lease contracts.
type ContractsAPI interface {
	List(ctx context.Context, page, limit int, status string) (*domain.Page[domain.Contract], error)
	Get(ctx context.Context, id int) (*domain.Contract, error)
	Create(ctx context.Context, in domain.ContractInput) (*domain.Contract, error)
	Update(ctx context.Context, id int, p domain.ContractPatch) (*domain.Contract, error)
	Delete(ctx context.Context, id int) error
}

// BranchesAPI manages branch records.
type BranchesAPI interface {
	List(ctx context.Context) ([]domain.Branch, error)
	Get(ctx context.Context, id int) (*domain.Branch, error)
	Create(ctx context.Context, in domain.BranchInput) (*domain.Branch, error)
	Update(ctx context.Context, id int, p domain.BranchPatch) (*domain.Branch, error)
	Delete(ctx context.Context, id int) error
}

// PaymentsAPI manages payment records. contractID 0 lists all.
type PaymentsAPI interface {
	List(ctx context.Context, page, limit, contractID int) (*domain.Page[domain.Payment], error)
	Get(ctx context.Context, id int) (*domain.Payment, error)
	Create(ctx context.Context, in domain.PaymentInput) (*domain.Payment, error)
	Update(ctx context.Context, id int, p domain.PaymentPatch) (*domain.Payment, error)
	Delete(ctx context.Context, id int) error
}

// SchedulesAPI manages calendar entries, filtered by date range rather
// than paged.
type SchedulesAPI interface {
	List(ctx context.Context, from, to time.Time) ([]domain.Schedule, error)
	Get(ctx context.Context, id int) (*domain.Schedule, error)
	Create(ctx context.Context, in domain.ScheduleInput) (*domain.Schedule, error)
	Update(ctx context.Context, id int, p domain.SchedulePatch) (*domain.Schedule, error)
	Delete(ctx context.Context, id int) error
}

// DashboardAPI serves the read-only landing page aggregates.
type DashboardAPI interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
	Activities(ctx context.Context, limit int) ([]domain.Activity, error)
	Revenue(ctx context.Context, year int) ([]domain.MonthlyRevenue, error)
}

// API bundles every entity contract behind one handle.
type API struct {
	Auth      AuthAPI
	Customers CustomersAPI
	Rooms     RoomsAPI
	Contracts ContractsAPI
	Branches  BranchesAPI
	Payments  PaymentsAPI
	Schedules SchedulesAPI
	Dashboard DashboardAPI

	onUnauthorized func(fn func())
}

// OnUnauthorized registers the process-wide handler fired (once) when
// any response comes back 401. The stored token is already cleared by
// the time the handler runs. No-op in mock mode.
func (a *API) OnUnauthorized(fn func()) {
	if a.onUnauthorized != nil {
		a.onUnauthorized(fn)
	}
}

// New selects the implementation from configuration: the mock engine
// when cfg.UseMockAPI is set, the HTTP backend otherwise.
func New(cfg *config.Config, tokens *TokenStore, logger *zap.Logger) *API {
	if cfg.UseMockAPI {
		store := mock.NewStore(logger, mock.WithLatency(cfg.MockLatency))
		return NewMock(store, tokens)
	}
	return NewHTTP(cfg, tokens, logger)
}
