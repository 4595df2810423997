package client

import (
	"context"
	"time"

	"roomdesk/internal/domain"
	"roomdesk/internal/mock"
	"roomdesk/internal/validation"
)

// NewMock builds the API against an in-memory store. Used when no
// backend is reachable and by tests needing deterministic data.
func NewMock(store *mock.Store, tokens *TokenStore) *API {
	m := &mocked{store: store, tokens: tokens}
	return &API{
		Auth:      &mockAuth{m},
		Customers: &mockCustomers{m},
		Rooms:     &mockRooms{m},
		Contracts: &mockContracts{m},
		Branches:  &mockBranches{m},
		Payments:  &mockPayments{m},
		Schedules: &mockSchedules{m},
		Dashboard: &mockDashboard{m},
	}
}

type mocked struct {
	store  *mock.Store
	tokens *TokenStore
}

// --- auth ---

type mockAuth struct{ *mocked }

func (a *mockAuth) Login(ctx context.Context, in domain.LoginInput) (*domain.LoginResult, error) {
	if err := validation.Login(in); err != nil {
		return nil, err
	}
	return a.store.Login(ctx, in)
}

func (a *mockAuth) Logout(ctx context.Context) error {
	return a.store.Logout(ctx, a.tokens.Token())
}

func (a *mockAuth) Profile(ctx context.Context) (*domain.User, error) {
	return a.store.Profile(ctx, a.tokens.Token())
}

// --- customers ---

type mockCustomers struct{ *mocked }

func (c *mockCustomers) List(ctx context.Context, page, limit int, search string) (*domain.Page[domain.Customer], error) {
	return c.store.ListCustomers(ctx, page, limit, search)
}

func (c *mockCustomers) Get(ctx context.Context, id int) (*domain.Customer, error) {
	return c.store.GetCustomer(ctx, id)
}

func (c *mockCustomers) Create(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	if err := validation.Customer(in); err != nil {
		return nil, err
	}
	return c.store.CreateCustomer(ctx, in)
}

func (c *mockCustomers) Update(ctx context.Context, id int, p domain.CustomerPatch) (*domain.Customer, error) {
	if err := validation.CustomerPatch(p); err != nil {
		return nil, err
	}
	return c.store.UpdateCustomer(ctx, id, p)
}

func (c *mockCustomers) Delete(ctx context.Context, id int) error {
	return c.store.DeleteCustomer(ctx, id)
}

// --- rooms ---

type mockRooms struct{ *mocked }

func (r *mockRooms) List(ctx context.Context, page, limit int, available *bool) (*domain.Page[domain.Room], error) {
	return r.store.ListRooms(ctx, page, limit, available)
}

func (r *mockRooms) Get(ctx context.Context, id int) (*domain.Room, error) {
	return r.store.GetRoom(ctx, id)
}

func (r *mockRooms) Create(ctx context.Context, in domain.RoomInput) (*domain.Room, error) {
	if err := validation.Room(in); err != nil {
		return nil, err
	}
	return r.store.CreateRoom(ctx, in)
}

func (r *mockRooms) Update(ctx context.Context, id int, p domain.RoomPatch) (*domain.Room, error) {
	if err := validation.RoomPatch(p); err != nil {
		return nil, err
	}
	return r.store.UpdateRoom(ctx, id, p)
}

func (r *mockRooms) Delete(ctx context.Context, id int) error {
	return r.store.DeleteRoom(ctx, id)
}

// --- contracts ---

type mockContracts struct{ *mocked }

func (c *mockContracts) List(ctx context.Context, page, limit int, status string) (*domain.Page[domain.Contract], error) {
	return c.store.ListContracts(ctx, page, limit, status)
}

func (c *mockContracts) Get(ctx context.Context, id int) (*domain.Contract, error) {
	return c.store.GetContract(ctx, id)
}

func (c *mockContracts) Create(ctx context.Context, in domain.ContractInput) (*domain.Contract, error) {
	if err := validation.Contract(in); err != nil {
		return nil, err
	}
	return c.store.CreateContract(ctx, in)
}

func (c *mockContracts) Update(ctx context.Context, id int, p domain.ContractPatch) (*domain.Contract, error) {
	if err := validation.ContractPatch(p); err != nil {
		return nil, err
	}
	return c.store.UpdateContract(ctx, id, p)
}

func (c *mockContracts) Delete(ctx context.Context, id int) error {
	return c.store.DeleteContract(ctx, id)
}

// --- branches ---

type mockBranches struct{ *mocked }

func (b *mockBranches) List(ctx context.Context) ([]domain.Branch, error) {
	return b.store.ListBranches(ctx)
}

func (b *mockBranches) Get(ctx context.Context, id int) (*domain.Branch, error) {
	return b.store.GetBranch(ctx, id)
}

func (b *mockBranches) Create(ctx context.Context, in domain.BranchInput) (*domain.Branch, error) {
	if err := validation.Branch(in); err != nil {
		return nil, err
	}
	return b.store.CreateBranch(ctx, in)
}

func (b *mockBranches) Update(ctx context.Context, id int, p domain.BranchPatch) (*domain.Branch, error) {
	if err := validation.BranchPatch(p); err != nil {
		return nil, err
	}
	return b.store.UpdateBranch(ctx, id, p)
}

func (b *mockBranches) Delete(ctx context.Context, id int) error {
	return b.store.DeleteBranch(ctx, id)
}

// --- payments ---

type mockPayments struct{ *mocked }

func (p *mockPayments) List(ctx context.Context, page, limit, contractID int) (*domain.Page[domain.Payment], error) {
	return p.store.ListPayments(ctx, page, limit, contractID)
}

func (p *mockPayments) Get(ctx context.Context, id int) (*domain.Payment, error) {
	return p.store.GetPayment(ctx, id)
}

func (p *mockPayments) Create(ctx context.Context, in domain.PaymentInput) (*domain.Payment, error) {
	if err := validation.Payment(in); err != nil {
		return nil, err
	}
	return p.store.CreatePayment(ctx, in)
}

func (p *mockPayments) Update(ctx context.Context, id int, patch domain.PaymentPatch) (*domain.Payment, error) {
	if err := validation.PaymentPatch(patch); err != nil {
		return nil, err
	}
	return p.store.UpdatePayment(ctx, id, patch)
}

func (p *mockPayments) Delete(ctx context.Context, id int) error {
	return p.store.DeletePayment(ctx, id)
}

// --- schedules ---

type mockSchedules struct{ *mocked }

func (s *mockSchedules) List(ctx context.Context, from, to time.Time) ([]domain.Schedule, error) {
	return s.store.ListSchedules(ctx, from, to)
}

func (s *mockSchedules) Get(ctx context.Context, id int) (*domain.Schedule, error) {
	return s.store.GetSchedule(ctx, id)
}

func (s *mockSchedules) Create(ctx context.Context, in domain.ScheduleInput) (*domain.Schedule, error) {
	if err := validation.Schedule(in); err != nil {
		return nil, err
	}
	return s.store.CreateSchedule(ctx, in)
}

func (s *mockSchedules) Update(ctx context.Context, id int, p domain.SchedulePatch) (*domain.Schedule, error) {
	if err := validation.SchedulePatch(p); err != nil {
		return nil, err
	}
	return s.store.UpdateSchedule(ctx, id, p)
}

func (s *mockSchedules) Delete(ctx context.Context, id int) error {
	return s.store.DeleteSchedule(ctx, id)
}

// --- dashboard ---

type mockDashboard struct{ *mocked }

func (d *mockDashboard) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	return d.store.Stats(ctx)
}

func (d *mockDashboard) Activities(ctx context.Context, limit int) ([]domain.Activity, error) {
	return d.store.Activities(ctx, limit)
}

func (d *mockDashboard) Revenue(ctx context.Context, year int) ([]domain.MonthlyRevenue, error) {
	return d.store.Revenue(ctx, year)
}
