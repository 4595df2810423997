package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"roomdesk/internal/config"
	"roomdesk/internal/domain"
	"roomdesk/internal/validation"
)

// envelope is the backend's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func (e envelope) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// rest carries the shared resty client and the global 401 side effect.
type rest struct {
	http   *resty.Client
	tokens *TokenStore
	logger *zap.Logger

	mu             sync.Mutex
	unauthorizedFn func()
	// fired makes the 401 side effect idempotent: repeated 401s
	// produce no additional effect beyond the first. A successful
	// login re-arms it.
	fired bool
}

// NewHTTP builds the resty-backed API against cfg.APIBaseURL.
func NewHTTP(cfg *config.Config, tokens *TokenStore, logger *zap.Logger) *API {
	r := &rest{tokens: tokens, logger: logger}
	c := resty.New().
		SetBaseURL(cfg.APIBaseURL).
		SetTimeout(cfg.HTTPTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if tok := tokens.Token(); tok != "" {
			req.SetHeader("Authorization", "Bearer "+tok)
		}
		req.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})
	r.http = c

	api := &API{
		Auth:      &restAuth{r},
		Customers: &restCustomers{r},
		Rooms:     &restRooms{r},
		Contracts: &restContracts{r},
		Branches:  &restBranches{r},
		Payments:  &restPayments{r},
		Schedules: &restSchedules{r},
		Dashboard: &restDashboard{r},
	}
	api.onUnauthorized = func(fn func()) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.unauthorizedFn = fn
	}
	return api
}

// unauthorized runs the terminal 401 side effect: clear the stored
// token, then hand control to the registered handler, exactly once.
func (r *rest) unauthorized() {
	if err := r.tokens.ClearToken(); err != nil {
		r.logger.Warn("failed to clear token after 401", zap.Error(err))
	}
	r.mu.Lock()
	fn := r.unauthorizedFn
	already := r.fired
	r.fired = true
	r.mu.Unlock()
	if already || fn == nil {
		return
	}
	r.logger.Info("session expired, redirecting to login")
	fn()
}

// rearm resets the 401 guard after a fresh login.
func (r *rest) rearm() {
	r.mu.Lock()
	r.fired = false
	r.mu.Unlock()
}

// do executes one request and decodes the envelope's data into T.
func do[T any](ctx context.Context, r *rest, method, path string, query url.Values, body any) (*T, error) {
	req := r.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, domain.WrapError(domain.KindTransport, fmt.Errorf("%s %s: %w", method, path, err))
	}

	var env envelope
	structured := json.Unmarshal(resp.Body(), &env) == nil

	if resp.StatusCode() == http.StatusUnauthorized {
		r.unauthorized()
		msg := "session expired"
		if structured && env.message() != "" {
			msg = env.message()
		}
		return nil, domain.AuthError(msg)
	}
	if resp.IsError() {
		if !structured || env.message() == "" {
			return nil, domain.WrapError(domain.KindTransport,
				fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode()))
		}
		switch resp.StatusCode() {
		case http.StatusNotFound:
			return nil, domain.NotFoundError(env.message())
		case http.StatusConflict:
			return nil, domain.ConflictError(env.message())
		default:
			return nil, domain.NewError(domain.KindUnexpected, env.message())
		}
	}
	if !structured || !env.Success {
		return nil, domain.WrapError(domain.KindTransport,
			fmt.Errorf("%s %s: malformed response", method, path))
	}

	var out T
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &out); err != nil {
			return nil, domain.WrapError(domain.KindTransport,
				fmt.Errorf("%s %s: decode data: %w", method, path, err))
		}
	}
	return &out, nil
}

func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return q
}

// --- auth ---

type restAuth struct{ *rest }

func (a *restAuth) Login(ctx context.Context, in domain.LoginInput) (*domain.LoginResult, error) {
	if err := validation.Login(in); err != nil {
		return nil, err
	}
	out, err := do[domain.LoginResult](ctx, a.rest, http.MethodPost, "/auth/login", nil, in)
	if err != nil {
		return nil, err
	}
	a.rearm()
	return out, nil
}

func (a *restAuth) Logout(ctx context.Context) error {
	_, err := do[struct{}](ctx, a.rest, http.MethodPost, "/auth/logout", nil, nil)
	return err
}

func (a *restAuth) Profile(ctx context.Context) (*domain.User, error) {
	return do[domain.User](ctx, a.rest, http.MethodGet, "/auth/profile", nil, nil)
}

// --- customers ---

type restCustomers struct{ *rest }

// customersPage is the wire shape of GET /customers.
type customersPage struct {
	Customers  []domain.Customer `json:"customers"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}

func (c *restCustomers) List(ctx context.Context, page, limit int, search string) (*domain.Page[domain.Customer], error) {
	q := pageQuery(page, limit)
	if search != "" {
		q.Set("search", search)
	}
	out, err := do[customersPage](ctx, c.rest, http.MethodGet, "/customers", q, nil)
	if err != nil {
		return nil, err
	}
	return &domain.Page[domain.Customer]{
		Items: out.Customers, Total: out.Total, Page: out.Page, TotalPages: out.TotalPages,
	}, nil
}

func (c *restCustomers) Get(ctx context.Context, id int) (*domain.Customer, error) {
	return do[domain.Customer](ctx, c.rest, http.MethodGet, fmt.Sprintf("/customers/%d", id), nil, nil)
}

func (c *restCustomers) Create(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	if err := validation.Customer(in); err != nil {
		return nil, err
	}
	return do[domain.Customer](ctx, c.rest, http.MethodPost, "/customers", nil, in)
}

func (c *restCustomers) Update(ctx context.Context, id int, p domain.CustomerPatch) (*domain.Customer, error) {
	if err := validation.CustomerPatch(p); err != nil {
		return nil, err
	}
	return do[domain.Customer](ctx, c.rest, http.MethodPut, fmt.Sprintf("/customers/%d", id), nil, p)
}

func (c *restCustomers) Delete(ctx context.Context, id int) error {
	_, err := do[struct{}](ctx, c.rest, http.MethodDelete, fmt.Sprintf("/customers/%d", id), nil, nil)
	return err
}

// --- rooms ---

type restRooms struct{ *rest }

type roomsPage struct {
	Rooms      []domain.Room `json:"rooms"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

func (r *restRooms) List(ctx context.Context, page, limit int, available *bool) (*domain.Page[domain.Room], error) {
	q := pageQuery(page, limit)
	if available != nil {
		q.Set("available", strconv.FormatBool(*available))
	}
	out, err := do[roomsPage](ctx, r.rest, http.MethodGet, "/rooms", q, nil)
	if err != nil {
		return nil, err
	}
	return &domain.Page[domain.Room]{
		Items: out.Rooms, Total: out.Total, Page: out.Page, TotalPages: out.TotalPages,
	}, nil
}

func (r *restRooms) Get(ctx context.Context, id int) (*domain.Room, error) {
	return do[domain.Room](ctx, r.rest, http.MethodGet, fmt.Sprintf("/rooms/%d", id), nil, nil)
}

func (r *restRooms) Create(ctx context.Context, in domain.RoomInput) (*domain.Room, error) {
	if err := validation.Room(in); err != nil {
		return nil, err
	}
	return do[domain.Room](ctx, r.rest, http.MethodPost, "/rooms", nil, in)
}

func (r *restRooms) Update(ctx context.Context, id int, p domain.RoomPatch) (*domain.Room, error) {
	if err := validation.RoomPatch(p); err != nil {
		return nil, err
	}
	return do[domain.Room](ctx, r.rest, http.MethodPut, fmt.Sprintf("/rooms/%d", id), nil, p)
}

func (r *restRooms) Delete(ctx context.Context, id int) error {
	_, err := do[struct{}](ctx, r.rest, http.MethodDelete, fmt.Sprintf("/rooms/%d", id), nil, nil)
	return err
}

// --- contracts ---

type restContracts struct{ *rest }

type contractsPage struct {
	Contracts  []domain.Contract `json:"contracts"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}

func (c *restContracts) List(ctx context.Context, page, limit int, status string) (*domain.Page[domain.Contract], error) {
	q := pageQuery(page, limit)
	if status != "" {
		q.Set("status", status)
	}
	out, err := do[contractsPage](ctx, c.rest, http.MethodGet, "/contracts", q, nil)
	if err != nil {
		return nil, err
	}
	return &domain.Page[domain.Contract]{
		Items: out.Contracts, Total: out.Total, Page: out.Page, TotalPages: out.TotalPages,
	}, nil
}

func (c *restContracts) Get(ctx context.Context, id int) (*domain.Contract, error) {
	return do[domain.Contract](ctx, c.rest, http.MethodGet, fmt.Sprintf("/contracts/%d", id), nil, nil)
}

func (c *restContracts) Create(ctx context.Context, in domain.ContractInput) (*domain.Contract, error) {
	if err := validation.Contract(in); err != nil {
		return nil, err
	}
	return do[domain.Contract](ctx, c.rest, http.MethodPost, "/contracts", nil, in)
}

func (c *restContracts) Update(ctx context.Context, id int, p domain.ContractPatch) (*domain.Contract, error) {
	if err := validation.ContractPatch(p); err != nil {
		return nil, err
	}
	return do[domain.Contract](ctx, c.rest, http.MethodPut, fmt.Sprintf("/contracts/%d", id), nil, p)
}

func (c *restContracts) Delete(ctx context.Context, id int) error {
	_, err := do[struct{}](ctx, c.rest, http.MethodDelete, fmt.Sprintf("/contracts/%d", id), nil, nil)
	return err
}

// --- branches ---

type restBranches struct{ *rest }

func (b *restBranches) List(ctx context.Context) ([]domain.Branch, error) {
	out, err := do[[]domain.Branch](ctx, b.rest, http.MethodGet, "/branches", nil, nil)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func (b *restBranches) Get(ctx context.Context, id int) (*domain.Branch, error) {
	return do[domain.Branch](ctx, b.rest, http.MethodGet, fmt.Sprintf("/branches/%d", id), nil, nil)
}

func (b *restBranches) Create(ctx context.Context, in domain.BranchInput) (*domain.Branch, error) {
	if err := validation.Branch(in); err != nil {
		return nil, err
	}
	return do[domain.Branch](ctx, b.rest, http.MethodPost, "/branches", nil, in)
}

func (b *restBranches) Update(ctx context.Context, id int, p domain.BranchPatch) (*domain.Branch, error) {
	if err := validation.BranchPatch(p); err != nil {
		return nil, err
	}
	return do[domain.Branch](ctx, b.rest, http.MethodPut, fmt.Sprintf("/branches/%d", id), nil, p)
}

func (b *restBranches) Delete(ctx context.Context, id int) error {
	_, err := do[struct{}](ctx, b.rest, http.MethodDelete, fmt.Sprintf("/branches/%d", id), nil, nil)
	return err
}

// --- payments ---

type restPayments struct{ *rest }

type paymentsPage struct {
	Payments   []domain.Payment `json:"payments"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

func (p *restPayments) List(ctx context.Context, page, limit, contractID int) (*domain.Page[domain.Payment], error) {
	q := pageQuery(page, limit)
	if contractID != 0 {
		q.Set("contractId", strconv.Itoa(contractID))
	}
	out, err := do[paymentsPage](ctx, p.rest, http.MethodGet, "/payments", q, nil)
	if err != nil {
		return nil, err
	}
	return &domain.Page[domain.Payment]{
		Items: out.Payments, Total: out.Total, Page: out.Page, TotalPages: out.TotalPages,
	}, nil
}

func (p *restPayments) Get(ctx context.Context, id int) (*domain.Payment, error) {
	return do[domain.Payment](ctx, p.rest, http.MethodGet, fmt.Sprintf("/payments/%d", id), nil, nil)
}

func (p *restPayments) Create(ctx context.Context, in domain.PaymentInput) (*domain.Payment, error) {
	if err := validation.Payment(in); err != nil {
		return nil, err
	}
	return do[domain.Payment](ctx, p.rest, http.MethodPost, "/payments", nil, in)
}

func (p *restPayments) Update(ctx context.Context, id int, patch domain.PaymentPatch) (*domain.Payment, error) {
	if err := validation.PaymentPatch(patch); err != nil {
		return nil, err
	}
	return do[domain.Payment](ctx, p.rest, http.MethodPut, fmt.Sprintf("/payments/%d", id), nil, patch)
}

func (p *restPayments) Delete(ctx context.Context, id int) error {
	_, err := do[struct{}](ctx, p.rest, http.MethodDelete, fmt.Sprintf("/payments/%d", id), nil, nil)
	return err
}

// --- schedules ---

type restSchedules struct{ *rest }

func (s *restSchedules) List(ctx context.Context, from, to time.Time) ([]domain.Schedule, error) {
	q := url.Values{}
	if !from.IsZero() {
		q.Set("startDate", from.Format(time.RFC3339))
	}
	if !to.IsZero() {
		q.Set("endDate", to.Format(time.RFC3339))
	}
	out, err := do[[]domain.Schedule](ctx, s.rest, http.MethodGet, "/schedules", q, nil)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func (s *restSchedules) Get(ctx context.Context, id int) (*domain.Schedule, error) {
	return do[domain.Schedule](ctx, s.rest, http.MethodGet, fmt.Sprintf("/schedules/%d", id), nil, nil)
}

func (s *restSchedules) Create(ctx context.Context, in domain.ScheduleInput) (*domain.Schedule, error) {
	if err := validation.Schedule(in); err != nil {
		return nil, err
	}
	return do[domain.Schedule](ctx, s.rest, http.MethodPost, "/schedules", nil, in)
}

func (s *restSchedules) Update(ctx context.Context, id int, p domain.SchedulePatch) (*domain.Schedule, error) {
	if err := validation.SchedulePatch(p); err != nil {
		return nil, err
	}
	return do[domain.Schedule](ctx, s.rest, http.MethodPut, fmt.Sprintf("/schedules/%d", id), nil, p)
}

func (s *restSchedules) Delete(ctx context.Context, id int) error {
	_, err := do[struct{}](ctx, s.rest, http.MethodDelete, fmt.Sprintf("/schedules/%d", id), nil, nil)
	return err
}

// --- dashboard ---

type restDashboard struct{ *rest }

func (d *restDashboard) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	return do[domain.DashboardStats](ctx, d.rest, http.MethodGet, "/dashboard/stats", nil, nil)
}

func (d *restDashboard) Activities(ctx context.Context, limit int) ([]domain.Activity, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	out, err := do[[]domain.Activity](ctx, d.rest, http.MethodGet, "/dashboard/activities", q, nil)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func (d *restDashboard) Revenue(ctx context.Context, year int) ([]domain.MonthlyRevenue, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	out, err := do[[]domain.MonthlyRevenue](ctx, d.rest, http.MethodGet, "/dashboard/revenue", q, nil)
	if err != nil {
		return nil, err
	}
	return *out, nil
}
