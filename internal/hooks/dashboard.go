package hooks

import (
	"context"

	"roomdesk/internal/client"
	"roomdesk/internal/domain"
	"roomdesk/internal/fetch"
)

// DashboardStats loads the aggregate counters shown on the landing view.
func DashboardStats(api *client.API) *fetch.Resource[*domain.DashboardStats] {
	return fetch.NewResource(func(ctx context.Context, _ []any) (*domain.DashboardStats, error) {
		return api.Dashboard.Stats(ctx)
	})
}

// Activities loads the most recent activity entries, newest first.
func Activities(api *client.API, limit int) *fetch.Resource[[]domain.Activity] {
	return fetch.NewResource(func(ctx context.Context, deps []any) ([]domain.Activity, error) {
		return api.Dashboard.Activities(ctx, deps[0].(int))
	}, clampLimit(limit, DefaultPageSize))
}

// MonthlyRevenue loads the per-month revenue series for one year.
func MonthlyRevenue(api *client.API, year int) *fetch.Resource[[]domain.MonthlyRevenue] {
	return fetch.NewResource(func(ctx context.Context, deps []any) ([]domain.MonthlyRevenue, error) {
		return api.Dashboard.Revenue(ctx, deps[0].(int))
	}, year)
}
