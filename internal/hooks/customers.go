package hooks

import (
	"context"

	"roomdesk/internal/client"
	"roomdesk/internal/domain"
	"roomdesk/internal/fetch"
)

// Customers lists customers, refetching when page, limit, or search
// change.
func Customers(api *client.API, page, limit int, search string) *fetch.Resource[*domain.Page[domain.Customer]] {
	return fetch.NewResource(func(ctx context.Context, deps []any) (*domain.Page[domain.Customer], error) {
		return api.Customers.List(ctx, deps[0].(int), deps[1].(int), deps[2].(string))
	}, clampPage(page), clampLimit(limit, DefaultPageSize), search)
}

// Customer fetches one customer by id.
func Customer(api *client.API, id int) *fetch.Resource[*domain.Customer] {
	return fetch.NewResource(func(ctx context.Context, deps []any) (*domain.Customer, error) {
		return api.Customers.Get(ctx, deps[0].(int))
	}, id)
}

// CreateCustomer builds the create mutation.
func CreateCustomer(api *client.API) *fetch.Mutation[domain.CustomerInput, *domain.Customer] {
	return fetch.NewMutation(func(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
		return api.Customers.Create(ctx, in)
	})
}

// UpdateCustomer builds the update mutation.
func UpdateCustomer(api *client.API) *fetch.Mutation[Update[domain.CustomerPatch], *domain.Customer] {
	return fetch.NewMutation(func(ctx context.Context, u Update[domain.CustomerPatch]) (*domain.Customer, error) {
		return api.Customers.Update(ctx, u.ID, u.Patch)
	})
}

// DeleteCustomer builds the delete mutation.
func DeleteCustomer(api *client.API) *fetch.Mutation[int, None] {
	return fetch.NewMutation(func(ctx context.Context, id int) (None, error) {
		return None{}, api.Customers.Delete(ctx, id)
	})
}
