package hooks

import (
	"context"

	"roomdesk/internal/client"
	"roomdesk/internal/domain"
	"roomdesk/internal/fetch"
)

// Payments lists payments, optionally narrowed to one contract
// (contractID 0 lists all).
func Payments(api *client.API, page, limit, contractID int) *fetch.Resource[*domain.Page[domain.Payment]] {
	return fetch.NewResource(func(ctx context.Context, deps []any) (*domain.Page[domain.Payment], error) {
		return api.Payments.List(ctx, deps[0].(int), deps[1].(int), deps[2].(int))
	}, clampPage(page), clampLimit(limit, DefaultPageSize), contractID)
}

// Payment fetches one payment by id.
func Payment(api *client.API, id int) *fetch.Resource[*domain.Payment] {
	return fetch.NewResource(func(ctx context.Context, deps []any) (*domain.Payment, error) {
		return api.Payments.Get(ctx, deps[0].(int))
	}, id)
}

// CreatePayment builds the create mutation.
func CreatePayment(api *client.API) *fetch.Mutation[domain.PaymentInput, *domain.Payment] {
	return fetch.NewMutation(func(ctx context.Context, in domain.PaymentInput) (*domain.Payment, error) {
		return api.Payments.Create(ctx, in)
	})
}

// UpdatePayment builds the update mutation.
func UpdatePayment(api *client.API) *fetch.Mutation[Update[domain.PaymentPatch], *domain.Payment] {
	return fetch.NewMutation(func(ctx context.Context, u Update[domain.PaymentPatch]) (*domain.Payment, error) {
		return api.Payments.Update(ctx, u.ID, u.Patch)
	})
}

// DeletePayment builds the delete mutation.
func DeletePayment(api *client.API) *fetch.Mutation[int, None] {
	return fetch.NewMutation(func(ctx context.Context, id int) (None, error) {
		return None{}, api.Payments.Delete(ctx, id)
	})
}
