package hooks

import (
	"context"

	"roomdesk/internal/client"
	"roomdesk/internal/domain"
	"roomdesk/internal/fetch"
)

// Contracts lists contracts, optionally narrowed by status.
func Contracts(api *client.API, page, limit int, status string) *fetch.Resource[*domain.Page[domain.Contract]] {
	return fetch.NewResource(func(ctx context.Context, deps []any) (*domain.Page[domain.Contract], error) {
		return api.Contracts.List(ctx, deps[0].(int), deps[1].(int), deps[2].(string))
	}, clampPage(page), clampLimit(limit, DefaultPageSize), status)
}

// Contract fetches one contract by id.
func Contract(api *client.API, id int) *fetch.Resource[*domain.Contract] {
	return fetch.NewResource(func(ctx context.Context, deps []any) (*domain.Contract, error) {
		return api.Contracts.Get(ctx, deps[0].(int))
	}, id)
}

// CreateContract builds the create mutation.
func CreateContract(api *client.API) *fetch.Mutation[domain.ContractInput, *domain.Contract] {
	return fetch.NewMutation(func(ctx context.Context, in domain.ContractInput) (*domain.Contract, error) {
		return api.Contracts.Create(ctx, in)
	})
}

// CreateContractOptimistic is the optimistic variant used by the
// contract form: the speculative contract is shown while the create is
// in flight and discarded wholesale if it fails.
func CreateContractOptimistic(api *client.API, speculate func(domain.ContractInput) *domain.Contract) *fetch.OptimisticMutation[domain.ContractInput, *domain.Contract] {
	return fetch.NewOptimistic(func(ctx context.Context, in domain.ContractInput) (*domain.Contract, error) {
		return api.Contracts.Create(ctx, in)
	}, speculate)
}

// UpdateContract builds the update mutation.
func UpdateContract(api *client.API) *fetch.Mutation[Update[domain.ContractPatch], *domain.Contract] {
	return fetch.NewMutation(func(ctx context.Context, u Update[domain.ContractPatch]) (*domain.Contract, error) {
		return api.Contracts.Update(ctx, u.ID, u.Patch)
	})
}

// DeleteContract builds the delete mutation.
func DeleteContract(api *client.API) *fetch.Mutation[int, None] {
	return fetch.NewMutation(func(ctx context.Context, id int) (None, error) {
		return None{}, api.Contracts.Delete(ctx, id)
	})
}
