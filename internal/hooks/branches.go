package hooks

import (
	"context"

	"roomdesk/internal/client"
	"roomdesk/internal/domain"
	"roomdesk/internal/fetch"
)

// Branches lists every branch.
func Branches(api *client.API) *fetch.Resource[[]domain.Branch] {
	return fetch.NewResource(func(ctx context.Context, _ []any) ([]domain.Branch, error) {
		return api.Branches.List(ctx)
	})
}

// Branch fetches one branch by id.
func Branch(api *client.API, id int) *fetch.Resource[*domain.Branch] {
	return fetch.NewResource(func(ctx context.Context, deps []any) (*domain.Branch, error) {
		return api.Branches.Get(ctx, deps[0].(int))
	}, id)
}

// CreateBranch builds the create mutation.
func CreateBranch(api *client.API) *fetch.Mutation[domain.BranchInput, *domain.Branch] {
	return fetch.NewMutation(func(ctx context.Context, in domain.BranchInput) (*domain.Branch, error) {
		return api.Branches.Create(ctx, in)
	})
}

// UpdateBranch builds the update mutation.
func UpdateBranch(api *client.API) *fetch.Mutation[Update[domain.BranchPatch], *domain.Branch] {
	return fetch.NewMutation(func(ctx context.Context, u Update[domain.BranchPatch]) (*domain.Branch, error) {
		return api.Branches.Update(ctx, u.ID, u.Patch)
	})
}

// DeleteBranch builds the delete mutation.
func DeleteBranch(api *client.API) *fetch.Mutation[int, None] {
	return fetch.NewMutation(func(ctx context.Context, id int) (None, error) {
		return None{}, api.Branches.Delete(ctx, id)
	})
}
