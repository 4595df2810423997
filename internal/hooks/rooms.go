package hooks

import (
	"context"

	"roomdesk/internal/client"
	"roomdesk/internal/domain"
	"roomdesk/internal/fetch"
)

// Rooms lists rooms. available is tri-state; it is carried as a plain
// dependency value (nil or bool) so pointer identity cannot force
// spurious refetches.
func Rooms(api *client.API, page, limit int, available *bool) *fetch.Resource[*domain.Page[domain.Room]] {
	var avail any
	if available != nil {
		avail = *available
	}
	return fetch.NewResource(func(ctx context.Context, deps []any) (*domain.Page[domain.Room], error) {
		var filter *bool
		if deps[2] != nil {
			v := deps[2].(bool)
			filter = &v
		}
		return api.Rooms.List(ctx, deps[0].(int), deps[1].(int), filter)
	}, clampPage(page), clampLimit(limit, DefaultRoomsPageSize), avail)
}

// Room fetches one room by id.
func Room(api *client.API, id int) *fetch.Resource[*domain.Room] {
	return fetch.NewResource(func(ctx context.Context, deps []any) (*domain.Room, error) {
		return api.Rooms.Get(ctx, deps[0].(int))
	}, id)
}

// CreateRoom builds the create mutation.
func CreateRoom(api *client.API) *fetch.Mutation[domain.RoomInput, *domain.Room] {
	return fetch.NewMutation(func(ctx context.Context, in domain.RoomInput) (*domain.Room, error) {
		return api.Rooms.Create(ctx, in)
	})
}

// UpdateRoom builds the update mutation.
func UpdateRoom(api *client.API) *fetch.Mutation[Update[domain.RoomPatch], *domain.Room] {
	return fetch.NewMutation(func(ctx context.Context, u Update[domain.RoomPatch]) (*domain.Room, error) {
		return api.Rooms.Update(ctx, u.ID, u.Patch)
	})
}

// DeleteRoom builds the delete mutation.
func DeleteRoom(api *client.API) *fetch.Mutation[int, None] {
	return fetch.NewMutation(func(ctx context.Context, id int) (None, error) {
		return None{}, api.Rooms.Delete(ctx, id)
	})
}
