package hooks

import (
	"context"
	"time"

	"roomdesk/internal/client"
	"roomdesk/internal/domain"
	"roomdesk/internal/fetch"
)

// Schedules lists schedules overlapping [from, to]. A zero time leaves
// that side of the range open.
func Schedules(api *client.API, from, to time.Time) *fetch.Resource[[]domain.Schedule] {
	return fetch.NewResource(func(ctx context.Context, deps []any) ([]domain.Schedule, error) {
		return api.Schedules.List(ctx, deps[0].(time.Time), deps[1].(time.Time))
	}, from, to)
}

// Schedule fetches one schedule by id.
func Schedule(api *client.API, id int) *fetch.Resource[*domain.Schedule] {
	return fetch.NewResource(func(ctx context.Context, deps []any) (*domain.Schedule, error) {
		return api.Schedules.Get(ctx, deps[0].(int))
	}, id)
}

// CreateSchedule builds the create mutation.
func CreateSchedule(api *client.API) *fetch.Mutation[domain.ScheduleInput, *domain.Schedule] {
	return fetch.NewMutation(func(ctx context.Context, in domain.ScheduleInput) (*domain.Schedule, error) {
		return api.Schedules.Create(ctx, in)
	})
}

// UpdateSchedule builds the update mutation.
func UpdateSchedule(api *client.API) *fetch.Mutation[Update[domain.SchedulePatch], *domain.Schedule] {
	return fetch.NewMutation(func(ctx context.Context, u Update[domain.SchedulePatch]) (*domain.Schedule, error) {
		return api.Schedules.Update(ctx, u.ID, u.Patch)
	})
}

// DeleteSchedule builds the delete mutation.
func DeleteSchedule(api *client.API) *fetch.Mutation[int, None] {
	return fetch.NewMutation(func(ctx context.Context, id int) (None, error) {
		return None{}, api.Schedules.Delete(ctx, id)
	})
}
