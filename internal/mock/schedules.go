package mock

import (
	"context"
	"time"

	"roomdesk/internal/domain"
)

// ListSchedules returns entries overlapping [from, to]. Zero bounds are
// open ends; with both zero the whole collection comes back.
func (s *Store) ListSchedules(ctx context.Context, from, to time.Time) ([]domain.Schedule, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Schedule
	for _, sc := range s.schedules {
		if !from.IsZero() && sc.EndDate.Before(from) {
			continue
		}
		if !to.IsZero() && sc.StartDate.After(to) {
			continue
		}
		out = append(out, sc)
	}
	return out, nil
}

// GetSchedule returns the entry by id.
func (s *Store) GetSchedule(ctx context.Context, id int) (*domain.Schedule, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sc := range s.schedules {
		if sc.ID == id {
			out := sc
			return &out, nil
		}
	}
	return nil, domain.NotFoundError("schedule not found")
}

// CreateSchedule appends a new entry.
func (s *Store) CreateSchedule(ctx context.Context, in domain.ScheduleInput) (*domain.Schedule, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	sc := domain.Schedule{
		ID:          nextID(s.schedules, func(sc domain.Schedule) int { return sc.ID }),
		Title:       in.Title,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		IsAllDay:    in.IsAllDay,
		Category:    in.Category,
		Priority:    in.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.schedules = append(s.schedules, sc)
	return &sc, nil
}

// UpdateSchedule merges the provided fields over the stored entry.
func (s *Store) UpdateSchedule(ctx context.Context, id int, p domain.SchedulePatch) (*domain.Schedule, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.schedules {
		if s.schedules[i].ID != id {
			continue
		}
		sc := &s.schedules[i]
		if p.Title != nil {
			sc.Title = *p.Title
		}
		if p.Description != nil {
			sc.Description = *p.Description
		}
		if p.StartDate != nil {
			sc.StartDate = *p.StartDate
		}
		if p.EndDate != nil {
			sc.EndDate = *p.EndDate
		}
		if p.IsAllDay != nil {
			sc.IsAllDay = *p.IsAllDay
		}
		if p.Category != nil {
			sc.Category = *p.Category
		}
		if p.Priority != nil {
			sc.Priority = *p.Priority
		}
		sc.UpdatedAt = time.Now().UTC()
		out := *sc
		return &out, nil
	}
	return nil, domain.NotFoundError("schedule not found")
}

// DeleteSchedule removes the entry in place.
func (s *Store) DeleteSchedule(ctx context.Context, id int) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.schedules {
		if s.schedules[i].ID == id {
			s.schedules = append(s.schedules[:i], s.schedules[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError("schedule not found")
}
