package mock

import (
	"context"
	"time"

	"roomdesk/internal/domain"
)

// ListRooms pages through rooms, optionally narrowed by availability.
// available is a tri-state: nil means no filter.
func (s *Store) ListRooms(ctx context.Context, page, limit int, available *bool) (*domain.Page[domain.Room], error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.rooms
	if available != nil {
		filtered = nil
		for _, r := range s.rooms {
			if r.IsAvailable == *available {
				filtered = append(filtered, r)
			}
		}
	}
	return paginate(filtered, page, limit), nil
}

// GetRoom returns the room by id.
func (s *Store) GetRoom(ctx context.Context, id int) (*domain.Room, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rooms {
		if r.ID == id {
			out := r
			return &out, nil
		}
	}
	return nil, domain.NotFoundError("room not found")
}

// CreateRoom appends a new record. New rooms start available.
func (s *Store) CreateRoom(ctx context.Context, in domain.RoomInput) (*domain.Room, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	r := domain.Room{
		ID:            nextID(s.rooms, func(r domain.Room) int { return r.ID }),
		RoomNumber:    in.RoomNumber,
		Floor:         in.Floor,
		RoomType:      in.RoomType,
		Area:          in.Area,
		MonthlyRent:   in.MonthlyRent,
		Deposit:       in.Deposit,
		ManagementFee: in.ManagementFee,
		Description:   in.Description,
		Amenities:     append([]string(nil), in.Amenities...),
		IsAvailable:   true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.rooms = append(s.rooms, r)
	return &r, nil
}

// UpdateRoom merges the provided fields over the stored record.
// Availability is not patchable; it only changes through contracts.
func (s *Store) UpdateRoom(ctx context.Context, id int, p domain.RoomPatch) (*domain.Room, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].ID != id {
			continue
		}
		r := &s.rooms[i]
		if p.RoomNumber != nil {
			r.RoomNumber = *p.RoomNumber
		}
		if p.Floor != nil {
			r.Floor = *p.Floor
		}
		if p.RoomType != nil {
			r.RoomType = *p.RoomType
		}
		if p.Area != nil {
			r.Area = *p.Area
		}
		if p.MonthlyRent != nil {
			r.MonthlyRent = *p.MonthlyRent
		}
		if p.Deposit != nil {
			r.Deposit = *p.Deposit
		}
		if p.ManagementFee != nil {
			r.ManagementFee = *p.ManagementFee
		}
		if p.Description != nil {
			r.Description = *p.Description
		}
		if p.Amenities != nil {
			r.Amenities = append([]string(nil), (*p.Amenities)...)
		}
		r.UpdatedAt = time.Now().UTC()
		out := *r
		return &out, nil
	}
	return nil, domain.NotFoundError("room not found")
}

// DeleteRoom removes the record in place.
func (s *Store) DeleteRoom(ctx context.Context, id int) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].ID == id {
			s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError("room not found")
}
