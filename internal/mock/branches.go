package mock

import (
	"context"
	"time"

	"roomdesk/internal/domain"
)

// ListBranches returns every branch; the collection is small enough
// that the dashboard never pages it.
func (s *Store) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Branch, len(s.branches))
	copy(out, s.branches)
	return out, nil
}

// GetBranch returns the branch by id.
func (s *Store) GetBranch(ctx context.Context, id int) (*domain.Branch, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.branches {
		if b.ID == id {
			out := b
			return &out, nil
		}
	}
	return nil, domain.NotFoundError("branch not found")
}

// CreateBranch appends a new record.
func (s *Store) CreateBranch(ctx context.Context, in domain.BranchInput) (*domain.Branch, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	b := domain.Branch{
		ID:           nextID(s.branches, func(b domain.Branch) int { return b.ID }),
		Name:         in.Name,
		Code:         in.Code,
		Address:      in.Address,
		Phone:        in.Phone,
		ManagerName:  in.ManagerName,
		ManagerPhone: in.ManagerPhone,
		Description:  in.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.branches = append(s.branches, b)
	return &b, nil
}

// UpdateBranch merges the provided fields over the stored record.
func (s *Store) UpdateBranch(ctx context.Context, id int, p domain.BranchPatch) (*domain.Branch, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.branches {
		if s.branches[i].ID != id {
			continue
		}
		b := &s.branches[i]
		if p.Name != nil {
			b.Name = *p.Name
		}
		if p.Code != nil {
			b.Code = *p.Code
		}
		if p.Address != nil {
			b.Address = *p.Address
		}
		if p.Phone != nil {
			b.Phone = *p.Phone
		}
		if p.ManagerName != nil {
			b.ManagerName = *p.ManagerName
		}
		if p.ManagerPhone != nil {
			b.ManagerPhone = *p.ManagerPhone
		}
		if p.Description != nil {
			b.Description = *p.Description
		}
		b.UpdatedAt = time.Now().UTC()
		out := *b
		return &out, nil
	}
	return nil, domain.NotFoundError("branch not found")
}

// DeleteBranch removes the record in place.
func (s *Store) DeleteBranch(ctx context.Context, id int) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.branches {
		if s.branches[i].ID == id {
			s.branches = append(s.branches[:i], s.branches[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError("branch not found")
}
