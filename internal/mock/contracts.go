package mock

import (
	"context"
	"time"

	"roomdesk/internal/domain"
)

// ListContracts pages through contracts, optionally narrowed by status.
func (s *Store) ListContracts(ctx context.Context, page, limit int, status string) (*domain.Page[domain.Contract], error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.contracts
	if status != "" {
		filtered = nil
		for _, c := range s.contracts {
			if c.Status == status {
				filtered = append(filtered, c)
			}
		}
	}
	return paginate(filtered, page, limit), nil
}

// GetContract returns the contract by id.
func (s *Store) GetContract(ctx context.Context, id int) (*domain.Contract, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.contracts {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, domain.NotFoundError("contract not found")
}

// CreateContract creates an active contract after checking that both
// referenced records exist. As a side effect the referenced room is
// marked unavailable for the life of the process; nothing reverts it
// when the contract later expires or is terminated.
func (s *Store) CreateContract(ctx context.Context, in domain.ContractInput) (*domain.Contract, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var customer *domain.Customer
	for i := range s.customers {
		if s.customers[i].ID == in.CustomerID {
			customer = &s.customers[i]
			break
		}
	}
	var room *domain.Room
	for i := range s.rooms {
		if s.rooms[i].ID == in.RoomID {
			room = &s.rooms[i]
			break
		}
	}
	if customer == nil || room == nil {
		return nil, domain.ConflictError("customer or room not found")
	}

	room.IsAvailable = false
	customerCopy := *customer
	roomCopy := *room

	now := time.Now().UTC()
	c := domain.Contract{
		ID:            nextID(s.contracts, func(c domain.Contract) int { return c.ID }),
		CustomerID:    in.CustomerID,
		RoomID:        in.RoomID,
		Customer:      &customerCopy,
		Room:          &roomCopy,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		MonthlyRent:   in.MonthlyRent,
		Deposit:       in.Deposit,
		ManagementFee: in.ManagementFee,
		Note:          in.Note,
		Status:        domain.ContractActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.contracts = append(s.contracts, c)
	return &c, nil
}

// UpdateContract merges the provided fields over the stored record.
func (s *Store) UpdateContract(ctx context.Context, id int, p domain.ContractPatch) (*domain.Contract, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contracts {
		if s.contracts[i].ID != id {
			continue
		}
		c := &s.contracts[i]
		if p.StartDate != nil {
			c.StartDate = *p.StartDate
		}
		if p.EndDate != nil {
			c.EndDate = *p.EndDate
		}
		if p.MonthlyRent != nil {
			c.MonthlyRent = *p.MonthlyRent
		}
		if p.Deposit != nil {
			c.Deposit = *p.Deposit
		}
		if p.ManagementFee != nil {
			c.ManagementFee = *p.ManagementFee
		}
		if p.Note != nil {
			c.Note = *p.Note
		}
		if p.Status != nil {
			c.Status = *p.Status
		}
		c.UpdatedAt = time.Now().UTC()
		out := *c
		return &out, nil
	}
	return nil, domain.NotFoundError("contract not found")
}

// DeleteContract removes the record in place. The room's availability
// is deliberately left untouched.
func (s *Store) DeleteContract(ctx context.Context, id int) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contracts {
		if s.contracts[i].ID == id {
			s.contracts = append(s.contracts[:i], s.contracts[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError("contract not found")
}
