package mock

import (
	"context"
	"strings"
	"time"

	"roomdesk/internal/domain"
)

// ListCustomers pages through customers, optionally narrowed by a
// case-sensitive substring match over name, phone, and email.
func (s *Store) ListCustomers(ctx context.Context, page, limit int, search string) (*domain.Page[domain.Customer], error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.customers
	if search != "" {
		filtered = nil
		for _, c := range s.customers {
			if strings.Contains(c.Name, search) ||
				strings.Contains(c.Phone, search) ||
				strings.Contains(c.Email, search) {
				filtered = append(filtered, c)
			}
		}
	}
	return paginate(filtered, page, limit), nil
}

// GetCustomer returns the customer by id.
func (s *Store) GetCustomer(ctx context.Context, id int) (*domain.Customer, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.customers {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, domain.NotFoundError("customer not found")
}

// CreateCustomer appends a new record with a server-assigned id and
// fresh timestamps.
func (s *Store) CreateCustomer(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	c := domain.Customer{
		ID:             nextID(s.customers, func(c domain.Customer) int { return c.ID }),
		Name:           in.Name,
		Phone:          in.Phone,
		Email:          in.Email,
		Address:        in.Address,
		DetailAddress:  in.DetailAddress,
		BusinessNumber: in.BusinessNumber,
		Note:           in.Note,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.customers = append(s.customers, c)
	return &c, nil
}

// UpdateCustomer merges the provided fields over the stored record and
// refreshes updatedAt.
func (s *Store) UpdateCustomer(ctx context.Context, id int, p domain.CustomerPatch) (*domain.Customer, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID != id {
			continue
		}
		c := &s.customers[i]
		if p.Name != nil {
			c.Name = *p.Name
		}
		if p.Phone != nil {
			c.Phone = *p.Phone
		}
		if p.Email != nil {
			c.Email = *p.Email
		}
		if p.Address != nil {
			c.Address = *p.Address
		}
		if p.DetailAddress != nil {
			c.DetailAddress = *p.DetailAddress
		}
		if p.BusinessNumber != nil {
			c.BusinessNumber = *p.BusinessNumber
		}
		if p.Note != nil {
			c.Note = *p.Note
		}
		c.UpdatedAt = time.Now().UTC()
		out := *c
		return &out, nil
	}
	return nil, domain.NotFoundError("customer not found")
}

// DeleteCustomer removes the record in place.
func (s *Store) DeleteCustomer(ctx context.Context, id int) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError("customer not found")
}
