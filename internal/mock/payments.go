package mock

import (
	"context"
	"time"

	"roomdesk/internal/domain"
)

// ListPayments pages through payments, optionally narrowed to one
// contract (contractID 0 means no filter).
func (s *Store) ListPayments(ctx context.Context, page, limit, contractID int) (*domain.Page[domain.Payment], error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.payments
	if contractID != 0 {
		filtered = nil
		for _, p := range s.payments {
			if p.ContractID == contractID {
				filtered = append(filtered, p)
			}
		}
	}
	return paginate(filtered, page, limit), nil
}

// GetPayment returns the payment by id.
func (s *Store) GetPayment(ctx context.Context, id int) (*domain.Payment, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.payments {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, domain.NotFoundError("payment not found")
}

// CreatePayment appends a new record after checking the referenced
// contract exists.
func (s *Store) CreatePayment(ctx context.Context, in domain.PaymentInput) (*domain.Payment, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, c := range s.contracts {
		if c.ID == in.ContractID {
			found = true
			break
		}
	}
	if !found {
		return nil, domain.ConflictError("contract not found")
	}

	now := time.Now().UTC()
	p := domain.Payment{
		ID:            nextID(s.payments, func(p domain.Payment) int { return p.ID }),
		ContractID:    in.ContractID,
		PaymentDate:   in.PaymentDate,
		Amount:        in.Amount,
		PaymentType:   in.PaymentType,
		PaymentMethod: in.PaymentMethod,
		Note:          in.Note,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.payments = append(s.payments, p)
	return &p, nil
}

// UpdatePayment merges the provided fields over the stored record.
func (s *Store) UpdatePayment(ctx context.Context, id int, patch domain.PaymentPatch) (*domain.Payment, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.payments {
		if s.payments[i].ID != id {
			continue
		}
		p := &s.payments[i]
		if patch.PaymentDate != nil {
			p.PaymentDate = *patch.PaymentDate
		}
		if patch.Amount != nil {
			p.Amount = *patch.Amount
		}
		if patch.PaymentType != nil {
			p.PaymentType = *patch.PaymentType
		}
		if patch.PaymentMethod != nil {
			p.PaymentMethod = *patch.PaymentMethod
		}
		if patch.Note != nil {
			p.Note = *patch.Note
		}
		p.UpdatedAt = time.Now().UTC()
		out := *p
		return &out, nil
	}
	return nil, domain.NotFoundError("payment not found")
}

// DeletePayment removes the record in place.
func (s *Store) DeletePayment(ctx context.Context, id int) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.payments {
		if s.payments[i].ID == id {
			s.payments = append(s.payments[:i], s.payments[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError("payment not found")
}
