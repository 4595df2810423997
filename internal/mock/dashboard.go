package mock

import (
	"context"
	"fmt"
	"sort"
	"time"

	"roomdesk/internal/domain"
)

// Stats aggregates the landing-page numbers from the live collections.
// Monthly revenue counts rent plus management fee of active contracts.
func (s *Store) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	occupied := 0
	for _, r := range s.rooms {
		if !r.IsAvailable {
			occupied++
		}
	}
	var revenue int64
	for _, c := range s.contracts {
		if c.Status == domain.ContractActive {
			revenue += c.MonthlyRent + c.ManagementFee
		}
	}
	rate := 0.0
	if len(s.rooms) > 0 {
		rate = float64(occupied) / float64(len(s.rooms)) * 100
	}
	return &domain.DashboardStats{
		TotalCustomers: len(s.customers),
		TotalRooms:     len(s.rooms),
		OccupiedRooms:  occupied,
		TotalContracts: len(s.contracts),
		MonthlyRevenue: revenue,
		OccupancyRate:  rate,
	}, nil
}

// Activities derives a recent-change feed from record timestamps,
// newest first.
func (s *Store) Activities(ctx context.Context, limit int) ([]domain.Activity, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit < 1 {
		limit = 10
	}
	var all []domain.Activity
	for _, c := range s.customers {
		all = append(all, domain.Activity{
			Type:       "customer",
			Message:    fmt.Sprintf("customer %q registered", c.Name),
			OccurredAt: c.CreatedAt,
		})
	}
	for _, c := range s.contracts {
		all = append(all, domain.Activity{
			Type:       "contract",
			Message:    fmt.Sprintf("contract #%d signed for room #%d", c.ID, c.RoomID),
			OccurredAt: c.CreatedAt,
		})
	}
	for _, p := range s.payments {
		all = append(all, domain.Activity{
			Type:       "payment",
			Message:    fmt.Sprintf("payment of %d received on contract #%d", p.Amount, p.ContractID),
			OccurredAt: p.CreatedAt,
		})
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].OccurredAt.After(all[j].OccurredAt)
	})
	if len(all) > limit {
		all = all[:limit]
	}
	for i := range all {
		all[i].ID = i + 1
	}
	return all, nil
}

// Revenue sums active-contract rent per calendar month of the given
// year. A contract counts toward every month its period overlaps.
func (s *Store) Revenue(ctx context.Context, year int) ([]domain.MonthlyRevenue, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.MonthlyRevenue, 12)
	for m := 1; m <= 12; m++ {
		monthStart := time.Date(year, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
		var revenue int64
		for _, c := range s.contracts {
			if c.Status != domain.ContractActive {
				continue
			}
			if c.StartDate.After(monthEnd) || c.EndDate.Before(monthStart) {
				continue
			}
			revenue += c.MonthlyRent + c.ManagementFee
		}
		out[m-1] = domain.MonthlyRevenue{Month: m, Revenue: revenue}
	}
	return out, nil
}
