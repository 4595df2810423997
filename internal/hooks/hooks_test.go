package hooks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roomdesk/internal/client"
	"roomdesk/internal/domain"
	"roomdesk/internal/fetch"
	"roomdesk/internal/mock"
)

func testAPI(t *testing.T) *client.API {
	t.Helper()
	tokens, err := client.NewTokenStore(t.TempDir())
	require.NoError(t, err)
	store := mock.NewStore(zap.NewNop(), mock.WithLatency(0))
	return client.NewMock(store, tokens)
}

func settle[T any](t *testing.T, r *fetch.Resource[T]) fetch.State[T] {
	t.Helper()
	var s fetch.State[T]
	require.Eventually(t, func() bool {
		s = r.Snapshot()
		return !s.Loading
	}, time.Second, time.Millisecond)
	return s
}

func TestCustomers_PagingAndSearchDeps(t *testing.T) {
	api := testAPI(t)

	r := Customers(api, 0, 0, "")
	defer r.Close()

	s := settle(t, r)
	require.True(t, s.HasData)
	assert.Equal(t, 3, s.Data.Total)
	assert.Equal(t, 1, s.Data.Page, "page is clamped to 1")

	r.SetDeps(1, DefaultPageSize, "Park")
	s = settle(t, r)
	require.Equal(t, 1, s.Data.Total)
	assert.Equal(t, "Park Younghee", s.Data.Items[0].Name)
}

func TestRooms_AvailabilityDep(t *testing.T) {
	api := testAPI(t)

	all := Rooms(api, 1, DefaultRoomsPageSize, nil)
	defer all.Close()
	s := settle(t, all)
	assert.Equal(t, 3, s.Data.Total)

	avail := true
	filtered := Rooms(api, 1, DefaultRoomsPageSize, &avail)
	defer filtered.Close()
	s = settle(t, filtered)
	assert.Equal(t, 2, s.Data.Total)
}

func TestCreateThenListReflectsMutation(t *testing.T) {
	api := testAPI(t)

	create := CreateCustomer(api)
	created, err := create.Mutate(context.Background(), domain.CustomerInput{
		Name: "Jung Dasom", Phone: "010-7777-8888", Address: "Mapo-gu, Seoul",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)

	list := Customers(api, 1, DefaultPageSize, "")
	defer list.Close()
	s := settle(t, list)
	assert.Equal(t, 4, s.Data.Total)
}

func TestUpdateMutation_ValidationError(t *testing.T) {
	api := testAPI(t)

	update := UpdateCustomer(api)
	bad := "nope"
	_, err := update.Mutate(context.Background(), Update[domain.CustomerPatch]{
		ID: 1, Patch: domain.CustomerPatch{Phone: &bad},
	})
	require.Error(t, err)
	assert.Contains(t, update.Snapshot().Err, "phone")
}

func TestDeleteMutation(t *testing.T) {
	api := testAPI(t)

	del := DeleteCustomer(api)
	_, err := del.Mutate(context.Background(), 3)
	require.NoError(t, err)

	_, err = del.Mutate(context.Background(), 3)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestCreateContractOptimistic(t *testing.T) {
	api := testAPI(t)

	in := domain.ContractInput{
		CustomerID: 1, RoomID: 1,
		StartDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2027, 2, 28, 0, 0, 0, 0, time.UTC),
		MonthlyRent: 800000, Deposit: 10000000,
	}
	m := CreateContractOptimistic(api, func(in domain.ContractInput) *domain.Contract {
		return &domain.Contract{
			CustomerID: in.CustomerID, RoomID: in.RoomID,
			StartDate: in.StartDate, EndDate: in.EndDate,
			MonthlyRent: in.MonthlyRent, Deposit: in.Deposit,
			Status: domain.ContractActive,
		}
	})

	out, err := m.Mutate(context.Background(), in)
	require.NoError(t, err)
	assert.NotZero(t, out.ID, "authoritative result carries the assigned id")

	// Failure path: speculative contract must not survive.
	in.CustomerID = 999
	_, err = m.Mutate(context.Background(), in)
	require.Error(t, err)
	s := m.Snapshot()
	assert.False(t, s.HasData)
	assert.NotEmpty(t, s.Err)
}

func TestSchedules_RangeDeps(t *testing.T) {
	api := testAPI(t)

	r := Schedules(api, time.Time{}, time.Time{})
	defer r.Close()
	s := settle(t, r)
	assert.Len(t, s.Data, 2)

	r.SetDeps(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC))
	s = settle(t, r)
	require.Len(t, s.Data, 1)
	assert.Equal(t, "Quarterly fire inspection", s.Data[0].Title)
}

func TestDashboardHooks(t *testing.T) {
	api := testAPI(t)

	stats := DashboardStats(api)
	defer stats.Close()
	s := settle(t, stats)
	require.True(t, s.HasData)
	assert.Equal(t, 3, s.Data.TotalCustomers)

	acts := Activities(api, 1)
	defer acts.Close()
	a := settle(t, acts)
	assert.Len(t, a.Data, 1)

	rev := MonthlyRevenue(api, 2024)
	defer rev.Close()
	r := settle(t, rev)
	require.Len(t, r.Data, 12)
	var total int64
	for _, m := range r.Data {
		total += m.Revenue
	}
	assert.Positive(t, total)
}

func TestClampHelpers(t *testing.T) {
	assert.Equal(t, 1, clampPage(0))
	assert.Equal(t, 1, clampPage(-5))
	assert.Equal(t, 3, clampPage(3))
	assert.Equal(t, DefaultPageSize, clampLimit(0, DefaultPageSize))
	assert.Equal(t, 25, clampLimit(25, DefaultPageSize))
}
