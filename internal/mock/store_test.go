package mock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roomdesk/internal/domain"
)

func testStore(opts ...Option) *Store {
	return NewStore(zap.NewNop(), append([]Option{WithLatency(0)}, opts...)...)
}

func TestLogin_Scenarios(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	res, err := s.Login(ctx, domain.LoginInput{UserID: "admin", Password: "admin"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, res.User.Role)
	assert.Equal(t, "mock-jwt-token-1", res.Token)

	res, err = s.Login(ctx, domain.LoginInput{UserID: "user", Password: "user"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, res.User.Role)

	_, err = s.Login(ctx, domain.LoginInput{UserID: "admin", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, domain.IsAuth(err))

	_, err = s.Login(ctx, domain.LoginInput{UserID: "ghost", Password: "ghost"})
	assert.True(t, domain.IsAuth(err))
}

func TestProfile_ResolvesTokens(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	res, err := s.Login(ctx, domain.LoginInput{UserID: "test", Password: "test"})
	require.NoError(t, err)

	u, err := s.Profile(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, u.ID)

	// Tokens issued by a previous process still resolve by suffix.
	u, err = s.Profile(ctx, "mock-jwt-token-1")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)

	_, err = s.Profile(ctx, "garbage")
	assert.True(t, domain.IsAuth(err))
}

func TestLogout_Idempotent(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	res, err := s.Login(ctx, domain.LoginInput{UserID: "user", Password: "user"})
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx, res.Token))
	require.NoError(t, s.Logout(ctx, res.Token))
	require.NoError(t, s.Logout(ctx, "never-issued"))
}

func TestCustomers_CreateGetRoundTrip(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	created, err := s.CreateCustomer(ctx, domain.CustomerInput{
		Name: "Jung Dasom", Phone: "010-7777-8888", Address: "Mapo-gu, Seoul",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := s.GetCustomer(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jung Dasom", got.Name)
}

func TestCustomers_SearchIsCaseSensitiveContains(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	page, err := s.ListCustomers(ctx, 1, 10, "Kim")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Kim Chulsoo", page.Items[0].Name)

	page, err = s.ListCustomers(ctx, 1, 10, "kim")
	require.NoError(t, err)
	assert.Len(t, page.Items, 1) // matches the email, not the name

	page, err = s.ListCustomers(ctx, 1, 10, "no-such-person")
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Total)
}

func TestPagination_Invariants(t *testing.T) {
	s := testStore(WithoutFixtures())
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := s.CreateCustomer(ctx, domain.CustomerInput{
			Name: "Customer", Phone: "010-0000-0000", Address: "Seoul",
		})
		require.NoError(t, err)
	}

	var seen []int
	for p := 1; ; p++ {
		page, err := s.ListCustomers(ctx, p, 10, "")
		require.NoError(t, err)
		assert.Equal(t, 25, page.Total)
		assert.Equal(t, 3, page.TotalPages)
		for _, c := range page.Items {
			seen = append(seen, c.ID)
		}
		if p >= page.TotalPages {
			break
		}
	}
	require.Len(t, seen, 25)
	for i := 1; i < len(seen); i++ {
		assert.Greater(t, seen[i], seen[i-1])
	}

	// Past the last page: empty items, same totals.
	page, err := s.ListCustomers(ctx, 99, 10, "")
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 25, page.Total)
}

func TestNextID_EmptyCollectionStartsAtOne(t *testing.T) {
	s := testStore(WithoutFixtures())
	ctx := context.Background()

	created, err := s.CreateBranch(ctx, domain.BranchInput{
		Name: "Gangbuk", Code: "GB01", Address: "Seoul", Phone: "010-1234-0000",
		ManagerName: "Seo Yuna", ManagerPhone: "010-1234-0001",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestRooms_AvailabilityFilter(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	all, err := s.ListRooms(ctx, 1, 12, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)

	avail := true
	page, err := s.ListRooms(ctx, 1, 12, &avail)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)

	avail = false
	page, err = s.ListRooms(ctx, 1, 12, &avail)
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "102", page.Items[0].RoomNumber)
}

func TestCreateContract_FlipsRoomAvailability(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	created, err := s.CreateContract(ctx, domain.ContractInput{
		CustomerID: 1, RoomID: 1,
		StartDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2027, 2, 28, 0, 0, 0, 0, time.UTC),
		MonthlyRent: 800000, Deposit: 10000000,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)
	assert.Equal(t, domain.ContractActive, created.Status)
	require.NotNil(t, created.Customer)
	assert.Equal(t, "Kim Chulsoo", created.Customer.Name)

	room, err := s.GetRoom(ctx, 1)
	require.NoError(t, err)
	assert.False(t, room.IsAvailable)
}

func TestCreateContract_MissingReferenceConflicts(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	_, err := s.CreateContract(ctx, domain.ContractInput{
		CustomerID: 99, RoomID: 1,
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2027, 2, 28, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))

	_, err = s.CreateContract(ctx, domain.ContractInput{
		CustomerID: 1, RoomID: 99,
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2027, 2, 28, 0, 0, 0, 0, time.UTC),
	})
	assert.True(t, domain.IsConflict(err))
}

func TestUpdate_NotFound(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	name := "Nobody"
	_, err := s.UpdateCustomer(ctx, 99, domain.CustomerPatch{Name: &name})
	assert.True(t, domain.IsNotFound(err))

	assert.True(t, domain.IsNotFound(s.DeleteCustomer(ctx, 99)))
	assert.True(t, domain.IsNotFound(s.DeleteRoom(ctx, 99)))
}

func TestUpdate_MergesOnlySetFields(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	note := "prefers morning viewings"
	updated, err := s.UpdateCustomer(ctx, 1, domain.CustomerPatch{Note: &note})
	require.NoError(t, err)
	assert.Equal(t, "Kim Chulsoo", updated.Name)
	assert.Equal(t, note, updated.Note)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestPayments_FilterByContract(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	page, err := s.ListPayments(ctx, 1, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)

	page, err = s.ListPayments(ctx, 1, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)

	page, err = s.ListPayments(ctx, 1, 10, 42)
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	_, err = s.CreatePayment(ctx, domain.PaymentInput{
		ContractID: 42, PaymentDate: time.Now(), Amount: 1, PaymentType: "rent",
	})
	assert.True(t, domain.IsConflict(err))
}

func TestSchedules_RangeFilter(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	all, err := s.ListSchedules(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	march := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	out, err := s.ListSchedules(ctx, march(9), march(11))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Room 101 viewing", out[0].Title)

	out, err = s.ListSchedules(ctx, march(25), time.Time{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDashboard_Aggregates(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalCustomers)
	assert.Equal(t, 3, stats.TotalRooms)
	assert.Equal(t, 1, stats.OccupiedRooms)
	assert.Equal(t, 1, stats.TotalContracts)
	assert.InDelta(t, 100.0/3.0, stats.OccupancyRate, 0.1)

	acts, err := s.Activities(ctx, 2)
	require.NoError(t, err)
	require.Len(t, acts, 2)
	assert.True(t, !acts[0].OccurredAt.Before(acts[1].OccurredAt))
}

func TestStore_CancelledContext(t *testing.T) {
	s := NewStore(zap.NewNop()) // default latency
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ListCustomers(ctx, 1, 10, "")
	require.Error(t, err)
	assert.True(t, domain.IsTransport(err))
}
