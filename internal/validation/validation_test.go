package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomdesk/internal/domain"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func validCustomer() domain.CustomerInput {
	return domain.CustomerInput{
		Name:    "Kim Chulsoo",
		Phone:   "010-1234-5678",
		Address: "12 Teheran-ro, Gangnam-gu",
	}
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	var errs Errors
	require.ErrorAs(t, err, &errs)
	return errs.Fields()
}

func TestCustomer_PhoneFormat(t *testing.T) {
	cases := []struct {
		phone string
		ok    bool
	}{
		{"010-1234-5678", true},
		{"011-0000-9999", true},
		{"01012345678", false},
		{"010-123-5678", false},
		{"010-1234-567", false},
		{"abc-defg-hijk", false},
		{"", false},
	}
	for _, tc := range cases {
		in := validCustomer()
		in.Phone = tc.phone
		err := Customer(in)
		if tc.ok {
			assert.NoError(t, err, "phone %q", tc.phone)
		} else {
			assert.Error(t, err, "phone %q", tc.phone)
		}
	}
}

func TestCustomer_OptionalFieldsSkippedWhenEmpty(t *testing.T) {
	in := validCustomer()
	assert.NoError(t, Customer(in))

	in.Email = "not-an-email"
	assert.Contains(t, fieldsOf(t, Customer(in)), "email")
	in.Email = "kim@example.com"
	assert.NoError(t, Customer(in))

	in.BusinessNumber = "1234567890"
	assert.Contains(t, fieldsOf(t, Customer(in)), "businessNumber")
	in.BusinessNumber = "123-45-67890"
	assert.NoError(t, Customer(in))
}

func TestCustomer_NameRequired(t *testing.T) {
	in := validCustomer()
	in.Name = "   "
	assert.Contains(t, fieldsOf(t, Customer(in)), "name")

	in.Name = "K"
	assert.Contains(t, fieldsOf(t, Customer(in)), "name")
}

func TestCustomerPatch_OnlySetFieldsChecked(t *testing.T) {
	assert.NoError(t, CustomerPatch(domain.CustomerPatch{}))

	bad := "xyz"
	assert.Contains(t, fieldsOf(t, CustomerPatch(domain.CustomerPatch{Phone: &bad})), "phone")

	empty := ""
	assert.Contains(t, fieldsOf(t, CustomerPatch(domain.CustomerPatch{Address: &empty})), "address")
	assert.NoError(t, CustomerPatch(domain.CustomerPatch{Email: &empty}))
}

func validRoom() domain.RoomInput {
	return domain.RoomInput{
		RoomNumber:  "101",
		Floor:       1,
		RoomType:    "studio",
		Area:        23.5,
		MonthlyRent: 500_000,
		Deposit:     5_000_000,
	}
}

func TestRoom_Bounds(t *testing.T) {
	in := validRoom()
	assert.NoError(t, Room(in))

	in.Floor = 0
	assert.Contains(t, fieldsOf(t, Room(in)), "floor")
	in.Floor = 101
	assert.Contains(t, fieldsOf(t, Room(in)), "floor")
	in.Floor = 100
	assert.NoError(t, Room(in))

	in.Area = 0.5
	assert.Contains(t, fieldsOf(t, Room(in)), "area")
	in.Area = 1000.5
	assert.Contains(t, fieldsOf(t, Room(in)), "area")
}

func TestRoom_DuplicateAmenities(t *testing.T) {
	in := validRoom()
	in.Amenities = []string{"aircon", "fridge", "aircon"}
	assert.Contains(t, fieldsOf(t, Room(in)), "amenities")

	in.Amenities = []string{"aircon", "fridge"}
	assert.NoError(t, Room(in))
}

func validContract() domain.ContractInput {
	return domain.ContractInput{
		CustomerID:  1,
		RoomID:      1,
		StartDate:   day("2026-01-01"),
		EndDate:     day("2026-12-31"),
		MonthlyRent: 500_000,
		Deposit:     5_000_000,
	}
}

func TestContract_DateOrderingStrict(t *testing.T) {
	in := validContract()
	assert.NoError(t, Contract(in))

	in.EndDate = in.StartDate
	assert.Equal(t, []string{"endDate"}, fieldsOf(t, Contract(in)))

	in.EndDate = day("2025-12-31")
	assert.Equal(t, []string{"endDate"}, fieldsOf(t, Contract(in)))
}

func TestContract_References(t *testing.T) {
	in := validContract()
	in.CustomerID = 0
	in.RoomID = -1
	fields := fieldsOf(t, Contract(in))
	assert.Contains(t, fields, "customerId")
	assert.Contains(t, fields, "roomId")
}

func TestContractPatch_StatusValues(t *testing.T) {
	for _, s := range []string{domain.ContractActive, domain.ContractExpired, domain.ContractTerminated} {
		s := s
		assert.NoError(t, ContractPatch(domain.ContractPatch{Status: &s}))
	}
	bad := "cancelled"
	assert.Contains(t, fieldsOf(t, ContractPatch(domain.ContractPatch{Status: &bad})), "status")
}

func validSchedule() domain.ScheduleInput {
	return domain.ScheduleInput{
		Title:     "boiler maintenance",
		StartDate: day("2026-03-01"),
		EndDate:   day("2026-03-01"),
		Category:  "maintenance",
		Priority:  domain.PriorityMedium,
	}
}

func TestSchedule_EqualDatesAllowed(t *testing.T) {
	in := validSchedule()
	assert.NoError(t, Schedule(in))

	in.EndDate = day("2026-02-28")
	assert.Contains(t, fieldsOf(t, Schedule(in)), "endDate")
}

func TestSchedule_Priority(t *testing.T) {
	in := validSchedule()
	in.Priority = ""
	assert.NoError(t, Schedule(in))

	in.Priority = "urgent"
	assert.Contains(t, fieldsOf(t, Schedule(in)), "priority")
}

func TestCurrency_Bounds(t *testing.T) {
	in := validRoom()
	in.MonthlyRent = MaxCurrency
	assert.NoError(t, Room(in))

	in.MonthlyRent = MaxCurrency + 1
	assert.Contains(t, fieldsOf(t, Room(in)), "monthlyRent")

	in.MonthlyRent = -1
	assert.Contains(t, fieldsOf(t, Room(in)), "monthlyRent")
}

func TestBranch_PhonesAndLengths(t *testing.T) {
	in := domain.BranchInput{
		Name:         "Gangnam",
		Code:         "GN",
		Address:      "Seoul",
		Phone:        "010-1111-2222",
		ManagerName:  "Park Younghee",
		ManagerPhone: "010-3333-4444",
	}
	assert.NoError(t, Branch(in))

	in.ManagerPhone = "33-3333"
	assert.Contains(t, fieldsOf(t, Branch(in)), "managerPhone")

	in.ManagerPhone = "010-3333-4444"
	in.Code = "X"
	assert.Contains(t, fieldsOf(t, Branch(in)), "code")
}

func TestLogin_Required(t *testing.T) {
	assert.NoError(t, Login(domain.LoginInput{UserID: "admin", Password: "admin"}))

	err := Login(domain.LoginInput{})
	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
}

func TestErrors_MessageNamesFields(t *testing.T) {
	err := Login(domain.LoginInput{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "id") || strings.Contains(err.Error(), "password"))
}
