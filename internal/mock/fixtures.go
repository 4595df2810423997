package mock

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"roomdesk/internal/domain"
)

// account is one entry of the login allow-list.
type account struct {
	userID       string
	passwordHash []byte
	user         domain.User
}

func mustHash(password string) []byte {
	// MinCost: these are fixed dev credentials, not secrets.
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return h
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// seed populates the store with demo records. Room 102 is occupied by
// the one seeded contract, so its availability flag starts false.
func (s *Store) seed() {
	s.accounts = []account{
		{
			userID:       "admin",
			passwordHash: mustHash("admin"),
			user:         domain.User{ID: 1, Username: "admin", Email: "admin@example.com", Role: domain.RoleAdmin, Name: "Administrator"},
		},
		{
			userID:       "user",
			passwordHash: mustHash("user"),
			user:         domain.User{ID: 2, Username: "user", Email: "user@example.com", Role: domain.RoleUser, Name: "Regular User"},
		},
		{
			userID:       "test",
			passwordHash: mustHash("test"),
			user:         domain.User{ID: 3, Username: "test", Email: "test@example.com", Role: domain.RoleUser, Name: "Test User"},
		},
	}

	s.customers = []domain.Customer{
		{
			ID: 1, Name: "Kim Chulsoo", Phone: "010-1234-5678", Email: "kim@example.com",
			Address: "123-45 Yeoksam-dong, Gangnam-gu, Seoul", DetailAddress: "Bldg 101, Unit 102",
			BusinessNumber: "123-45-67890", Note: "VIP customer",
			CreatedAt: at("2024-01-15T09:00:00Z"), UpdatedAt: at("2024-01-15T09:00:00Z"),
		},
		{
			ID: 2, Name: "Park Younghee", Phone: "010-2345-6789", Email: "park@example.com",
			Address: "456-78 Seocho-dong, Seocho-gu, Seoul", DetailAddress: "Bldg 202, Unit 203",
			Note:      "Long-term lease customer",
			CreatedAt: at("2024-01-16T10:30:00Z"), UpdatedAt: at("2024-01-16T10:30:00Z"),
		},
		{
			ID: 3, Name: "Lee Minsu", Phone: "010-3456-7890", Email: "lee@example.com",
			Address: "789-12 Jamsil-dong, Songpa-gu, Seoul", DetailAddress: "Bldg 303, Unit 304",
			BusinessNumber: "987-65-43210", Note: "New customer",
			CreatedAt: at("2024-01-17T14:20:00Z"), UpdatedAt: at("2024-01-17T14:20:00Z"),
		},
	}

	s.rooms = []domain.Room{
		{
			ID: 1, RoomNumber: "101", Floor: 1, RoomType: "studio", Area: 25.5,
			MonthlyRent: 800000, Deposit: 10000000, ManagementFee: 100000,
			Description: "South-facing studio, newly built",
			Amenities:   []string{"air conditioner", "refrigerator", "washer"},
			IsAvailable: true,
			CreatedAt:   at("2024-01-01T00:00:00Z"), UpdatedAt: at("2024-01-01T00:00:00Z"),
		},
		{
			ID: 2, RoomNumber: "102", Floor: 1, RoomType: "two-room", Area: 35.8,
			MonthlyRent: 1200000, Deposit: 15000000, ManagementFee: 120000,
			Description: "Spacious two-room with a balcony",
			Amenities:   []string{"air conditioner", "refrigerator", "washer", "induction stove"},
			IsAvailable: false,
			CreatedAt:   at("2024-01-01T00:00:00Z"), UpdatedAt: at("2024-01-01T00:00:00Z"),
		},
		{
			ID: 3, RoomNumber: "201", Floor: 2, RoomType: "studio", Area: 28.2,
			MonthlyRent: 900000, Deposit: 12000000, ManagementFee: 110000,
			Description: "Upper-floor studio with a good view",
			Amenities:   []string{"air conditioner", "refrigerator"},
			IsAvailable: true,
			CreatedAt:   at("2024-01-01T00:00:00Z"), UpdatedAt: at("2024-01-01T00:00:00Z"),
		},
	}

	room2 := s.rooms[1]
	customer2 := s.customers[1]
	s.contracts = []domain.Contract{
		{
			ID: 1, CustomerID: 2, RoomID: 2,
			Customer: &customer2, Room: &room2,
			StartDate:   at("2024-02-01T00:00:00Z"),
			EndDate:     at("2026-01-31T00:00:00Z"),
			MonthlyRent: 1200000, Deposit: 15000000, ManagementFee: 120000,
			Status:    domain.ContractActive,
			CreatedAt: at("2024-01-20T11:00:00Z"), UpdatedAt: at("2024-01-20T11:00:00Z"),
		},
	}

	s.branches = []domain.Branch{
		{
			ID: 1, Name: "Gangnam Branch", Code: "GN01",
			Address: "77 Teheran-ro, Gangnam-gu, Seoul", Phone: "010-9876-5432",
			ManagerName: "Choi Jiwon", ManagerPhone: "010-8765-4321",
			Description: "Head office",
			CreatedAt:   at("2024-01-01T00:00:00Z"), UpdatedAt: at("2024-01-01T00:00:00Z"),
		},
		{
			ID: 2, Name: "Songpa Branch", Code: "SP01",
			Address: "300 Olympic-ro, Songpa-gu, Seoul", Phone: "010-5555-1234",
			ManagerName: "Han Dongwook", ManagerPhone: "010-4444-2345",
			CreatedAt:   at("2024-01-05T00:00:00Z"), UpdatedAt: at("2024-01-05T00:00:00Z"),
		},
	}

	s.payments = []domain.Payment{
		{
			ID: 1, ContractID: 1, PaymentDate: at("2024-02-05T00:00:00Z"),
			Amount: 1200000, PaymentType: "rent", PaymentMethod: "bank transfer",
			CreatedAt: at("2024-02-05T09:10:00Z"), UpdatedAt: at("2024-02-05T09:10:00Z"),
		},
		{
			ID: 2, ContractID: 1, PaymentDate: at("2024-03-05T00:00:00Z"),
			Amount: 1200000, PaymentType: "rent", PaymentMethod: "bank transfer",
			CreatedAt: at("2024-03-05T09:05:00Z"), UpdatedAt: at("2024-03-05T09:05:00Z"),
		},
	}

	s.schedules = []domain.Schedule{
		{
			ID: 1, Title: "Room 101 viewing", Description: "Viewing with a prospective tenant",
			StartDate: at("2024-03-10T14:00:00Z"), EndDate: at("2024-03-10T15:00:00Z"),
			Category: "viewing", Priority: domain.PriorityHigh,
			CreatedAt: at("2024-03-01T08:00:00Z"), UpdatedAt: at("2024-03-01T08:00:00Z"),
		},
		{
			ID: 2, Title: "Quarterly fire inspection", IsAllDay: true,
			StartDate: at("2024-03-20T00:00:00Z"), EndDate: at("2024-03-20T00:00:00Z"),
			Category: "maintenance", Priority: domain.PriorityMedium,
			CreatedAt: at("2024-03-02T08:00:00Z"), UpdatedAt: at("2024-03-02T08:00:00Z"),
		},
	}
}
