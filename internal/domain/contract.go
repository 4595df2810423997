package domain

import "time"

// Contract status values.
const (
	ContractActive     = "active"
	ContractExpired    = "expired"
	ContractTerminated = "terminated"
)

// Contract links exactly one customer to one room for a period.
// EndDate is strictly after StartDate. Rent/deposit/fee may be
// pre-populated from the room at selection time but are edited
// independently of it.
type Contract struct {
	ID            int       `json:"id"`
	CustomerID    int       `json:"customerId"`
	RoomID        int       `json:"roomId"`
	Customer      *Customer `json:"customer,omitempty"`
	Room          *Room     `json:"room,omitempty"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	MonthlyRent   int64     `json:"monthlyRent"`
	Deposit       int64     `json:"deposit"`
	ManagementFee int64     `json:"managementFee,omitempty"`
	Note          string    `json:"note,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ContractInput is the payload for creating a contract.
type ContractInput struct {
	CustomerID    int       `json:"customerId"`
	RoomID        int       `json:"roomId"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	MonthlyRent   int64     `json:"monthlyRent"`
	Deposit       int64     `json:"deposit"`
	ManagementFee int64     `json:"managementFee,omitempty"`
	Note          string    `json:"note,omitempty"`
}

// ContractPatch lists the fields an update is allowed to change.
// Customer and room references are fixed at creation.
type ContractPatch struct {
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	MonthlyRent   *int64     `json:"monthlyRent,omitempty"`
	Deposit       *int64     `json:"deposit,omitempty"`
	ManagementFee *int64     `json:"managementFee,omitempty"`
	Note          *string    `json:"note,omitempty"`
	Status        *string    `json:"status,omitempty"`
}
