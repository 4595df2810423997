package domain

import "time"

// Room is a rentable unit. IsAvailable stays true until the room is
// assigned to an active contract.
type Room struct {
	ID            int       `json:"id"`
	RoomNumber    string    `json:"roomNumber"`
	Floor         int       `json:"floor"`
	RoomType      string    `json:"roomType"`
	Area          float64   `json:"area"`
	MonthlyRent   int64     `json:"monthlyRent"`
	Deposit       int64     `json:"deposit"`
	ManagementFee int64     `json:"managementFee,omitempty"`
	Description   string    `json:"description,omitempty"`
	Amenities     []string  `json:"amenities,omitempty"`
	IsAvailable   bool      `json:"isAvailable"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RoomInput is the payload for creating a room.
type RoomInput struct {
	RoomNumber    string   `json:"roomNumber"`
	Floor         int      `json:"floor"`
	RoomType      string   `json:"roomType"`
	Area          float64  `json:"area"`
	MonthlyRent   int64    `json:"monthlyRent"`
	Deposit       int64    `json:"deposit"`
	ManagementFee int64    `json:"managementFee,omitempty"`
	Description   string   `json:"description,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
}

// RoomPatch lists the fields an update is allowed to change.
type RoomPatch struct {
	RoomNumber    *string   `json:"roomNumber,omitempty"`
	Floor         *int      `json:"floor,omitempty"`
	RoomType      *string   `json:"roomType,omitempty"`
	Area          *float64  `json:"area,omitempty"`
	MonthlyRent   *int64    `json:"monthlyRent,omitempty"`
	Deposit       *int64    `json:"deposit,omitempty"`
	ManagementFee *int64    `json:"managementFee,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Amenities     *[]string `json:"amenities,omitempty"`
}
