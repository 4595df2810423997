package domain

import "time"

// Customer is a tenant or prospective tenant managed by the dashboard.
type Customer struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email,omitempty"`
	Address        string    `json:"address"`
	DetailAddress  string    `json:"detailAddress,omitempty"`
	BusinessNumber string    `json:"businessNumber,omitempty"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CustomerInput is the payload for creating a customer.
type CustomerInput struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email,omitempty"`
	Address        string `json:"address"`
	DetailAddress  string `json:"detailAddress,omitempty"`
	BusinessNumber string `json:"businessNumber,omitempty"`
	Note           string `json:"note,omitempty"`
}

// CustomerPatch lists the fields an update is allowed to change.
// Nil fields are left untouched on merge.
type CustomerPatch struct {
	Name           *string `json:"name,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty"`
	Address        *string `json:"address,omitempty"`
	DetailAddress  *string `json:"detailAddress,omitempty"`
	BusinessNumber *string `json:"businessNumber,omitempty"`
	Note           *string `json:"note,omitempty"`
}
