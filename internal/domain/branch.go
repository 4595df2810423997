package domain

import "time"

// Branch is an office location managing a set of rooms.
type Branch struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	ManagerName  string    `json:"managerName"`
	ManagerPhone string    `json:"managerPhone"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BranchInput is the payload for creating a branch.
type BranchInput struct {
	Name         string `json:"name"`
	Code         string `json:"code"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	ManagerName  string `json:"managerName"`
	ManagerPhone string `json:"managerPhone"`
	Description  string `json:"description,omitempty"`
}

// BranchPatch lists the fields an update is allowed to change.
type BranchPatch struct {
	Name         *string `json:"name,omitempty"`
	Code         *string `json:"code,omitempty"`
	Address      *string `json:"address,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	ManagerName  *string `json:"managerName,omitempty"`
	ManagerPhone *string `json:"managerPhone,omitempty"`
	Description  *string `json:"description,omitempty"`
}
