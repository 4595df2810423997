package domain

import "time"

// Payment records money received against a contract.
type Payment struct {
	ID            int       `json:"id"`
	ContractID    int       `json:"contractId"`
	Contract      *Contract `json:"contract,omitempty"`
	PaymentDate   time.Time `json:"paymentDate"`
	Amount        int64     `json:"amount"`
	PaymentType   string    `json:"paymentType"`
	PaymentMethod string    `json:"paymentMethod"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PaymentInput is the payload for creating a payment.
type PaymentInput struct {
	ContractID    int       `json:"contractId"`
	PaymentDate   time.Time `json:"paymentDate"`
	Amount        int64     `json:"amount"`
	PaymentType   string    `json:"paymentType"`
	PaymentMethod string    `json:"paymentMethod"`
	Note          string    `json:"note,omitempty"`
}

// PaymentPatch lists the fields an update is allowed to change.
type PaymentPatch struct {
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
	Amount        *int64     `json:"amount,omitempty"`
	PaymentType   *string    `json:"paymentType,omitempty"`
	PaymentMethod *string    `json:"paymentMethod,omitempty"`
	Note          *string    `json:"note,omitempty"`
}
