package domain

import "time"

// Customer is a row of the hosted "customer" table. The password column is
// write-only: it is sent as a bcrypt hash on insert and never serialized.
type Customer struct {
	CustomerID    int       `json:"customer_id"`
	FullName      string    `json:"full_name"`
	Username      string    `json:"username"`
	Password      string    `json:"-"`
	Age           int       `json:"age"`
	Address       *string   `json:"address,omitempty"`
	Gender        *string   `json:"gender,omitempty"`
	MaritalStatus *string   `json:"marital_status,omitempty"`
	WalletBalance float64   `json:"wallet_balance"`
	CreatedAt     time.Time `json:"created_at"`
}
