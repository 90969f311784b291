package entities

import "time"

// Role distinguishes customer accounts from back-office administrators.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// Credential is the login record backing a Customer or an admin account.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (username-index): username
//
// SecretHash is a bcrypt hash; the plaintext secret never leaves the auth
// use case. CustomerID is empty for admin credentials without a linked
// Customer.
type Credential struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	SecretHash string    `json:"-"`
	Role       Role      `json:"role"`
	CustomerID string    `json:"customer_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
