package entities

import "time"

// Customer is the party requesting cleaning services.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// Payment data:
//   - CardLast4 keeps only the last four digits for display.
//   - CardToken is an opaque vault token; the raw card number is never stored.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CardLast4 string    `json:"card_last4"`
	CardToken string    `json:"card_token,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
