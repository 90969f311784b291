package entities

import "time"

// ServiceRequest is a customer's ask for cleaning work.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// Photos is append-only; entries are never reordered or removed.
type ServiceRequest struct {
	ID             string     `json:"id"`
	CustomerID     string     `json:"customer_id"`
	Address        string     `json:"address"`
	CleaningType   string     `json:"cleaning_type"`
	Rooms          int        `json:"rooms"`
	PreferredTime  *time.Time `json:"preferred_time,omitempty"`
	ProposedBudget float64    `json:"proposed_budget,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	Photos         []string   `json:"photos"`
	CreatedAt      time.Time  `json:"created_at"`
}
