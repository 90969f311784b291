package entities

import "time"

// OrderStatus represents the two states of confirmed work.
type OrderStatus string

const (
	OrderStatusAccepted  OrderStatus = "ACCEPTED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

// ServiceOrder is confirmed work created when a Quote is accepted.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Exactly one order exists per accepted quote; creation happens inside the
// same transaction that flips the quote to ACCEPTED.
type ServiceOrder struct {
	ID          string      `json:"id"`
	RequestID   string      `json:"request_id"`
	CustomerID  string      `json:"customer_id"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
}
