package entities

import "time"

// QuoteStatus represents the lifecycle of a quote.
//
// PENDING is the only state a quote can leave. ACCEPTED and REJECTED are
// terminal. RENEGOTIATING is also terminal for the record itself: the
// business answers a renegotiation by issuing a fresh quote for the same
// request, so the renegotiated quote stays behind as history.
type QuoteStatus string

const (
	QuoteStatusPending       QuoteStatus = "PENDING"
	QuoteStatusRenegotiating QuoteStatus = "RENEGOTIATING"
	QuoteStatusAccepted      QuoteStatus = "ACCEPTED"
	QuoteStatusRejected      QuoteStatus = "REJECTED"
)

// Quote is a priced offer against a ServiceRequest.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (request_id-index): request_id
//   - GSI2 (customer_id-index): customer_id
//
// CustomerID is denormalized from the request at creation time and is never
// recomputed afterwards. ClientNote carries the customer's renegotiation
// message.
type Quote struct {
	ID              string      `json:"id"`
	RequestID       string      `json:"request_id"`
	CustomerID      string      `json:"customer_id"`
	Price           float64     `json:"price"`
	TimeWindowStart time.Time   `json:"time_window_start"`
	TimeWindowEnd   time.Time   `json:"time_window_end"`
	Note            string      `json:"note,omitempty"`
	ClientNote      string      `json:"client_note,omitempty"`
	Status          QuoteStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
