package request

import "time"

type IssueQuoteRequest struct {
	RequestID       string    `json:"request_id" binding:"required"`
	Price           float64   `json:"price" binding:"required,gt=0"`
	TimeWindowStart time.Time `json:"time_window_start"`
	TimeWindowEnd   time.Time `json:"time_window_end"`
	Note            string    `json:"note"`
}

// QuoteActionRequest covers accept, reject and renegotiate. Note is only
// meaningful for renegotiation, where it carries the customer's message.
type QuoteActionRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
	Note    string `json:"note"`
}
