package response

import (
	"time"

	"home_cleaning/internal/domain/entities"
)

type QuoteResponse struct {
	ID              string     `json:"id"`
	RequestID       string     `json:"request_id"`
	CustomerID      string     `json:"customer_id"`
	Price           float64    `json:"price"`
	TimeWindowStart *time.Time `json:"time_window_start,omitempty"`
	TimeWindowEnd   *time.Time `json:"time_window_end,omitempty"`
	Note            string     `json:"note,omitempty"`
	ClientNote      string     `json:"client_note,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	resp := QuoteResponse{
		ID:         q.ID,
		RequestID:  q.RequestID,
		CustomerID: q.CustomerID,
		Price:      q.Price,
		Note:       q.Note,
		ClientNote: q.ClientNote,
		Status:     string(q.Status),
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
	if !q.TimeWindowStart.IsZero() {
		start := q.TimeWindowStart
		resp.TimeWindowStart = &start
	}
	if !q.TimeWindowEnd.IsZero() {
		end := q.TimeWindowEnd
		resp.TimeWindowEnd = &end
	}
	return resp
}

func FromQuoteList(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
