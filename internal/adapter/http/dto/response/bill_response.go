package response

import (
	"time"

	"home_cleaning/internal/domain/entities"
)

type BillResponse struct {
	ID          string     `json:"id"`
	OrderID     string     `json:"order_id"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	Note        string     `json:"note,omitempty"`
	DisputeNote string     `json:"dispute_note,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	DueDate     time.Time  `json:"due_date"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

func FromBill(b entities.Bill) BillResponse {
	return BillResponse{
		ID:          b.ID,
		OrderID:     b.OrderID,
		Amount:      b.Amount,
		Status:      string(b.Status),
		Note:        b.Note,
		DisputeNote: b.DisputeNote,
		CreatedAt:   b.CreatedAt,
		DueDate:     b.DueDate,
		PaidAt:      b.PaidAt,
	}
}

func FromBillList(bills []entities.Bill) []BillResponse {
	out := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, FromBill(b))
	}
	return out
}
