package entities

import "time"

// BillStatus represents the payment outcome of a bill.
//
// DISPUTED bills stay disputed; resolution happens outside the system.
type BillStatus string

const (
	BillStatusUnpaid   BillStatus = "UNPAID"
	BillStatusPaid     BillStatus = "PAID"
	BillStatusDisputed BillStatus = "DISPUTED"
)

// PaymentTerm is how long a customer has to pay before a bill counts as
// overdue. DueDate is fixed at creation and never recomputed.
const PaymentTerm = 7 * 24 * time.Hour

// FastPaymentWindow marks customers who settle quickly ("good customers").
const FastPaymentWindow = 24 * time.Hour

// Bill is a payment obligation tied to a completed ServiceOrder.
//
// Storage model (DynamoDB):
//   - PK: id
type Bill struct {
	ID          string     `json:"id"`
	OrderID     string     `json:"order_id"`
	Amount      float64    `json:"amount"`
	Status      BillStatus `json:"status"`
	Note        string     `json:"note,omitempty"`
	DisputeNote string     `json:"dispute_note,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	DueDate     time.Time  `json:"due_date"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

// Overdue reports whether the bill is unpaid and older than the payment term.
func (b Bill) Overdue(now time.Time) bool {
	return b.Status == BillStatusUnpaid && now.Sub(b.CreatedAt) > PaymentTerm
}

// PaidFast reports whether the bill was settled within the fast-payment
// window of its creation.
func (b Bill) PaidFast() bool {
	if b.Status != BillStatusPaid || b.PaidAt == nil {
		return false
	}
	return b.PaidAt.Sub(b.CreatedAt) <= FastPaymentWindow
}
