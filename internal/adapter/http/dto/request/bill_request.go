package request

type CreateBillRequest struct {
	OrderID string  `json:"order_id" binding:"required"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Note    string  `json:"note"`
}

type PayBillRequest struct {
	BillID string  `json:"bill_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type DisputeBillRequest struct {
	BillID string `json:"bill_id" binding:"required"`
	Note   string `json:"note" binding:"required"`
}
