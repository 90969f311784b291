package request

type CompleteOrderRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}
