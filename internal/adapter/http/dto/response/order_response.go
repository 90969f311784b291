package response

import (
	"time"

	"home_cleaning/internal/domain/entities"
)

type ServiceOrderResponse struct {
	ID          string     `json:"id"`
	RequestID   string     `json:"request_id"`
	CustomerID  string     `json:"customer_id"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{
		ID:          o.ID,
		RequestID:   o.RequestID,
		CustomerID:  o.CustomerID,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		CompletedAt: o.CompletedAt,
	}
}

func FromServiceOrderList(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
