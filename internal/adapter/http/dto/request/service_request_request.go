package request

import "time"

type CreateServiceRequestRequest struct {
	CustomerID     string     `json:"customer_id" binding:"required"`
	Address        string     `json:"address" binding:"required"`
	CleaningType   string     `json:"cleaning_type" binding:"required"`
	Rooms          int        `json:"rooms" binding:"required,gt=0"`
	PreferredTime  *time.Time `json:"preferred_time"`
	ProposedBudget float64    `json:"proposed_budget"`
	Notes          string     `json:"notes"`
}

type AttachPhotoRequest struct {
	RequestID string `json:"request_id" binding:"required"`
	PhotoURL  string `json:"photo_url" binding:"required"`
}
