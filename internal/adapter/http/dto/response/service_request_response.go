package response

import (
	"time"

	"home_cleaning/internal/domain/entities"
)

type ServiceRequestResponse struct {
	ID             string     `json:"id"`
	CustomerID     string     `json:"customer_id"`
	Address        string     `json:"address"`
	CleaningType   string     `json:"cleaning_type"`
	Rooms          int        `json:"rooms"`
	PreferredTime  *time.Time `json:"preferred_time,omitempty"`
	ProposedBudget float64    `json:"proposed_budget,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	Photos         []string   `json:"photos"`
	CreatedAt      time.Time  `json:"created_at"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	photos := r.Photos
	if photos == nil {
		photos = []string{}
	}
	return ServiceRequestResponse{
		ID:             r.ID,
		CustomerID:     r.CustomerID,
		Address:        r.Address,
		CleaningType:   r.CleaningType,
		Rooms:          r.Rooms,
		PreferredTime:  r.PreferredTime,
		ProposedBudget: r.ProposedBudget,
		Notes:          r.Notes,
		Photos:         photos,
		CreatedAt:      r.CreatedAt,
	}
}

func FromServiceRequestList(requests []entities.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, FromServiceRequest(r))
	}
	return out
}
