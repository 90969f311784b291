package response

import (
	"time"

	"home_cleaning/internal/usecase"
)

type LoginResponse struct {
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expires_at"`
	Role       string    `json:"role"`
	CustomerID string    `json:"customer_id,omitempty"`
	Username   string    `json:"username"`
}

func FromLoginResult(r usecase.LoginResult) LoginResponse {
	return LoginResponse{
		Token:      r.Token,
		ExpiresAt:  r.ExpiresAt,
		Role:       string(r.Role),
		CustomerID: r.CustomerID,
		Username:   r.Username,
	}
}
