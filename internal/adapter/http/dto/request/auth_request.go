package request

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterCustomerRequest struct {
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"required,email"`
	CardLast4 string `json:"card_last4"`
	CardToken string `json:"card_token"`
	Password  string `json:"password" binding:"required,min=8"`
}
