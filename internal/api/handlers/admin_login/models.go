package admin_login

import "time"

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
