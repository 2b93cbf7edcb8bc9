package auth

// SignupRequest creates a new account
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150" example:"alice"`
	Email    string `json:"email,omitempty" validate:"omitempty,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest exchanges credentials for tokens
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest represents the request to refresh access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
