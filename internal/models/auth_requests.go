package models

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"john@doe.com"`
	Password string `json:"password" binding:"required" example:"mypassword123"`
}

// LoginResponse represents the response to a successful login
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenRefreshRequest represents a token refresh request
type TokenRefreshRequest struct {
	Token string `json:"token" binding:"required"`
}
