package request

// LoginRequest represents an email and password login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// PinLoginRequest represents a fast PIN login from a shared terminal
type PinLoginRequest struct {
	Mobile string `json:"mobile" binding:"required,min=10,max=15"`
	PIN    string `json:"pin" binding:"required,min=4,max=8"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
