package request

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest deliberately skips format checks; bad input is just a failed login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is optional; the refresh_token cookie wins when present.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}
