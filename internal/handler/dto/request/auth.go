package request

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// RefreshRequest is optional on the wire; the refresh cookie is used when the
// body carries no token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
