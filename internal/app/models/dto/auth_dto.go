package dto

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// LoginUser is the public slice of the authenticated user
type LoginUser struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"admin"`
	Name     string `json:"name" example:"Admin"`
	Email    string `json:"email" example:"admin@beartshare.com"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Success bool      `json:"success" example:"true"`
	User    LoginUser `json:"user"`
}

// AuthCheckResponse reports whether the request carries an admin session
type AuthCheckResponse struct {
	Authenticated bool   `json:"authenticated" example:"true"`
	UserID        *int64 `json:"userId,omitempty" example:"1"`
}
