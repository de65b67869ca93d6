// Package identityapi handles operator registration and sign-in over HTTP.
package identityapi

// AuthRequest is the shared register/login request body.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by a successful login.
type AuthResponse struct {
	Token string `json:"token"`
}
