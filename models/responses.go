package models

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is returned by calls that have nothing else to report.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// LoginRequest carries the admin credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned after a successful login. The token is also
// set in the Authorization header and the session cookie.
type LoginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// SessionResponse describes the current admin session.
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email"`
}
