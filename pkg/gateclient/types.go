package gateclient

// RegisterRequest is the POST /api/auth/register body.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the POST /api/auth/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserView is the sanitized user representation returned by the API.
// Login responses only carry the email.
type UserView struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
}

// AuthResponse is the register/login success envelope. The refresh token
// travels separately in the `jwt` cookie, never in the body.
type AuthResponse struct {
	Success     bool     `json:"success"`
	Message     string   `json:"message"`
	User        UserView `json:"user"`
	AccessToken string   `json:"accessToken"`
}

// ErrorResponse is the register/login failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RefreshResponse is the GET /api/auth/refresh success body.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// MessageResponse is the terse `{"message": ...}` envelope used by the
// refresh/logout error paths, the access guard, and the empty user list.
type MessageResponse struct {
	Message string `json:"message"`
}
