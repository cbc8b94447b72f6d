package models

// AuthRequest is the login credential pair.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login, registration and the status check.
// The embedded user is not trusted as the session identity; see the
// session manager.
type AuthResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	User      User   `json:"user"`
	UserGroup Group  `json:"user_group"`
}

// MessageResponse is the platform's plain acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}
