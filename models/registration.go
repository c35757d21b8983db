package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserType  string `json:"userType"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Bio       string `json:"bio,omitempty"`

	// Lawyer registrations must include a profile.
	Profile       *LawyerProfile `json:"profile,omitempty"`
	ClientProfile *ClientProfile `json:"clientProfile,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse pairs the authenticated user with a bearer token.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
