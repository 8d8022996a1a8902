package httptransport

import "time"

// SignupRequest is the request body for account creation.
type SignupRequest struct {
	FullName  string   `json:"fullName"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Role      string   `json:"role"`
	Interests []string `json:"interests,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the identity summary returned by signup and login.
type AuthResponse struct {
	Message  string `json:"message"`
	UserID   string `json:"userId"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// ProfileResponse is the user record without the password hash.
type ProfileResponse struct {
	UserID    string    `json:"userId"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Interests []string  `json:"interests"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UpdateInterestsRequest struct {
	Interests []string `json:"interests"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
