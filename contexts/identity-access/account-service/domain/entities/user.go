package entities

import "time"

// Role is fixed at signup and never changes afterwards.
type Role string

const (
	RoleFounder Role = "founder"
	RoleAdopter Role = "adopter"
)

func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleFounder:
		return RoleFounder, true
	case RoleAdopter:
		return RoleAdopter, true
	default:
		return "", false
	}
}

// User is the persisted identity record. PasswordHash never leaves the process.
type User struct {
	UserID       string    `json:"userId"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Interests    []string  `json:"interests"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u User) IsAdopter() bool {
	return u.Role == RoleAdopter
}
