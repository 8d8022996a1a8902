package ports

import (
	"context"
	"time"

	"launchpad/contexts/identity-access/account-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for new users.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// PasswordHasher hashes and verifies user secrets.
// Compare returns a non-nil error for any mismatch.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// CreateUserInput is persisted as a single user row.
type CreateUserInput struct {
	UserID       string
	FullName     string
	Email        string
	PasswordHash string
	Role         entities.Role
	Interests    []string
	CreatedAt    time.Time
}

// UserRepository is the credential store boundary.
// Lookups return ErrUserNotFound when nothing matches; CreateUser returns
// ErrEmailAlreadyExists on a duplicate email.
type UserRepository interface {
	CreateUser(ctx context.Context, input CreateUserInput) (entities.User, error)
	GetUserByID(ctx context.Context, userID string) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	ListUsersByIDs(ctx context.Context, userIDs []string) ([]entities.User, error)
	UpdateInterests(ctx context.Context, userID string, interests []string, updatedAt time.Time) (entities.User, error)
}
