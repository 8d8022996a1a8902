package memory

import (
	"context"
	"sync"
	"time"

	"launchpad/contexts/identity-access/account-service/domain/entities"
	domainerrors "launchpad/contexts/identity-access/account-service/domain/errors"
	"launchpad/contexts/identity-access/account-service/ports"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing the user repository, clock and
// id generator ports. It is intended for tests and local development wiring.
type Store struct {
	mu sync.RWMutex

	users   map[string]entities.User
	byEmail map[string]string
}

func NewStore() *Store {
	return &Store{
		users:   make(map[string]entities.User),
		byEmail: make(map[string]string),
	}
}

func (s *Store) CreateUser(ctx context.Context, input ports.CreateUserInput) (entities.User, error) {
	if err := ctx.Err(); err != nil {
		return entities.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[input.Email]; exists {
		return entities.User{}, domainerrors.ErrEmailAlreadyExists
	}
	user := entities.User{
		UserID:       input.UserID,
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		Role:         input.Role,
		Interests:    cloneStrings(input.Interests),
		CreatedAt:    input.CreatedAt.UTC(),
		UpdatedAt:    input.CreatedAt.UTC(),
	}
	s.users[user.UserID] = user
	s.byEmail[user.Email] = user.UserID
	return copyUser(user), nil
}

func (s *Store) GetUserByID(ctx context.Context, userID string) (entities.User, error) {
	if err := ctx.Err(); err != nil {
		return entities.User{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return copyUser(user), nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	if err := ctx.Err(); err != nil {
		return entities.User{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.byEmail[email]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return copyUser(s.users[userID]), nil
}

func (s *Store) ListUsersByIDs(ctx context.Context, userIDs []string) ([]entities.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.User, 0, len(userIDs))
	seen := make(map[string]struct{}, len(userIDs))
	for _, userID := range userIDs {
		if _, dup := seen[userID]; dup {
			continue
		}
		seen[userID] = struct{}{}
		if user, ok := s.users[userID]; ok {
			items = append(items, copyUser(user))
		}
	}
	return items, nil
}

func (s *Store) UpdateInterests(
	ctx context.Context,
	userID string,
	interests []string,
	updatedAt time.Time,
) (entities.User, error) {
	if err := ctx.Err(); err != nil {
		return entities.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	user.Interests = cloneStrings(interests)
	user.UpdatedAt = updatedAt.UTC()
	s.users[userID] = user
	return copyUser(user), nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func copyUser(user entities.User) entities.User {
	user.Interests = cloneStrings(user.Interests)
	return user
}

func cloneStrings(items []string) []string {
	if items == nil {
		return []string{}
	}
	return append([]string(nil), items...)
}
