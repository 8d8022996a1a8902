package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "launchpad/contexts/identity-access/account-service/application"
	"launchpad/contexts/identity-access/account-service/domain/entities"
	domainerrors "launchpad/contexts/identity-access/account-service/domain/errors"
	"launchpad/contexts/identity-access/account-service/domain/services"
	"launchpad/contexts/identity-access/account-service/ports"
)

// SignupCommand is transport-agnostic input for account creation.
type SignupCommand struct {
	FullName  string
	Email     string
	Password  string
	Role      string
	Interests []string
}

// SignupUseCase creates a user with a hashed secret.
type SignupUseCase struct {
	Users        ports.UserRepository
	Hasher       ports.PasswordHasher
	Clock        ports.Clock
	IDGenerator  ports.IDGenerator
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

func (u SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (entities.User, error) {
	fullName := strings.TrimSpace(cmd.FullName)
	email := strings.TrimSpace(cmd.Email)
	if fullName == "" || email == "" || cmd.Password == "" || strings.TrimSpace(cmd.Role) == "" {
		return entities.User{}, fmt.Errorf("%w: all fields are required", domainerrors.ErrInvalidRequest)
	}
	role, ok := entities.ParseRole(strings.TrimSpace(cmd.Role))
	if !ok {
		return entities.User{}, domainerrors.ErrInvalidRole
	}

	var interests []string
	if role == entities.RoleAdopter {
		interests = services.NormalizeInterests(cmd.Interests)
		if len(interests) > services.MaxInterests {
			return entities.User{}, fmt.Errorf("%w: at most %d interests are allowed", domainerrors.ErrInvalidRequest, services.MaxInterests)
		}
	}

	logger := application.ResolveLogger(u.Logger)
	storeCtx, cancel := application.WithStoreTimeout(ctx, u.StoreTimeout)
	defer cancel()

	if _, err := u.Users.GetUserByEmail(storeCtx, email); err == nil {
		logger.Info("signup rejected, email taken",
			"event", "account_signup_duplicate_email",
			"module", "identity-access/account-service",
			"layer", "application",
			"role", string(role),
		)
		return entities.User{}, domainerrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, domainerrors.ErrUserNotFound) {
		return entities.User{}, application.StoreError(err)
	}

	hash, err := u.Hasher.Hash(cmd.Password)
	if err != nil {
		return entities.User{}, err
	}
	userID, err := u.IDGenerator.NewID(storeCtx)
	if err != nil {
		return entities.User{}, err
	}

	user, err := u.Users.CreateUser(storeCtx, ports.CreateUserInput{
		UserID:       userID,
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Interests:    interests,
		CreatedAt:    u.now(),
	})
	if err != nil {
		return entities.User{}, application.StoreError(err)
	}

	logger.Info("user signed up",
		"event", "account_signup_completed",
		"module", "identity-access/account-service",
		"layer", "application",
		"user_id", user.UserID,
		"role", string(user.Role),
	)
	return user, nil
}

func (u SignupUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
