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
	"launchpad/contexts/identity-access/account-service/ports"
)

type LoginCommand struct {
	Email    string
	Password string
}

// LoginUseCase checks credentials. Unknown email and wrong password return
// the same ErrInvalidCredentials.
type LoginUseCase struct {
	Users        ports.UserRepository
	Hasher       ports.PasswordHasher
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

func (u LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (entities.User, error) {
	email := strings.TrimSpace(cmd.Email)
	if email == "" || cmd.Password == "" {
		return entities.User{}, fmt.Errorf("%w: email and password are required", domainerrors.ErrInvalidRequest)
	}

	logger := application.ResolveLogger(u.Logger)
	storeCtx, cancel := application.WithStoreTimeout(ctx, u.StoreTimeout)
	defer cancel()

	user, err := u.Users.GetUserByEmail(storeCtx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			logger.Info("login rejected",
				"event", "account_login_rejected",
				"module", "identity-access/account-service",
				"layer", "application",
				"reason", "unknown_email",
			)
			return entities.User{}, domainerrors.ErrInvalidCredentials
		}
		return entities.User{}, application.StoreError(err)
	}

	if err := u.Hasher.Compare(user.PasswordHash, cmd.Password); err != nil {
		logger.Info("login rejected",
			"event", "account_login_rejected",
			"module", "identity-access/account-service",
			"layer", "application",
			"user_id", user.UserID,
			"reason", "password_mismatch",
		)
		return entities.User{}, domainerrors.ErrInvalidCredentials
	}

	logger.Info("user logged in",
		"event", "account_login_completed",
		"module", "identity-access/account-service",
		"layer", "application",
		"user_id", user.UserID,
		"role", string(user.Role),
	)
	return user, nil
}
