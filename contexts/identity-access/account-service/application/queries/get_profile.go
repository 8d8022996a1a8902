package queries

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "launchpad/contexts/identity-access/account-service/application"
	"launchpad/contexts/identity-access/account-service/domain/entities"
	domainerrors "launchpad/contexts/identity-access/account-service/domain/errors"
	"launchpad/contexts/identity-access/account-service/ports"
)

type GetProfileUseCase struct {
	Users        ports.UserRepository
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

// Execute returns ErrUserNotFound when the identity behind a valid session no
// longer exists.
func (u GetProfileUseCase) Execute(ctx context.Context, userID string) (entities.User, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.User{}, fmt.Errorf("%w: user id is required", domainerrors.ErrInvalidRequest)
	}

	storeCtx, cancel := application.WithStoreTimeout(ctx, u.StoreTimeout)
	defer cancel()

	user, err := u.Users.GetUserByID(storeCtx, userID)
	if err != nil {
		application.ResolveLogger(u.Logger).Debug("profile lookup failed",
			"event", "account_profile_lookup_failed",
			"module", "identity-access/account-service",
			"layer", "application",
			"user_id", userID,
			"error", err.Error(),
		)
		return entities.User{}, application.StoreError(err)
	}
	return user, nil
}
