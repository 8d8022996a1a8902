package commands

import (
	"context"
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

type UpdateInterestsCommand struct {
	UserID    string
	Interests []string
}

// UpdateInterestsUseCase replaces an adopter's interest tags.
type UpdateInterestsUseCase struct {
	Users        ports.UserRepository
	Clock        ports.Clock
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

func (u UpdateInterestsUseCase) Execute(ctx context.Context, cmd UpdateInterestsCommand) (entities.User, error) {
	if strings.TrimSpace(cmd.UserID) == "" {
		return entities.User{}, fmt.Errorf("%w: user id is required", domainerrors.ErrInvalidRequest)
	}
	interests := services.NormalizeInterests(cmd.Interests)
	if len(interests) > services.MaxInterests {
		return entities.User{}, fmt.Errorf("%w: at most %d interests are allowed", domainerrors.ErrInvalidRequest, services.MaxInterests)
	}

	storeCtx, cancel := application.WithStoreTimeout(ctx, u.StoreTimeout)
	defer cancel()

	user, err := u.Users.GetUserByID(storeCtx, cmd.UserID)
	if err != nil {
		return entities.User{}, application.StoreError(err)
	}
	if !user.IsAdopter() {
		return entities.User{}, domainerrors.ErrForbidden
	}

	updated, err := u.Users.UpdateInterests(storeCtx, cmd.UserID, interests, u.now())
	if err != nil {
		return entities.User{}, application.StoreError(err)
	}

	application.ResolveLogger(u.Logger).Info("adopter interests updated",
		"event", "account_interests_updated",
		"module", "identity-access/account-service",
		"layer", "application",
		"user_id", cmd.UserID,
		"interest_count", len(interests),
	)
	return updated, nil
}

func (u UpdateInterestsUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
