package queries

import (
	"context"
	"time"

	application "launchpad/contexts/identity-access/account-service/application"
	"launchpad/contexts/identity-access/account-service/domain/entities"
	"launchpad/contexts/identity-access/account-service/ports"
)

// LookupUsersUseCase resolves a batch of users for cross-module joins.
// Unknown ids are omitted from the result.
type LookupUsersUseCase struct {
	Users        ports.UserRepository
	StoreTimeout time.Duration
}

func (u LookupUsersUseCase) Execute(ctx context.Context, userIDs []string) (map[string]entities.User, error) {
	items := make(map[string]entities.User, len(userIDs))
	if len(userIDs) == 0 {
		return items, nil
	}

	storeCtx, cancel := application.WithStoreTimeout(ctx, u.StoreTimeout)
	defer cancel()

	users, err := u.Users.ListUsersByIDs(storeCtx, userIDs)
	if err != nil {
		return nil, application.StoreError(err)
	}
	for _, user := range users {
		items[user.UserID] = user
	}
	return items, nil
}
