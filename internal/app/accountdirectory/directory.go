// Package accountdirectory exposes identity accounts to the startup module
// without either context importing the other.
package accountdirectory

import (
	"context"
	"errors"
	"fmt"

	accountentities "launchpad/contexts/identity-access/account-service/domain/entities"
	accounterrors "launchpad/contexts/identity-access/account-service/domain/errors"
	startuperrors "launchpad/contexts/startup-marketplace/startup-service/domain/errors"
	startupports "launchpad/contexts/startup-marketplace/startup-service/ports"
)

// UserLookup is satisfied by the account module's batch lookup use case.
type UserLookup interface {
	Execute(ctx context.Context, userIDs []string) (map[string]accountentities.User, error)
}

type Directory struct {
	Lookup UserLookup
}

var _ startupports.UserDirectory = Directory{}

func New(lookup UserLookup) Directory {
	return Directory{Lookup: lookup}
}

func (d Directory) GetUser(ctx context.Context, userID string) (startupports.UserSummary, bool, error) {
	users, err := d.Lookup.Execute(ctx, []string{userID})
	if err != nil {
		return startupports.UserSummary{}, false, translate(err)
	}
	user, ok := users[userID]
	if !ok {
		return startupports.UserSummary{}, false, nil
	}
	return toSummary(user), true, nil
}

func (d Directory) ListUsers(ctx context.Context, userIDs []string) (map[string]startupports.UserSummary, error) {
	unique := make([]string, 0, len(userIDs))
	seen := make(map[string]struct{}, len(userIDs))
	for _, userID := range userIDs {
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}
		unique = append(unique, userID)
	}

	users, err := d.Lookup.Execute(ctx, unique)
	if err != nil {
		return nil, translate(err)
	}
	items := make(map[string]startupports.UserSummary, len(users))
	for userID, user := range users {
		items[userID] = toSummary(user)
	}
	return items, nil
}

func toSummary(user accountentities.User) startupports.UserSummary {
	return startupports.UserSummary{
		UserID:    user.UserID,
		FullName:  user.FullName,
		Role:      string(user.Role),
		Interests: append([]string(nil), user.Interests...),
	}
}

// translate keeps store timeouts recognizable on the startup side.
func translate(err error) error {
	if errors.Is(err, accounterrors.ErrStoreTimeout) {
		return fmt.Errorf("%w: %w", startuperrors.ErrStoreTimeout, err)
	}
	return err
}
