package accountdirectory

import (
	"context"
	"errors"
	"testing"

	accountservice "launchpad/contexts/identity-access/account-service"
	accountentities "launchpad/contexts/identity-access/account-service/domain/entities"
	accounterrors "launchpad/contexts/identity-access/account-service/domain/errors"
	accounthttp "launchpad/contexts/identity-access/account-service/transport/http"
	startuperrors "launchpad/contexts/startup-marketplace/startup-service/domain/errors"
	startupports "launchpad/contexts/startup-marketplace/startup-service/ports"
)

func TestDirectoryResolvesAccounts(t *testing.T) {
	accounts := accountservice.NewInMemoryModule(nil)
	ctx := context.Background()

	founder, err := accounts.Handler.SignupHandler(ctx, accounthttp.SignupRequest{
		FullName: "Fatima Founder",
		Email:    "fatima@example.com",
		Password: "pw-123456",
		Role:     "founder",
	})
	if err != nil {
		t.Fatalf("signup founder: %v", err)
	}
	adopter, err := accounts.Handler.SignupHandler(ctx, accounthttp.SignupRequest{
		FullName:  "Ada Adopter",
		Email:     "ada@example.com",
		Password:  "pw-123456",
		Role:      "adopter",
		Interests: []string{"AI"},
	})
	if err != nil {
		t.Fatalf("signup adopter: %v", err)
	}

	directory := New(accounts.Lookup)

	summary, found, err := directory.GetUser(ctx, adopter.UserID)
	if err != nil || !found {
		t.Fatalf("expected adopter, found=%v err=%v", found, err)
	}
	if summary.Role != startupports.RoleAdopter || len(summary.Interests) != 1 || summary.Interests[0] != "AI" {
		t.Fatalf("unexpected adopter summary %+v", summary)
	}

	if _, found, err := directory.GetUser(ctx, "ghost"); err != nil || found {
		t.Fatalf("expected missing user, found=%v err=%v", found, err)
	}

	users, err := directory.ListUsers(ctx, []string{founder.UserID, founder.UserID, "ghost"})
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 1 || users[founder.UserID].FullName != "Fatima Founder" {
		t.Fatalf("unexpected users %+v", users)
	}
}

type failingLookup struct {
	err error
}

func (f failingLookup) Execute(context.Context, []string) (map[string]accountentities.User, error) {
	return nil, f.err
}

func TestDirectoryTranslatesStoreTimeout(t *testing.T) {
	directory := New(failingLookup{err: accounterrors.ErrStoreTimeout})

	_, _, err := directory.GetUser(context.Background(), "u-1")
	if !errors.Is(err, startuperrors.ErrStoreTimeout) {
		t.Fatalf("expected startup store timeout, got %v", err)
	}
}
