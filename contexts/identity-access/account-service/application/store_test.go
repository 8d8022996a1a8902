package application

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerrors "launchpad/contexts/identity-access/account-service/domain/errors"
)

func TestStoreErrorTagsDeadline(t *testing.T) {
	ctx, cancel := WithStoreTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	err := StoreError(ctx.Err())
	if !errors.Is(err, domainerrors.ErrStoreTimeout) {
		t.Fatalf("expected store timeout, got %v", err)
	}
	if !errors.Is(StoreError(domainerrors.ErrUserNotFound), domainerrors.ErrUserNotFound) {
		t.Fatalf("expected non-deadline errors to pass through")
	}
	if StoreError(nil) != nil {
		t.Fatalf("expected nil")
	}
}
