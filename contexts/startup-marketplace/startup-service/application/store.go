package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainerrors "launchpad/contexts/startup-marketplace/startup-service/domain/errors"
)

// DefaultStoreTimeout bounds every repository call when no timeout is configured.
const DefaultStoreTimeout = 5 * time.Second

func WithStoreTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// StoreError tags deadline failures as ErrStoreTimeout.
func StoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, domainerrors.ErrStoreTimeout) {
		return fmt.Errorf("%w: %v", domainerrors.ErrStoreTimeout, err)
	}
	return err
}
