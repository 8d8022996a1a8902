package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "launchpad/contexts/startup-marketplace/startup-service/application"
	"launchpad/contexts/startup-marketplace/startup-service/domain/entities"
	domainerrors "launchpad/contexts/startup-marketplace/startup-service/domain/errors"
	"launchpad/contexts/startup-marketplace/startup-service/domain/services"
	"launchpad/contexts/startup-marketplace/startup-service/ports"
)

// CreateStartupCommand carries the founder identity from the session and the
// startup fields from the request body.
type CreateStartupCommand struct {
	FounderID      string
	Name           string
	Tagline        string
	Description    string
	Industry       string
	Categories     []string
	BusinessType   string
	TargetAudience string
	Website        string
}

// CreateStartupUseCase validates and persists a startup for its founder.
// The founder role is re-read from the directory here; the repository checks
// it again inside the write.
type CreateStartupUseCase struct {
	Startups     ports.StartupRepository
	Users        ports.UserDirectory
	Clock        ports.Clock
	IDGenerator  ports.IDGenerator
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

func (u CreateStartupUseCase) Execute(ctx context.Context, cmd CreateStartupCommand) (entities.Startup, error) {
	if strings.TrimSpace(cmd.FounderID) == "" {
		return entities.Startup{}, fmt.Errorf("%w: founder id is required", domainerrors.ErrInvalidRequest)
	}

	startup := entities.Startup{
		FounderID:      cmd.FounderID,
		Name:           cmd.Name,
		Tagline:        cmd.Tagline,
		Description:    cmd.Description,
		Industry:       cmd.Industry,
		Categories:     cmd.Categories,
		BusinessType:   entities.BusinessType(strings.TrimSpace(cmd.BusinessType)),
		TargetAudience: cmd.TargetAudience,
		Website:        cmd.Website,
	}
	if err := services.NormalizeStartup(&startup); err != nil {
		return entities.Startup{}, err
	}

	logger := application.ResolveLogger(u.Logger)
	storeCtx, cancel := application.WithStoreTimeout(ctx, u.StoreTimeout)
	defer cancel()

	founder, found, err := u.Users.GetUser(storeCtx, cmd.FounderID)
	if err != nil {
		return entities.Startup{}, application.StoreError(err)
	}
	if !found {
		return entities.Startup{}, domainerrors.ErrFounderNotFound
	}
	if founder.Role != ports.RoleFounder {
		logger.Warn("startup creation rejected, owner is not a founder",
			"event", "startup_create_owner_not_founder",
			"module", "startup-marketplace/startup-service",
			"layer", "application",
			"user_id", cmd.FounderID,
			"role", founder.Role,
		)
		return entities.Startup{}, domainerrors.ErrNotFounder
	}

	startupID, err := u.IDGenerator.NewID(storeCtx)
	if err != nil {
		return entities.Startup{}, err
	}
	now := u.now()
	startup.StartupID = startupID
	startup.CreatedAt = now
	startup.UpdatedAt = now

	created, err := u.Startups.CreateStartup(storeCtx, startup)
	if err != nil {
		logger.Error("startup creation failed",
			"event", "startup_create_failed",
			"module", "startup-marketplace/startup-service",
			"layer", "application",
			"founder_id", cmd.FounderID,
			"error", err.Error(),
		)
		return entities.Startup{}, application.StoreError(err)
	}

	logger.Info("startup created",
		"event", "startup_created",
		"module", "startup-marketplace/startup-service",
		"layer", "application",
		"startup_id", created.StartupID,
		"founder_id", created.FounderID,
		"category_count", len(created.Categories),
	)
	return created, nil
}

func (u CreateStartupUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
