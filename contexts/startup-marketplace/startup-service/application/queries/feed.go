package queries

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

// FeedUseCase builds the personalized startup feed for an adopter.
//
// An adopter that cannot be resolved, or that has no interests, gets an empty
// feed rather than an error. Matches keep repository order (oldest first).
type FeedUseCase struct {
	Users        ports.UserDirectory
	Startups     ports.StartupRepository
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

func (u FeedUseCase) Execute(ctx context.Context, adopterID string) ([]entities.FeedItem, error) {
	if strings.TrimSpace(adopterID) == "" {
		return nil, fmt.Errorf("%w: adopter id is required", domainerrors.ErrInvalidRequest)
	}

	logger := application.ResolveLogger(u.Logger)
	storeCtx, cancel := application.WithStoreTimeout(ctx, u.StoreTimeout)
	defer cancel()

	adopter, found, err := u.Users.GetUser(storeCtx, adopterID)
	if err != nil {
		return nil, application.StoreError(err)
	}
	interests := services.NormalizeTags(adopter.Interests)
	if !found || len(interests) == 0 {
		logger.Debug("feed empty, adopter has no interests",
			"event", "startup_feed_no_interests",
			"module", "startup-marketplace/startup-service",
			"layer", "application",
			"user_id", adopterID,
			"adopter_found", found,
		)
		return []entities.FeedItem{}, nil
	}

	matches, err := u.Startups.ListStartupsByCategories(storeCtx, interests)
	if err != nil {
		logger.Error("feed query failed",
			"event", "startup_feed_query_failed",
			"module", "startup-marketplace/startup-service",
			"layer", "application",
			"user_id", adopterID,
			"error", err.Error(),
		)
		return nil, application.StoreError(err)
	}
	if len(matches) == 0 {
		return []entities.FeedItem{}, nil
	}

	founderIDs := make([]string, 0, len(matches))
	for _, startup := range matches {
		founderIDs = append(founderIDs, startup.FounderID)
	}
	founders, err := u.Users.ListUsers(storeCtx, founderIDs)
	if err != nil {
		return nil, application.StoreError(err)
	}

	items := make([]entities.FeedItem, 0, len(matches))
	for _, startup := range matches {
		if !services.SharesTag(startup.Categories, interests) {
			continue
		}
		items = append(items, entities.FeedItem{
			Startup:     startup,
			FounderName: founders[startup.FounderID].FullName,
		})
	}

	logger.Debug("feed built",
		"event", "startup_feed_built",
		"module", "startup-marketplace/startup-service",
		"layer", "application",
		"user_id", adopterID,
		"interest_count", len(interests),
		"match_count", len(items),
	)
	return items, nil
}
