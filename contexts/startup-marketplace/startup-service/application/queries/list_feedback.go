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
	"launchpad/contexts/startup-marketplace/startup-service/ports"
)

type ListFeedbackQuery struct {
	StartupID   string
	RequesterID string
}

// ListFeedbackUseCase returns feedback for a startup to its owning founder.
type ListFeedbackUseCase struct {
	Startups     ports.StartupRepository
	Feedback     ports.FeedbackRepository
	Users        ports.UserDirectory
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

func (u ListFeedbackUseCase) Execute(ctx context.Context, query ListFeedbackQuery) ([]entities.FeedbackView, error) {
	if strings.TrimSpace(query.StartupID) == "" || strings.TrimSpace(query.RequesterID) == "" {
		return nil, fmt.Errorf("%w: startup id and requester id are required", domainerrors.ErrInvalidRequest)
	}

	logger := application.ResolveLogger(u.Logger)
	storeCtx, cancel := application.WithStoreTimeout(ctx, u.StoreTimeout)
	defer cancel()

	startup, found, err := u.Startups.GetStartup(storeCtx, query.StartupID)
	if err != nil {
		return nil, application.StoreError(err)
	}
	if !found {
		return nil, domainerrors.ErrStartupNotFound
	}
	if startup.FounderID != query.RequesterID {
		logger.Warn("feedback access denied",
			"event", "startup_feedback_access_denied",
			"module", "startup-marketplace/startup-service",
			"layer", "application",
			"startup_id", query.StartupID,
			"requester_id", query.RequesterID,
		)
		return nil, domainerrors.ErrNotStartupOwner
	}

	items, err := u.Feedback.ListFeedbackByStartup(storeCtx, query.StartupID)
	if err != nil {
		return nil, application.StoreError(err)
	}
	if len(items) == 0 {
		return []entities.FeedbackView{}, nil
	}

	authorIDs := make([]string, 0, len(items))
	for _, item := range items {
		authorIDs = append(authorIDs, item.UserID)
	}
	authors, err := u.Users.ListUsers(storeCtx, authorIDs)
	if err != nil {
		return nil, application.StoreError(err)
	}

	views := make([]entities.FeedbackView, 0, len(items))
	for _, item := range items {
		views = append(views, entities.FeedbackView{
			Feedback:   item,
			AuthorName: authors[item.UserID].FullName,
		})
	}
	return views, nil
}
