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

type SubmitFeedbackCommand struct {
	StartupID string
	UserID    string
	Rating    int
	Comment   string
}

// SubmitFeedbackUseCase records an adopter's feedback on a startup.
type SubmitFeedbackUseCase struct {
	Startups     ports.StartupRepository
	Feedback     ports.FeedbackRepository
	Clock        ports.Clock
	IDGenerator  ports.IDGenerator
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

func (u SubmitFeedbackUseCase) Execute(ctx context.Context, cmd SubmitFeedbackCommand) (entities.Feedback, error) {
	if strings.TrimSpace(cmd.StartupID) == "" || strings.TrimSpace(cmd.UserID) == "" {
		return entities.Feedback{}, fmt.Errorf("%w: startup id and user id are required", domainerrors.ErrInvalidRequest)
	}
	comment := strings.TrimSpace(cmd.Comment)
	if err := services.ValidateFeedback(cmd.Rating, comment); err != nil {
		return entities.Feedback{}, err
	}

	storeCtx, cancel := application.WithStoreTimeout(ctx, u.StoreTimeout)
	defer cancel()

	if _, found, err := u.Startups.GetStartup(storeCtx, cmd.StartupID); err != nil {
		return entities.Feedback{}, application.StoreError(err)
	} else if !found {
		return entities.Feedback{}, domainerrors.ErrStartupNotFound
	}

	feedbackID, err := u.IDGenerator.NewID(storeCtx)
	if err != nil {
		return entities.Feedback{}, err
	}
	created, err := u.Feedback.CreateFeedback(storeCtx, entities.Feedback{
		FeedbackID: feedbackID,
		StartupID:  cmd.StartupID,
		UserID:     cmd.UserID,
		Rating:     cmd.Rating,
		Comment:    comment,
		CreatedAt:  u.now(),
	})
	if err != nil {
		return entities.Feedback{}, application.StoreError(err)
	}

	application.ResolveLogger(u.Logger).Info("feedback submitted",
		"event", "startup_feedback_submitted",
		"module", "startup-marketplace/startup-service",
		"layer", "application",
		"startup_id", cmd.StartupID,
		"user_id", cmd.UserID,
		"rating", cmd.Rating,
	)
	return created, nil
}

func (u SubmitFeedbackUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
