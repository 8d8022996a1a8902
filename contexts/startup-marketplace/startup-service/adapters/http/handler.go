package httpadapter

import (
	"context"
	"log/slog"

	application "launchpad/contexts/startup-marketplace/startup-service/application"
	"launchpad/contexts/startup-marketplace/startup-service/application/commands"
	"launchpad/contexts/startup-marketplace/startup-service/application/queries"
	"launchpad/contexts/startup-marketplace/startup-service/domain/entities"
	httptransport "launchpad/contexts/startup-marketplace/startup-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	CreateStartup  commands.CreateStartupUseCase
	SubmitFeedback commands.SubmitFeedbackUseCase
	Feed           queries.FeedUseCase
	ListFeedback   queries.ListFeedbackUseCase
	Logger         *slog.Logger
}

// CreateStartupHandler godoc
// @Summary Publish a startup
// @Description Creates a startup owned by the signed-in founder.
// @Tags startups
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body httptransport.CreateStartupRequest true "Startup"
// @Success 201 {object} httptransport.CreateStartupResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /startups [post]
func (h Handler) CreateStartupHandler(
	ctx context.Context,
	founderID string,
	request httptransport.CreateStartupRequest,
) (httptransport.CreateStartupResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("http create startup received",
		"event", "startup_http_create_received",
		"module", "startup-marketplace/startup-service",
		"layer", "transport",
		"founder_id", founderID,
	)

	startup, err := h.CreateStartup.Execute(ctx, commands.CreateStartupCommand{
		FounderID:      founderID,
		Name:           request.Name,
		Tagline:        request.Tagline,
		Description:    request.Description,
		Industry:       request.Industry,
		Categories:     request.Categories,
		BusinessType:   request.BusinessType,
		TargetAudience: request.TargetAudience,
		Website:        request.Website,
	})
	if err != nil {
		logger.Warn("http create startup failed",
			"event", "startup_http_create_failed",
			"module", "startup-marketplace/startup-service",
			"layer", "transport",
			"founder_id", founderID,
			"error", err.Error(),
		)
		return httptransport.CreateStartupResponse{}, err
	}
	return httptransport.CreateStartupResponse{
		Message: "Startup created successfully",
		Startup: toStartupResponse(startup),
	}, nil
}

// FeedHandler godoc
// @Summary Personalized feed
// @Description Startups sharing at least one category with the adopter's interests.
// @Tags startups
// @Produce json
// @Security CookieAuth
// @Success 200 {array} httptransport.FeedItemResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 504 {object} httptransport.ErrorResponse
// @Router /startups [get]
func (h Handler) FeedHandler(ctx context.Context, adopterID string) ([]httptransport.FeedItemResponse, error) {
	items, err := h.Feed.Execute(ctx, adopterID)
	if err != nil {
		return nil, err
	}
	out := make([]httptransport.FeedItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, httptransport.FeedItemResponse{
			StartupResponse: toStartupResponse(item.Startup),
			Founder: httptransport.UserSummary{
				UserID:   item.Startup.FounderID,
				FullName: item.FounderName,
			},
		})
	}
	return out, nil
}

// ListFeedbackHandler godoc
// @Summary Startup feedback
// @Description Feedback on a startup, visible to its founder only.
// @Tags startups
// @Produce json
// @Security CookieAuth
// @Param startup_id path string true "Startup id"
// @Success 200 {array} httptransport.FeedbackResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /startups/{startup_id}/feedback [get]
func (h Handler) ListFeedbackHandler(
	ctx context.Context,
	startupID string,
	requesterID string,
) ([]httptransport.FeedbackResponse, error) {
	views, err := h.ListFeedback.Execute(ctx, queries.ListFeedbackQuery{
		StartupID:   startupID,
		RequesterID: requesterID,
	})
	if err != nil {
		return nil, err
	}
	out := make([]httptransport.FeedbackResponse, 0, len(views))
	for _, view := range views {
		out = append(out, toFeedbackResponse(view.Feedback, view.AuthorName))
	}
	return out, nil
}

// SubmitFeedbackHandler godoc
// @Summary Submit feedback
// @Tags startups
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param startup_id path string true "Startup id"
// @Param request body httptransport.SubmitFeedbackRequest true "Feedback"
// @Success 201 {object} httptransport.FeedbackResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /startups/{startup_id}/feedback [post]
func (h Handler) SubmitFeedbackHandler(
	ctx context.Context,
	startupID string,
	adopterID string,
	request httptransport.SubmitFeedbackRequest,
) (httptransport.FeedbackResponse, error) {
	feedback, err := h.SubmitFeedback.Execute(ctx, commands.SubmitFeedbackCommand{
		StartupID: startupID,
		UserID:    adopterID,
		Rating:    request.Rating,
		Comment:   request.Comment,
	})
	if err != nil {
		application.ResolveLogger(h.Logger).Warn("http submit feedback failed",
			"event", "startup_http_feedback_failed",
			"module", "startup-marketplace/startup-service",
			"layer", "transport",
			"startup_id", startupID,
			"user_id", adopterID,
			"error", err.Error(),
		)
		return httptransport.FeedbackResponse{}, err
	}
	return toFeedbackResponse(feedback, ""), nil
}

func toStartupResponse(startup entities.Startup) httptransport.StartupResponse {
	categories := startup.Categories
	if categories == nil {
		categories = []string{}
	}
	return httptransport.StartupResponse{
		StartupID:      startup.StartupID,
		FounderID:      startup.FounderID,
		Name:           startup.Name,
		Tagline:        startup.Tagline,
		Description:    startup.Description,
		Industry:       startup.Industry,
		Categories:     categories,
		BusinessType:   string(startup.BusinessType),
		TargetAudience: startup.TargetAudience,
		Website:        startup.Website,
		CreatedAt:      startup.CreatedAt,
		UpdatedAt:      startup.UpdatedAt,
	}
}

func toFeedbackResponse(feedback entities.Feedback, authorName string) httptransport.FeedbackResponse {
	return httptransport.FeedbackResponse{
		FeedbackID: feedback.FeedbackID,
		StartupID:  feedback.StartupID,
		Rating:     feedback.Rating,
		Comment:    feedback.Comment,
		User: httptransport.UserSummary{
			UserID:   feedback.UserID,
			FullName: authorName,
		},
		CreatedAt: feedback.CreatedAt,
	}
}
