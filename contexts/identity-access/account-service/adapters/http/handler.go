package httpadapter

import (
	"context"
	"log/slog"

	application "launchpad/contexts/identity-access/account-service/application"
	"launchpad/contexts/identity-access/account-service/application/commands"
	"launchpad/contexts/identity-access/account-service/application/queries"
	"launchpad/contexts/identity-access/account-service/domain/entities"
	httptransport "launchpad/contexts/identity-access/account-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	Signup          commands.SignupUseCase
	Login           commands.LoginUseCase
	UpdateInterests commands.UpdateInterestsUseCase
	GetProfile      queries.GetProfileUseCase
	Logger          *slog.Logger
}

// SignupHandler godoc
// @Summary Sign up
// @Description Creates a founder or adopter account and sets the session cookie.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body httptransport.SignupRequest true "Signup request"
// @Success 201 {object} httptransport.AuthResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /users/signup [post]
func (h Handler) SignupHandler(ctx context.Context, request httptransport.SignupRequest) (httptransport.AuthResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http signup received",
		"event", "account_http_signup_received",
		"module", "identity-access/account-service",
		"layer", "transport",
		"role", request.Role,
	)

	user, err := h.Signup.Execute(ctx, commands.SignupCommand{
		FullName:  request.FullName,
		Email:     request.Email,
		Password:  request.Password,
		Role:      request.Role,
		Interests: request.Interests,
	})
	if err != nil {
		logger.Warn("http signup failed",
			"event", "account_http_signup_failed",
			"module", "identity-access/account-service",
			"layer", "transport",
			"error", err.Error(),
		)
		return httptransport.AuthResponse{}, err
	}
	return toAuthResponse("User created successfully", user), nil
}

// LoginHandler godoc
// @Summary Log in
// @Description Verifies credentials and sets the session cookie.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body httptransport.LoginRequest true "Login request"
// @Success 200 {object} httptransport.AuthResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /users/login [post]
func (h Handler) LoginHandler(ctx context.Context, request httptransport.LoginRequest) (httptransport.AuthResponse, error) {
	user, err := h.Login.Execute(ctx, commands.LoginCommand{
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		application.ResolveLogger(h.Logger).Debug("http login failed",
			"event", "account_http_login_failed",
			"module", "identity-access/account-service",
			"layer", "transport",
			"error", err.Error(),
		)
		return httptransport.AuthResponse{}, err
	}
	return toAuthResponse("Logged in successfully", user), nil
}

// GetProfileHandler godoc
// @Summary Current user profile
// @Tags accounts
// @Produce json
// @Security CookieAuth
// @Success 200 {object} httptransport.ProfileResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /users/profile [get]
func (h Handler) GetProfileHandler(ctx context.Context, userID string) (httptransport.ProfileResponse, error) {
	user, err := h.GetProfile.Execute(ctx, userID)
	if err != nil {
		return httptransport.ProfileResponse{}, err
	}
	return toProfileResponse(user), nil
}

// UpdateInterestsHandler godoc
// @Summary Replace adopter interests
// @Description Replaces the interest list used to match the startup feed.
// @Tags accounts
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body httptransport.UpdateInterestsRequest true "Interests"
// @Success 200 {object} httptransport.ProfileResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /users/interests [put]
func (h Handler) UpdateInterestsHandler(
	ctx context.Context,
	userID string,
	request httptransport.UpdateInterestsRequest,
) (httptransport.ProfileResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("http update interests received",
		"event", "account_http_update_interests_received",
		"module", "identity-access/account-service",
		"layer", "transport",
		"user_id", userID,
		"interest_count", len(request.Interests),
	)

	user, err := h.UpdateInterests.Execute(ctx, commands.UpdateInterestsCommand{
		UserID:    userID,
		Interests: request.Interests,
	})
	if err != nil {
		logger.Error("http update interests failed",
			"event", "account_http_update_interests_failed",
			"module", "identity-access/account-service",
			"layer", "transport",
			"user_id", userID,
			"error", err.Error(),
		)
		return httptransport.ProfileResponse{}, err
	}
	return toProfileResponse(user), nil
}

func toAuthResponse(message string, user entities.User) httptransport.AuthResponse {
	return httptransport.AuthResponse{
		Message:  message,
		UserID:   user.UserID,
		FullName: user.FullName,
		Role:     string(user.Role),
	}
}

func toProfileResponse(user entities.User) httptransport.ProfileResponse {
	interests := user.Interests
	if interests == nil {
		interests = []string{}
	}
	return httptransport.ProfileResponse{
		UserID:    user.UserID,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      string(user.Role),
		Interests: interests,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
