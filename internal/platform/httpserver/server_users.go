package httpserver

import (
	"errors"
	"net/http"

	accounterrors "launchpad/contexts/identity-access/account-service/domain/errors"
	accounthttp "launchpad/contexts/identity-access/account-service/transport/http"
	"launchpad/internal/platform/session"
)

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "validation_failed", "request body must be valid JSON")
		return
	}

	resp, err := s.accounts.Handler.SignupHandler(r.Context(), req)
	if err != nil {
		s.writeAccountDomainError(w, r, err)
		return
	}
	if !s.startSession(w, resp) {
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "validation_failed", "request body must be valid JSON")
		return
	}

	resp, err := s.accounts.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		s.writeAccountDomainError(w, r, err)
		return
	}
	if !s.startSession(w, resp) {
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleLogout clears the cookie only; issued tokens stay valid until expiry.
func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	session.ClearCookie(w, s.secureCookies)
	writeJSON(w, http.StatusOK, accounthttp.MessageResponse{Message: "Logged out successfully"})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	principal, _ := session.PrincipalFromContext(r.Context())
	resp, err := s.accounts.Handler.GetProfileHandler(r.Context(), principal.UserID)
	if err != nil {
		s.writeAccountDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateInterests(w http.ResponseWriter, r *http.Request) {
	principal, _ := session.PrincipalFromContext(r.Context())
	var req accounthttp.UpdateInterestsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "validation_failed", "request body must be valid JSON")
		return
	}

	resp, err := s.accounts.Handler.UpdateInterestsHandler(r.Context(), principal.UserID, req)
	if err != nil {
		s.writeAccountDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// startSession issues a token for the authenticated account and sets the
// cookie. It writes the error response itself and reports false on failure.
func (s *Server) startSession(w http.ResponseWriter, resp accounthttp.AuthResponse) bool {
	token, expiresAt, err := s.tokens.Issue(resp.UserID, session.Role(resp.Role))
	if err != nil {
		s.logger.Error("session token issue failed",
			"event", "http_session_issue_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"user_id", resp.UserID,
			"error", err.Error(),
		)
		writeAccountError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return false
	}
	session.WriteCookie(w, token, expiresAt, s.secureCookies)
	return true
}

func (s *Server) writeAccountDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, accounterrors.ErrInvalidRequest),
		errors.Is(err, accounterrors.ErrInvalidRole):
		writeAccountError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, accounterrors.ErrInvalidCredentials):
		writeAccountError(w, http.StatusBadRequest, "invalid_credentials", "invalid credentials")
	case errors.Is(err, accounterrors.ErrEmailAlreadyExists):
		writeAccountError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, accounterrors.ErrUserNotFound):
		writeAccountError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, accounterrors.ErrForbidden):
		writeAccountError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, accounterrors.ErrStoreTimeout):
		s.logStoreFault(r, "http_account_store_timeout", err)
		writeAccountError(w, http.StatusGatewayTimeout, "store_timeout", "store did not respond in time")
	default:
		s.logStoreFault(r, "http_account_internal_error", err)
		writeAccountError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeAccountError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, accounthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func (s *Server) logStoreFault(r *http.Request, event string, err error) {
	s.logger.Error("request failed",
		"event", event,
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err.Error(),
	)
}
