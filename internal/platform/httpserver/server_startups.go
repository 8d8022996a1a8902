package httpserver

import (
	"errors"
	"net/http"

	startuperrors "launchpad/contexts/startup-marketplace/startup-service/domain/errors"
	startuphttp "launchpad/contexts/startup-marketplace/startup-service/transport/http"
	"launchpad/internal/platform/session"
)

func (s *Server) handleCreateStartup(w http.ResponseWriter, r *http.Request) {
	principal, _ := session.PrincipalFromContext(r.Context())
	var req startuphttp.CreateStartupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeStartupError(w, http.StatusBadRequest, "validation_failed", "request body must be valid JSON")
		return
	}

	resp, err := s.startups.Handler.CreateStartupHandler(r.Context(), principal.UserID, req)
	if err != nil {
		s.writeStartupDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	principal, _ := session.PrincipalFromContext(r.Context())
	resp, err := s.startups.Handler.FeedHandler(r.Context(), principal.UserID)
	if err != nil {
		s.writeStartupDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListFeedback(w http.ResponseWriter, r *http.Request) {
	principal, _ := session.PrincipalFromContext(r.Context())
	resp, err := s.startups.Handler.ListFeedbackHandler(r.Context(), r.PathValue("startup_id"), principal.UserID)
	if err != nil {
		s.writeStartupDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmitFeedback(w http.ResponseWriter, r *http.Request) {
	principal, _ := session.PrincipalFromContext(r.Context())
	var req startuphttp.SubmitFeedbackRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeStartupError(w, http.StatusBadRequest, "validation_failed", "request body must be valid JSON")
		return
	}

	resp, err := s.startups.Handler.SubmitFeedbackHandler(r.Context(), r.PathValue("startup_id"), principal.UserID, req)
	if err != nil {
		s.writeStartupDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) writeStartupDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, startuperrors.ErrInvalidRequest),
		errors.Is(err, startuperrors.ErrInvalidStartup),
		errors.Is(err, startuperrors.ErrInvalidFeedback):
		writeStartupError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, startuperrors.ErrStartupNotFound):
		writeStartupError(w, http.StatusNotFound, "not_found", "startup not found")
	case errors.Is(err, startuperrors.ErrFounderNotFound),
		errors.Is(err, startuperrors.ErrAdopterNotFound):
		writeStartupError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, startuperrors.ErrNotStartupOwner),
		errors.Is(err, startuperrors.ErrNotFounder):
		writeStartupError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, startuperrors.ErrStoreTimeout):
		s.logStoreFault(r, "http_startup_store_timeout", err)
		writeStartupError(w, http.StatusGatewayTimeout, "store_timeout", "store did not respond in time")
	default:
		s.logStoreFault(r, "http_startup_internal_error", err)
		writeStartupError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeStartupError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, startuphttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
