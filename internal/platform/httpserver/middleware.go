package httpserver

import (
	"net/http"

	accounthttp "launchpad/contexts/identity-access/account-service/transport/http"
	"launchpad/internal/platform/session"
)

// authenticate resolves the session cookie into a principal. It never reads
// the store; a missing or invalid token is always 401.
func (s *Server) authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := session.ReadCookie(r)
		if token == "" {
			writeSessionError(w, http.StatusUnauthorized, "unauthenticated", "authentication required")
			return
		}
		principal, err := s.tokens.Verify(token)
		if err != nil {
			s.logger.Debug("session token rejected",
				"event", "http_session_token_rejected",
				"module", "internal/platform/httpserver",
				"layer", "platform",
				"path", r.URL.Path,
			)
			writeSessionError(w, http.StatusUnauthorized, "unauthenticated", "invalid or expired session")
			return
		}
		next(w, r.WithContext(session.WithPrincipal(r.Context(), principal)))
	}
}

// requireRole must run after authenticate.
func (s *Server) requireRole(role session.Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := session.PrincipalFromContext(r.Context())
		if !ok {
			writeSessionError(w, http.StatusUnauthorized, "unauthenticated", "authentication required")
			return
		}
		if principal.Role != role {
			s.logger.Info("role guard rejected request",
				"event", "http_role_guard_rejected",
				"module", "internal/platform/httpserver",
				"layer", "platform",
				"user_id", principal.UserID,
				"role", string(principal.Role),
				"required_role", string(role),
				"path", r.URL.Path,
			)
			writeSessionError(w, http.StatusForbidden, "forbidden", "access denied for role "+string(principal.Role))
			return
		}
		next(w, r)
	}
}

func writeSessionError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, accounthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
