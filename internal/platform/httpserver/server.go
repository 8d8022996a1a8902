package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	accountservice "launchpad/contexts/identity-access/account-service"
	startupservice "launchpad/contexts/startup-marketplace/startup-service"
	"launchpad/internal/platform/session"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "launchpad/internal/platform/httpserver/docs"
)

const (
	maxBodyBytes      = 1 << 20
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// @title launchpad API
// @version 1.0
// @description Founder and adopter marketplace with cookie sessions.
// @BasePath /
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token
type Server struct {
	mux           *http.ServeMux
	logger        *slog.Logger
	addr          string
	accounts      accountservice.Module
	startups      startupservice.Module
	tokens        *session.TokenService
	secureCookies bool
}

// New wires routes for both modules. secureCookies marks the session cookie
// Secure and is enabled in production.
func New(
	accounts accountservice.Module,
	startups startupservice.Module,
	tokens *session.TokenService,
	logger *slog.Logger,
	addr string,
	secureCookies bool,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		accounts:      accounts,
		startups:      startups,
		tokens:        tokens,
		secureCookies: secureCookies,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("http server stopping",
		"event", "http_server_stopping",
		"module", "internal/platform/httpserver",
		"layer", "platform",
	)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	s.mux.HandleFunc("POST /users/signup", s.handleSignup)
	s.mux.HandleFunc("POST /users/login", s.handleLogin)
	s.mux.HandleFunc("POST /users/logout", s.handleLogout)
	s.mux.HandleFunc("GET /users/profile", s.authenticate(s.handleProfile))
	s.mux.HandleFunc("PUT /users/interests", s.authenticate(s.requireRole(session.RoleAdopter, s.handleUpdateInterests)))

	s.mux.HandleFunc("POST /startups", s.authenticate(s.requireRole(session.RoleFounder, s.handleCreateStartup)))
	s.mux.HandleFunc("GET /startups", s.authenticate(s.requireRole(session.RoleAdopter, s.handleFeed)))
	s.mux.HandleFunc("GET /startups/{startup_id}/feedback", s.authenticate(s.requireRole(session.RoleFounder, s.handleListFeedback)))
	s.mux.HandleFunc("POST /startups/{startup_id}/feedback", s.authenticate(s.requireRole(session.RoleAdopter, s.handleSubmitFeedback)))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeJSON reads a bounded JSON body into target.
func decodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	decoder := json.NewDecoder(body)
	if err := decoder.Decode(target); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
