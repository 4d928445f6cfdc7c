package server

import (
	"context"
	"net/http"
	"time"

	"github.com/campuskit/campus-auth/internal/auth"
	"github.com/campuskit/campus-auth/internal/config"
	"github.com/campuskit/campus-auth/internal/http/handlers"
	"github.com/campuskit/campus-auth/internal/middleware"
	"github.com/campuskit/campus-auth/internal/notify"
	"github.com/campuskit/campus-auth/internal/resetcode"
	"github.com/campuskit/campus-auth/internal/service"
	"github.com/campuskit/campus-auth/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires middleware, routes, and the auth service, and returns a ready server.
func New(cfg config.Config, store storage.Store, sms notify.Sender) *Server {
	mux := http.NewServeMux()

	health := handlers.NewHealthHandler(time.Now())
	health.Register(mux)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	codes := resetcode.New(store, cfg.ResetCodeTTL)
	svc := service.NewAuthService(store, codes, tokens, sms)

	handlers.NewAuthHandler(svc).Register(mux)
	handlers.NewMeHandler(tokens).Register(mux)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
