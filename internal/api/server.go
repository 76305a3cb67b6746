// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

/*
Package api wires together the HTTP router, middleware chain, and all
handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

Route layout:

	/health, /ready                      public probes
	/api/v1/auth/login                   public
	/api/v1/auth/me                      authenticated
	/api/v1/settings/users...            authenticated + settings grants
	/api/v1/<resource>...                authenticated + module grants
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/freightdeskhq/freightdesk/internal/document"
	"github.com/freightdeskhq/freightdesk/internal/identity"
	"github.com/freightdeskhq/freightdesk/internal/platform/config"
	"github.com/freightdeskhq/freightdesk/internal/platform/constants"
	"github.com/freightdeskhq/freightdesk/internal/platform/middleware"
	"github.com/freightdeskhq/freightdesk/internal/platform/respond"
	"github.com/freightdeskhq/freightdesk/internal/resource"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups every HTTP handler set the server mounts.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Identity handles login, the current-identity endpoint, and user management.
	Identity *identity.Handler

	// Document is the generic controller parameterized by the resource table.
	Document *document.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// Authentication is applied per group, not globally: the health probes and
// the login route stay reachable without a credential.
func NewServer(
	ctx context.Context,
	cfg *config.Config,
	log *slog.Logger,
	responder *respond.Responder,
	verifier middleware.TokenVerifier,
	identities middleware.IdentityStore,
	h Handlers,
) (*Server, error) {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	var mountErr error
	r.Route("/api/v1", func(api chi.Router) {
		api.Post("/auth/login", h.Identity.Login)

		api.Group(func(protected chi.Router) {
			protected.Use(middleware.Authenticate(verifier, identities, responder))

			protected.Get("/auth/me", h.Identity.Me)

			protected.Route("/settings/users", func(users chi.Router) {
				users.With(middleware.RequirePermission(responder, constants.ModuleSettings, constants.ActionRead)).
					Get("/", h.Identity.ListUsers)
				users.With(middleware.RequirePermission(responder, constants.ModuleSettings, constants.ActionCreate)).
					Post("/", h.Identity.CreateUser)
				users.With(middleware.RequirePermission(responder, constants.ModuleSettings, constants.ActionUpdate)).
					Put("/{id}", h.Identity.UpdateUser)
			})

			mountErr = resource.Mount(protected, responder, h.Document, resource.Definitions)
		})
	})
	if mountErr != nil {
		return nil, mountErr
	}

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}, nil
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
