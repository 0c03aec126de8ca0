package server

import (
	"context"
	"net/http"
	"time"

	"github.com/novamint/rewards-be/internal/auth"
	"github.com/novamint/rewards-be/internal/config"
	"github.com/novamint/rewards-be/internal/http/handlers"
	"github.com/novamint/rewards-be/internal/middleware"
	"github.com/novamint/rewards-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.UserStore) *Server {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	mux := http.NewServeMux()
	Routes(mux, store, tokens, hasher)

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

// Routes attaches every endpoint to the mux. Protected routes pass through the
// authentication gate; the admin listing additionally passes the role gate.
func Routes(mux *http.ServeMux, store storage.UserStore, tokens *auth.TokenManager, hasher *auth.PasswordHasher) {
	authHandler := handlers.NewAuthHandler(store, tokens, hasher)
	usersHandler := handlers.NewUsersHandler(store)
	rewardsHandler := handlers.NewRewardsHandler(store)
	healthHandler := handlers.NewHealthHandler(time.Now())

	mux.HandleFunc("/health", healthHandler.Handle)
	mux.HandleFunc("/api/register", authHandler.HandleRegister)
	mux.HandleFunc("/api/login", authHandler.HandleLogin)

	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.Authenticate(tokens, h)
	}
	mux.Handle("/api/users", protected(usersHandler.HandleList))
	mux.Handle("/api/buy-tokens", protected(rewardsHandler.HandleBuyTokens))
	mux.Handle("/api/add-points", protected(rewardsHandler.HandleAddPoints))
	mux.Handle("/api/admin/users", middleware.Authenticate(tokens, middleware.RequireAdmin(http.HandlerFunc(usersHandler.HandleList))))
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
