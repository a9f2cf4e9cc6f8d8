package rest

import (
	"log/slog"

	"github.com/frahmantamala/hr-mock/internal"
	"github.com/frahmantamala/hr-mock/internal/auth"
	"github.com/frahmantamala/hr-mock/internal/transport"
	"github.com/frahmantamala/hr-mock/internal/transport/middleware"
	"github.com/frahmantamala/hr-mock/internal/user"
	"github.com/frahmantamala/hr-mock/internal/user/memory"
	"github.com/go-chi/chi"
)

type RouteDeps struct {
	UsersPath   string
	AuthHandler *auth.Handler
	UserHandler *user.Handler
	Logger      *slog.Logger
}

// NewRouter wires the mock against the built-in user table.
func NewRouter(cfg internal.MockConfig, logger *slog.Logger) *chi.Mux {
	baseHandler := transport.NewBaseHandler(logger)

	userService := user.NewService(memory.NewUserRepository(), baseHandler.Logger)

	router := chi.NewRouter()
	RegisterAllRoutes(router, RouteDeps{
		UsersPath:   cfg.UsersPath(),
		AuthHandler: auth.NewHandler(baseHandler, auth.Credentials{Username: cfg.Username, Password: cfg.Password}),
		UserHandler: user.NewHandler(baseHandler, userService),
		Logger:      baseHandler.Logger,
	})
	return router
}

func RegisterAllRoutes(router *chi.Mux, deps RouteDeps) {
	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(deps.Logger))
	router.Use(middleware.RecoveryMiddleware(deps.Logger))

	// Protected routes that require basic authentication
	router.Group(func(pr chi.Router) {
		pr.Use(deps.AuthHandler.BasicAuthMiddleware)

		pr.Get(deps.UsersPath, deps.UserHandler.GetUsers) // GET /{company}/v1/meta/users/
	})
}
