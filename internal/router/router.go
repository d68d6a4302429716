package router

import (
	"net/http"
	"time"

	middleware2 "github.com/gavinflud/lists/pkg/middleware"

	"github.com/gavinflud/lists/internal/handler"
	"github.com/gavinflud/lists/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	roleHandler *handler.RoleHandler,
	teamHandler *handler.TeamHandler,
	healthHandler *handler.HealthHandler,
	authService middleware.AuthService,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware2.LoggingMiddleware)
	r.Use(chimiddleware.Timeout(15 * time.Second))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Public endpoints
	r.Head("/health", healthHandler.Health)
	r.Post("/api/authenticate", authHandler.Authenticate)
	r.Post("/api/authenticate/refresh", authHandler.Refresh)

	// Protected endpoints (require JWT authentication)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(authService))

		// User endpoints (owner-or-admin enforced in the service)
		r.Get("/api/users/{id}", userHandler.GetUser)
		r.Put("/api/users/{id}", userHandler.UpdateUser)
		r.Delete("/api/users/{id}", userHandler.RetireUser)
		r.Get("/api/users/{id}/teams", userHandler.GetUserTeams)

		// Role endpoints
		r.Get("/api/roles", roleHandler.ListRoles)
		r.Get("/api/roles/{code}", roleHandler.GetRole)

		// Team endpoints
		r.Post("/api/teams", teamHandler.CreateTeam)
		r.Get("/api/teams/{name}", teamHandler.GetTeam)
		r.Post("/api/teams/{name}/members", teamHandler.AddTeamMember)
		r.Delete("/api/teams/{name}/members/{id}", teamHandler.RemoveTeamMember)
	})

	// Admin-only endpoints (require JWT + administrator role)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(authService))
		r.Use(middleware.AdminMiddleware())

		r.Get("/api/users", userHandler.ListUsers)
		r.Post("/api/users", userHandler.CreateUser)

		r.Post("/api/roles", roleHandler.CreateRole)
		r.Put("/api/roles/{code}", roleHandler.UpdateRole)
		r.Delete("/api/roles/{code}", roleHandler.RetireRole)

		r.Get("/api/teams", teamHandler.ListTeams)
		r.Put("/api/teams/{name}", teamHandler.RenameTeam)
		r.Delete("/api/teams/{name}", teamHandler.RetireTeam)
	})

	return r
}
