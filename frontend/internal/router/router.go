package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/learnhouse-dev/learnhouse/frontend/internal/handler"
	"github.com/learnhouse-dev/learnhouse/frontend/internal/middleware"
	"github.com/learnhouse-dev/learnhouse/frontend/internal/setup"
	shared_middleware "github.com/learnhouse-dev/learnhouse/shared/middleware"
	"github.com/learnhouse-dev/learnhouse/shared/middleware/metrics"
)

func SetupRouter(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(shared_middleware.SecurityHeaders(deps.Public.Frontend.SecureCookies))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Public.Frontend.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", middleware.CSRFHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.GenerateCSRFToken(middleware.CSRFConfig{SecureCookies: deps.Public.Frontend.SecureCookies}))

	// Public routes
	r.Get("/health", handler.HealthHandler)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	h := deps.Handler

	// Reads go to the backend with or without a token
	r.Group(func(r chi.Router) {
		r.Use(deps.Auth.OptionalAuth())
		r.Get("/collections/{collectionUUID}", h.GetCollection)
		r.Get("/orgs/{orgID}/collections", h.GetOrgCollections)
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(deps.Auth.NeedAuth())
		r.Use(middleware.ValidateCSRFToken())
		r.Post("/collections", h.CreateCollection)
		r.Delete("/collections/{collectionUUID}", h.DeleteCollection)
		r.Put("/users/{userID}/password", h.UpdatePassword)
		r.Get("/notifications", h.GetNotifications)
	})

	return r
}
