package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anonbbs-dev/anonbbs/internal/middleware"
	"github.com/anonbbs-dev/anonbbs/internal/middleware/metrics"
	"github.com/anonbbs-dev/anonbbs/internal/setup"
)

// New builds the HTTP routing tree. Everything under /v1 runs behind the
// session middleware, so every request carries an identity; /v1/admin
// additionally requires basic auth credentials from the private config.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestId)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	cfg := deps.Config

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Public.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// JSON API only, nothing should ever execute in a browser context
	apiCSP := "default-src 'none'; frame-ancestors 'none'"
	r.Use(middleware.SecurityHeaders(cfg.Public.SecureCookies, apiCSP))

	h := deps.Handler

	// probes and metrics stay outside the session middleware so they never
	// touch the users table
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Route("/v1", func(v1 chi.Router) {
		v1.Use(deps.Session.Handler)

		v1.Get("/boards", h.GetBoards)
		v1.Get("/boards/{board}", h.GetBoard)
		v1.Post("/boards/{board}/threads", h.CreateThread)
		v1.Get("/threads/{thread}", h.GetThread)
		v1.Post("/threads/{thread}/posts", h.CreatePost)

		v1.Get("/me", h.GetProfile)
		v1.Put("/me/nickname", h.UpdateNickname)
		v1.Post("/session", h.NewSession)

		v1.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.AdminOnly(cfg.Private.AdminUser, cfg.Private.AdminPasswordHash))
			admin.Post("/boards", h.CreateBoard)
			admin.Patch("/boards/{board}", h.UpdateBoard)
		})
	})

	return r
}
