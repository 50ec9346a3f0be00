// Package routes wires the HTTP surface.
package routes

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/vaughan-dsouza/marketplace/internal/docs"
	"github.com/vaughan-dsouza/marketplace/internal/handlers"
	"github.com/vaughan-dsouza/marketplace/internal/middleware"
	"github.com/vaughan-dsouza/marketplace/internal/models"
	"github.com/vaughan-dsouza/marketplace/internal/session"
)

type Options struct {
	Resolver *session.Resolver
	Logger   *slog.Logger
	// Registry receives the HTTP metrics; Gatherer serves /metrics.
	Registry prometheus.Registerer
	Gatherer prometheus.Gatherer
	Swagger  bool
}

// New builds the router. Every request passes the edge authorization gate
// before reaching a route.
func New(h *handlers.Handler, opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)
	if opts.Registry != nil {
		r.Use(middleware.NewMetrics(opts.Registry).Middleware)
	}
	r.Use(middleware.Gate(opts.Resolver, opts.Logger))

	r.Get("/health", h.Health.Check)
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}
	if opts.Swagger {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	r.Route("/api", func(r chi.Router) {
		// Public
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)
		r.Get("/payments/provider/return", h.Payments.ProviderReturn)
		r.Get("/test/s3", h.Diagnostics.TestS3)

		// Any session
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession)

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/auth/me", h.Auth.Me)
			r.Post("/upload/presign", h.Uploads.Presign)
		})

		// Buyers
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleBuyer))

			r.Get("/orders/{id}", h.Orders.GetOrder)
		})

		for _, dr := range handlers.DeprecatedItemRoutes {
			r.Method(dr.Method, strings.TrimPrefix(dr.Pattern, "/api"), http.HandlerFunc(handlers.ItemsGone))
		}
	})

	return r
}
