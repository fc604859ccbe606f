package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/ArmFinder/internal/catalog"
	"github.com/MikeSquared-Agency/ArmFinder/internal/config"
	"github.com/MikeSquared-Agency/ArmFinder/internal/hermes"
	"github.com/MikeSquared-Agency/ArmFinder/internal/matching"
	"github.com/MikeSquared-Agency/ArmFinder/internal/money"
	"github.com/MikeSquared-Agency/ArmFinder/internal/store"
)

func NewRouter(c *catalog.Catalog, m *matching.Matcher, s store.Store, h hermes.Client, f *money.Formatter, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(cfg.Server.RateLimitPerMinute))

	arms := NewArmsHandler(c, f)
	matches := NewMatchesHandler(c, m, s, h, f, logger)
	admin := NewAdminHandler(s)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/arms", arms.List)
		r.Get("/arms/{id}", arms.Get)

		r.Get("/questionnaire", Questionnaire)

		r.Post("/matches", matches.Create)
		r.Post("/matches/explain", matches.Explain)
		r.Get("/matches/{id}", matches.Get)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.Server.AdminToken))
			r.Get("/stats", admin.Stats)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
