// Package http implements the HTTP transport shell of the books API. It
// builds the router from the module registry and applies the cross-cutting
// middleware (panic recovery, trace-id propagation, request logging, and
// API-key authentication) before requests reach a resource module.
package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/smoretta/books-api/internal/config"
	"github.com/smoretta/books-api/internal/logger"
	"github.com/smoretta/books-api/internal/modules"
)

type Handler struct {
	apiKey string

	logger *logger.Logger
}

func NewHandler(cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		apiKey: cfg.APIKey,
		logger: logger,
	}
}

// Init assembles the router. Public modules (the status page) are mounted
// as-is; every protected module sits behind the API-key middleware.
func (h *Handler) Init(reg *modules.Registry) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		for _, m := range reg.Public() {
			m.RegisterRoutes(r)
		}
	})

	router.Group(func(r chi.Router) {
		r.Use(h.withAPIKeyAuth)
		for _, m := range reg.Protected() {
			m.RegisterRoutes(r)
		}
	})

	return router
}
