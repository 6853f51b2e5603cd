package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/auric/goldvault/internal/adapter/http/handler"
	"github.com/auric/goldvault/internal/adapter/http/middleware"
	"github.com/auric/goldvault/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	BranchHandler    *handler.BranchHandler
	HoldingHandler   *handler.HoldingHandler
	HistoryHandler   *handler.HistoryHandler
	PhysicalHandler  *handler.PhysicalHandler
	PaymentHandler   *handler.PaymentHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Vendor branches
		r.Route("/branches", func(r chi.Router) {
			r.Post("/", cfg.BranchHandler.Create)
			r.Get("/", cfg.BranchHandler.List)
			r.Post("/transfer", cfg.BranchHandler.Transfer)
			r.Get("/{id}", cfg.BranchHandler.Get)
			r.Put("/{id}", cfg.BranchHandler.Update)
			r.Get("/{id}/transactions", cfg.BranchHandler.ListTransactions)
			r.Get("/{id}/physical", cfg.PhysicalHandler.ListByBranch)
		})

		// Virtual gold holdings
		r.Route("/holdings", func(r chi.Router) {
			r.Post("/", cfg.HoldingHandler.Create)
			r.Get("/", cfg.HoldingHandler.List)
			r.Get("/{id}", cfg.HoldingHandler.Get)
			r.Put("/{id}", cfg.HoldingHandler.Update)
			r.Post("/{id}/convert", cfg.HoldingHandler.Convert)
		})

		// Transaction history
		r.Get("/transactions", cfg.HistoryHandler.List)

		// Physical gold transactions
		r.Get("/physical/{id}", cfg.PhysicalHandler.Get)

		// Payments
		r.Route("/payments", func(r chi.Router) {
			r.Post("/", cfg.PaymentHandler.Create)
			r.Get("/", cfg.PaymentHandler.List)
			r.Get("/{id}", cfg.PaymentHandler.Get)
		})

		// Per-user views
		r.Route("/users/{id}", func(r chi.Router) {
			r.Get("/holdings", cfg.HoldingHandler.ListByUser)
			r.Get("/transactions", cfg.HistoryHandler.ListByUser)
			r.Get("/physical", cfg.PhysicalHandler.ListByUser)
			r.Get("/payments", cfg.PaymentHandler.ListByUser)
		})
	})

	return r
}
