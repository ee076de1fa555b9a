package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Lixing-Zhang/kart-storefront/internal/middleware"
)

// RouterConfig carries the handlers and settings the API router is built from
type RouterConfig struct {
	Logger         *slog.Logger
	Health         *HealthHandler
	Products       *ProductHandler
	Orders         *OrderHandler
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter wires middleware and routes
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", cfg.Health.ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/product", cfg.Products.ListProducts)
		r.Get("/product/{productId}", cfg.Products.GetProduct)
		r.Get("/category", cfg.Products.ListCategories)

		r.Post("/order", cfg.Orders.CreateOrder)
	})

	return r
}
