package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Jathavedas/memento-backend/internal/service"
	"github.com/Jathavedas/memento-backend/pkg/health"
	"github.com/Jathavedas/memento-backend/pkg/middleware"
)

// RouterConfig holds the HTTP surface configuration.
type RouterConfig struct {
	AllowedOrigin  string
	MaxUploadBytes int64
}

// NewRouter creates a chi router with all catalog routes registered.
func NewRouter(
	productService *service.ProductService,
	relay *service.MediaRelay,
	healthHandler *health.Handler,
	cfg RouterConfig,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "PUT"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMetrics("catalog"))

	productHandler := NewProductHandler(productService, relay, cfg.MaxUploadBytes, logger)

	// Liveness string at the root, as browsers and uptime checks expect.
	r.Get("/", productHandler.Liveness)

	// Health and metrics endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Product API endpoints
	r.Route("/api", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/add_products", productHandler.CreateProduct)
		r.Get("/disp/products", productHandler.ListProducts)
		r.Get("/disp/products/{id}", productHandler.GetProduct)
		r.Put("/update_products/{id}", productHandler.UpdateProduct)
		r.Delete("/products_delete/{id}", productHandler.DeleteProduct)
	})

	return r
}
