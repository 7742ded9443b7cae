package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/simaogato/investments-backend/internal/logger"
	"github.com/simaogato/investments-backend/internal/usecase/portfolio"
)

// RouterConfig holds the HTTP-facing settings
type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter wires middleware and the /investments routes
func NewRouter(service *portfolio.PortfolioService, log *logrus.Logger, cfg RouterConfig) http.Handler {
	handler := NewHandler(service)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-Id"},
	}).Handler)

	r.Get("/healthz", Healthcheck)

	r.Route("/investments", func(r chi.Router) {
		r.Post("/", handler.CreateHolding)
		r.Get("/", handler.ListHoldings)
		r.Get("/summary", handler.GetSummary)
		r.Get("/{id}", handler.GetHolding)
		r.Put("/{id}", handler.UpdateHolding)
		r.Delete("/{id}", handler.DeleteHolding)
	})

	return r
}

// requestLogger attaches a request-scoped logrus entry and logs each completed request
func requestLogger(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			entry := log.WithFields(logrus.Fields{
				"request_id": middleware.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
			})

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(logger.WithLogger(r.Context(), entry)))

			entry.WithFields(logrus.Fields{
				"status":   ww.Status(),
				"bytes":    ww.BytesWritten(),
				"duration": time.Since(start).String(),
			}).Info("request completed")
		})
	}
}
