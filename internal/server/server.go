// Package server exposes the signature codec over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/davidjspooner/ecsig/internal/config"
	"github.com/davidjspooner/ecsig/pkg/logevent"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "requests_total",
	Help: "Total number of requests",
}, []string{"code", "method"})

var codecOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ecsig_codec_operations_total",
	Help: "Encode and decode calls by outcome",
}, []string{"operation", "result"})

type Server struct {
	config *config.Config
	logger *slog.Logger
	router chi.Router
}

func New(cfg *config.Config, logger *slog.Logger) *Server {
	s := &Server{
		config: cfg,
		logger: logger.WithGroup("server"),
	}

	r := chi.NewRouter()
	r.Use(middleware.Heartbeat("/health"))
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r.WithContext(logevent.WithLogger(r.Context(), s.logger)))
		})
	})
	r.Use(func(h http.Handler) http.Handler {
		return promhttp.InstrumentHandlerCounter(requestsTotal, h)
	})

	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/encode", s.Encode)
		r.Post("/decode", s.Decode)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errors.New("not found"))
	})
	s.router = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:        s.config.Listen,
		Handler:     s.router,
		ReadTimeout: s.config.ReadTimeoutDuration,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "address", s.config.Listen, logevent.EventAttrKey, "listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ReadTimeoutDuration)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		<-errCh
		s.logger.Info("stopped", logevent.EventAttrKey, "stopped")
		return err
	}
}
