package handlers

import (
	"net/http"
	"time"

	"github.com/camden-git/trainingbackend/repository"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

const defaultRequestTimeout = 60 * time.Second

type RouterDeps struct {
	Athletes repository.AthleteRepositoryInterface
	Sessions repository.TrainingSessionRepositoryInterface
	DB       Pinger

	// Registry receives the request metrics and backs /metrics.
	Registry *prometheus.Registry

	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter wires the JSON API, the health probe and the metrics endpoint.
func NewRouter(deps RouterDeps) (http.Handler, error) {
	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}
	metrics, err := NewMetricsMiddleware(deps.Registry)
	if err != nil {
		return nil, err
	}

	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(corsHandler.Handler)
	r.Use(metrics.Handler)

	athleteHandler := NewAthleteHandler(deps.Athletes)
	sessionHandler := NewTrainingSessionHandler(deps.Sessions)

	r.Route("/api", func(r chi.Router) {
		r.Get("/athletes", athleteHandler.ListAthletes)
		r.Post("/athletes", athleteHandler.CreateAthlete)
		r.Get("/athletes/{full_name}/sessions", athleteHandler.GetAthleteSessions)
		r.Delete("/athletes/{full_name}", athleteHandler.DeleteAthlete)

		r.Get("/sessions", sessionHandler.ListSessions)
		r.Post("/sessions", sessionHandler.CreateSession)
		r.Delete("/sessions", sessionHandler.DeleteSession)
	})

	r.Get("/healthz", HealthCheck(deps.DB))
	r.Handle(metricsPath, promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{Registry: deps.Registry}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteAPIError(w, http.StatusNotFound, CodeNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteAPIError(w, http.StatusMethodNotAllowed, CodeInvalidRequest, "Method not allowed")
	})

	return r, nil
}
