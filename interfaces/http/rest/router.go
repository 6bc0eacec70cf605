package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	commandbus "github.com/oorlinsky/conceptual-server-graph/application/commands/bus"
	querybus "github.com/oorlinsky/conceptual-server-graph/application/queries/bus"
	"github.com/oorlinsky/conceptual-server-graph/infrastructure/config"
	"github.com/oorlinsky/conceptual-server-graph/interfaces/http/rest/handlers"
	"github.com/oorlinsky/conceptual-server-graph/interfaces/http/rest/middleware"
	"github.com/oorlinsky/conceptual-server-graph/pkg/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg        *config.Config
	commandBus *commandbus.CommandBus
	queryBus   *querybus.QueryBus
	metrics    *observability.Collector
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *commandbus.CommandBus,
	queryBus *querybus.QueryBus,
	metrics *observability.Collector,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:        cfg,
		commandBus: commandBus,
		queryBus:   queryBus,
		metrics:    metrics,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.EnableMetrics {
		router.Use(middleware.Metrics(rt.metrics))
	}

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	if rt.cfg.EnableMetrics {
		router.Handle("/metrics", rt.metrics.Handler())
	}

	// Translation endpoints
	termHandler := handlers.NewTermHandler(rt.commandBus, rt.cfg.BaseURI, rt.logger)
	router.Post("/insert-term", termHandler.InsertTerm)

	graphHandler := handlers.NewGraphHandler(rt.queryBus, rt.logger)
	router.Get("/graph", graphHandler.GetGraph)

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	// The store is queried lazily per request, so readiness does not
	// gate on it.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
