package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dailygrid/dailygrid/internal/api/apierr"
	"github.com/dailygrid/dailygrid/internal/api/handler"
	"github.com/dailygrid/dailygrid/internal/api/middleware"
	"github.com/dailygrid/dailygrid/internal/dependencies/clock"
	"github.com/dailygrid/dailygrid/internal/game"
	"github.com/dailygrid/dailygrid/internal/model"
	"github.com/dailygrid/dailygrid/internal/services/calendar"
	"github.com/dailygrid/dailygrid/internal/services/ingest"
	"github.com/dailygrid/dailygrid/internal/services/stats"
	"github.com/dailygrid/dailygrid/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	IngestController *ingest.Controller
	StatsService     *stats.Service
	CalendarService  *calendar.Service
	Storage          storage.Store
	Directory        model.MemberDirectory
	Puzzle           game.PuzzleType
	Clock            clock.Clock
	Location         *time.Location
	TransportLimit   int
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	ingestHandler := handler.NewIngestHandler(cfg.IngestController, cfg.Directory)
	statsHandler := handler.NewStatsHandler(
		cfg.StatsService, cfg.CalendarService, cfg.Puzzle,
		cfg.Clock, cfg.Location, cfg.TransportLimit,
	)
	playerHandler := handler.NewPlayerHandler(cfg.Storage)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger, func(w http.ResponseWriter, r *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Ingestion routes
	api.HandleFunc("/messages", ingestHandler.Message).Methods(http.MethodPost)
	api.HandleFunc("/catchup", ingestHandler.Catchup).Methods(http.MethodPost)

	// Stats and calendar routes
	api.HandleFunc("/stats", statsHandler.Stats).Methods(http.MethodGet)
	api.HandleFunc("/calendar", statsHandler.Calendar).Methods(http.MethodGet)

	// Player routes
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/{playerId}", playerHandler.Get).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Prometheus metrics, outside the API prefix and its middleware
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
