// Package rest exposes the statistics service over HTTP.
package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fortuna/pallas/internal/cache"
	"github.com/fortuna/pallas/internal/service"
	"github.com/gorilla/mux"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server. The response cache is optional;
// pass nil to compute every response on demand.
func NewServer(port string, stats *service.StatsService, responses *cache.ResponseCache) *Server {
	handler := NewHandler(stats, responses)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Clean sheets and scores
	api.HandleFunc("/team-clean-sheets", handler.GetTeamCleanSheets).Methods("GET")
	api.HandleFunc("/top-correct-scores", handler.GetTopCorrectScores).Methods("GET")
	api.HandleFunc("/player-clean-sheets", handler.GetPlayerCleanSheets).Methods("GET")

	// Combined player projections
	api.HandleFunc("/matches/player-stats", handler.GetMatchPlayerStats).Methods("GET")

	// Reference data
	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")
	api.HandleFunc("/fixtures", handler.GetFixtures).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
