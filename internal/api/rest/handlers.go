package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/fortuna/pallas/internal/cache"
	"github.com/fortuna/pallas/internal/service"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	stats     *service.StatsService
	responses *cache.ResponseCache
}

// NewHandler creates a new handler
func NewHandler(stats *service.StatsService, responses *cache.ResponseCache) *Handler {
	return &Handler{stats: stats, responses: responses}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"status":  "healthy",
		"service": "pallas",
		"version": "1.0.0",
	}
	if h.responses != nil {
		if err := h.responses.HealthCheck(r.Context()); err != nil {
			status["cache"] = "unavailable"
		} else {
			status["cache"] = "ok"
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}

// GetTeamCleanSheets returns each team's clean-sheet percentage per match
func (h *Handler) GetTeamCleanSheets(w http.ResponseWriter, r *http.Request) {
	var cached []service.TeamCleanSheetRow
	if h.cachedResponse(r.Context(), "pallas:team-clean-sheets", &cached) {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	rows, err := h.stats.TeamCleanSheets()
	if err != nil {
		respondServiceError(w, "Failed to calculate team clean sheets", err)
		return
	}

	h.storeResponse(r.Context(), "pallas:team-clean-sheets", rows)
	respondJSON(w, http.StatusOK, rows)
}

// GetTopCorrectScores returns the most likely scorelines per match
func (h *Handler) GetTopCorrectScores(w http.ResponseWriter, r *http.Request) {
	var cached []service.MatchTopScores
	if h.cachedResponse(r.Context(), "pallas:top-correct-scores", &cached) {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	results, err := h.stats.TopCorrectScores()
	if err != nil {
		respondServiceError(w, "Failed to calculate top correct scores", err)
		return
	}

	h.storeResponse(r.Context(), "pallas:top-correct-scores", results)
	respondJSON(w, http.StatusOK, results)
}

// GetPlayerCleanSheets returns defensive players with their side's
// clean-sheet chance
func (h *Handler) GetPlayerCleanSheets(w http.ResponseWriter, r *http.Request) {
	var cached []service.MatchPlayerCleanSheets
	if h.cachedResponse(r.Context(), "pallas:player-clean-sheets", &cached) {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	results, err := h.stats.PlayerCleanSheets()
	if err != nil {
		respondServiceError(w, "Failed to calculate player clean sheets", err)
		return
	}

	h.storeResponse(r.Context(), "pallas:player-clean-sheets", results)
	respondJSON(w, http.StatusOK, results)
}

// GetMatchPlayerStats returns the combined per-player projections for every
// fixture
func (h *Handler) GetMatchPlayerStats(w http.ResponseWriter, r *http.Request) {
	var cached []service.MatchCombinedStats
	if h.cachedResponse(r.Context(), "pallas:match-player-stats", &cached) {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	results, err := h.stats.MatchPlayerStats()
	if err != nil {
		respondServiceError(w, "Failed to calculate match player stats", err)
		return
	}

	h.storeResponse(r.Context(), "pallas:match-player-stats", results)
	respondJSON(w, http.StatusOK, results)
}

// GetTeams returns the canonical team directory
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.stats.Teams())
}

// GetFixtures returns the resolved fixture list in kickoff order
func (h *Handler) GetFixtures(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.stats.Fixtures())
}

// cachedResponse loads a cached payload when a cache is configured. Cache
// failures are logged and treated as misses.
func (h *Handler) cachedResponse(ctx context.Context, key string, dest interface{}) bool {
	if h.responses == nil {
		return false
	}
	hit, err := h.responses.GetJSON(ctx, key, dest)
	if err != nil {
		log.Printf("⚠️  Cache read failed for %s: %v", key, err)
		return false
	}
	return hit
}

// storeResponse writes a payload to the cache when one is configured.
func (h *Handler) storeResponse(ctx context.Context, key string, value interface{}) {
	if h.responses == nil {
		return
	}
	if err := h.responses.SetJSON(ctx, key, value); err != nil {
		log.Printf("⚠️  Cache write failed for %s: %v", key, err)
	}
}

// respondServiceError maps service errors to HTTP status codes: unavailable
// sources are 503, empty results 404, anything else 500.
func respondServiceError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, service.ErrSourceUnavailable):
		respondError(w, http.StatusServiceUnavailable, message, err)
	case errors.Is(err, service.ErrNoResults):
		respondError(w, http.StatusNotFound, message, err)
	default:
		respondError(w, http.StatusInternalServerError, message, err)
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
