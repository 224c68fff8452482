package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/mina-p1/Open-Bet/internal/auth"
	"github.com/mina-p1/Open-Bet/internal/cache"
	"github.com/mina-p1/Open-Bet/internal/db"
	"github.com/mina-p1/Open-Bet/pkg/models"
)

// SnapshotReader is the slice of the snapshot cache the handlers need
type SnapshotReader interface {
	ReadOdds(ctx context.Context) (*cache.OddsSnapshot, error)
	ReadProps(ctx context.Context) (*cache.PropsSnapshot, error)
	Ping(ctx context.Context) error
}

// TokenVerifier validates Google ID tokens
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*auth.Claims, error)
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	store     db.Store
	snapshots SnapshotReader
	verifier  TokenVerifier
	bankroll  float64
}

// NewHandler creates a new handler with dependencies
func NewHandler(store db.Store, snapshots SnapshotReader, verifier TokenVerifier, bankroll float64) *Handler {
	return &Handler{
		store:     store,
		snapshots: snapshots,
		verifier:  verifier,
		bankroll:  bankroll,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		respondError(w, http.StatusServiceUnavailable, "database unhealthy", err)
		return
	}

	if err := h.snapshots.Ping(ctx); err != nil {
		respondError(w, http.StatusServiceUnavailable, "cache unhealthy", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "openbet-api",
	})
}

// Helper functions

func parseIntParam(r *http.Request, param string, defaultValue int) int {
	valueStr := r.URL.Query().Get(param)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Printf("error encoding response: %v\n", err)
	}
}

// respondError writes the {"error": message} body every endpoint uses.
// The underlying error is logged, never sent to the client.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		fmt.Printf("error: %s - %v\n", message, err)
	}

	respondJSON(w, status, models.ErrorResponse{Error: message})
}
