// README: Trip generation and history handlers.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripgen/internal/modules/history"
	"tripgen/internal/trip"
	"tripgen/internal/types"
)

// Generator is the slice of the trip pipeline the handler depends on.
type Generator interface {
	Generate(ctx context.Context, req *types.TripRequest) (*types.GenerationResult, *trip.GenerationError)
}

// History is the read side of persisted trips.
type History interface {
	Recent(ctx context.Context, limit int) ([]history.TripSummary, error)
	Get(ctx context.Context, id uuid.UUID) (*history.TripRecord, error)
}

type TripHandler struct {
	generator Generator
	history   History // nil when no database is configured
	timeout   time.Duration
}

func NewTripHandler(generator Generator, hist History, timeout time.Duration) *TripHandler {
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &TripHandler{generator: generator, history: hist, timeout: timeout}
}

// Generate handles POST /api/trips/generate.
func (h *TripHandler) Generate(c *gin.Context) {
	var req types.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "request_invalid", "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	result, genErr := h.generator.Generate(ctx, &req)
	if genErr != nil {
		writeGenerationError(c, genErr)
		return
	}
	writeJSON(c, http.StatusOK, result)
}

// Recent handles GET /api/trips.
func (h *TripHandler) Recent(c *gin.Context) {
	if h.history == nil {
		writeError(c, http.StatusNotFound, "history_disabled", nil)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	trips, err := h.history.Recent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	if trips == nil {
		trips = []history.TripSummary{}
	}
	writeJSON(c, http.StatusOK, map[string]any{"trips": trips})
}

// Get handles GET /api/trips/:id.
func (h *TripHandler) Get(c *gin.Context) {
	if h.history == nil {
		writeError(c, http.StatusNotFound, "history_disabled", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "request_invalid", "invalid trip id")
		return
	}

	rec, err := h.history.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, history.ErrNotFound):
		writeError(c, http.StatusNotFound, "not_found", nil)
	case err != nil:
		writeError(c, http.StatusInternalServerError, "internal_error", nil)
	default:
		writeJSON(c, http.StatusOK, rec)
	}
}
