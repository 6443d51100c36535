// README: Base handler utilities (JSON helpers, pipeline error mapping).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripgen/internal/trip"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string, details any) {
	writeJSON(c, status, errorResponse{Error: msg, Details: details})
}

// writeGenerationError maps the pipeline error taxonomy onto HTTP statuses.
// Validation findings go back to the client; provider payloads and internal
// detail stay in the logs.
func writeGenerationError(c *gin.Context, genErr *trip.GenerationError) {
	switch genErr.Kind {
	case trip.KindRequestInvalid:
		writeError(c, http.StatusBadRequest, string(genErr.Kind), genErr.Details)
	case trip.KindAllProvidersExhausted:
		status := http.StatusServiceUnavailable
		if genErr.Reason == trip.ReasonRateLimit {
			status = http.StatusTooManyRequests
		}
		writeError(c, status, string(genErr.Kind), "itinerary generation is temporarily unavailable, please retry later")
	case trip.KindMalformedOutput, trip.KindSchemaViolation:
		writeError(c, http.StatusInternalServerError, string(genErr.Kind), "the generated itinerary could not be validated")
	default:
		writeError(c, http.StatusInternalServerError, string(genErr.Kind), nil)
	}
}
