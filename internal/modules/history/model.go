// README: Persisted trip generation records.
package history

import (
	"time"

	"github.com/google/uuid"

	"tripgen/internal/types"
)

// TripRecord is one persisted generation outcome, request and result both
// kept verbatim as JSON.
type TripRecord struct {
	ID           uuid.UUID              `json:"id"`
	Destination  string                 `json:"destination"`
	DurationDays int                    `json:"durationDays"`
	TotalCostUSD float64                `json:"totalCostUSD"`
	Request      types.TripRequest      `json:"request"`
	Result       types.GenerationResult `json:"result"`
	CreatedAt    time.Time              `json:"createdAt"`
}

// TripSummary is the listing projection, without the payloads.
type TripSummary struct {
	ID           uuid.UUID `json:"id"`
	Destination  string    `json:"destination"`
	DurationDays int       `json:"durationDays"`
	TotalCostUSD float64   `json:"totalCostUSD"`
	CreatedAt    time.Time `json:"createdAt"`
}
