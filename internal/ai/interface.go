package ai

import (
	"context"
	"fmt"
)

// Provider is the capability the orchestrator depends on. Each vendor client
// implements it so the pipeline never touches vendor specifics.
type Provider interface {
	// Name identifies the vendor in errors, logs and metrics.
	Name() string

	// Complete sends the prompt and returns the model's raw text output.
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// ProviderError is a vendor failure with the transport status preserved, so
// callers can classify it without parsing vendor-specific payloads.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}
