package trip

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tripgen/internal/ai"
	"tripgen/internal/observability"
)

// Orchestrator calls the primary provider and, on a classified-retryable
// failure, makes exactly one fallback call to the secondary. The same
// provider is never retried, bounding the worst case to two sequential
// provider calls.
type Orchestrator struct {
	primary   ai.Provider
	secondary ai.Provider // nil when no fallback is configured
	log       *slog.Logger
}

func NewOrchestrator(primary, secondary ai.Provider, log *slog.Logger) *Orchestrator {
	return &Orchestrator{primary: primary, secondary: secondary, log: log}
}

// Generate returns the first non-empty completion, or a normalized error
// carrying the primary's failure as the canonical reason.
func (o *Orchestrator) Generate(ctx context.Context, prompt ai.Prompt) (string, *GenerationError) {
	text, primaryErr := o.complete(ctx, o.primary, prompt)
	if primaryErr == nil {
		return text, nil
	}

	class, reason := Classify(primaryErr)
	o.log.Warn("primary provider failed",
		slog.String("provider", o.primary.Name()),
		slog.String("reason", string(reason)),
		slog.Bool("retryable", class == ClassRetryable),
		slog.Any("err", primaryErr),
	)
	observability.ProviderFailures.WithLabelValues(o.primary.Name(), string(reason)).Inc()

	if class != ClassRetryable {
		return "", &GenerationError{
			Kind:     KindProviderFailed,
			Provider: o.primary.Name(),
			Detail:   primaryErr.Error(),
			Reason:   reason,
		}
	}

	if o.secondary == nil {
		return "", &GenerationError{
			Kind:     KindAllProvidersExhausted,
			Provider: o.primary.Name(),
			Detail:   primaryErr.Error(),
			Reason:   reason,
		}
	}

	// Single fallback hop. Instructions are restated more emphatically to
	// compensate for a model with weaker instruction-following.
	observability.Fallbacks.Inc()
	text, secondaryErr := o.complete(ctx, o.secondary, prompt.Emphasized())
	if secondaryErr == nil {
		o.log.Info("fallback provider succeeded", slog.String("provider", o.secondary.Name()))
		return text, nil
	}

	_, secondaryReason := Classify(secondaryErr)
	observability.ProviderFailures.WithLabelValues(o.secondary.Name(), string(secondaryReason)).Inc()

	// The primary is the canonical failure reason; the secondary's error is
	// preserved as auxiliary detail rather than dropped.
	return "", &GenerationError{
		Kind:              KindAllProvidersExhausted,
		Provider:          o.primary.Name(),
		Detail:            primaryErr.Error(),
		Details:           []string{fmt.Sprintf("fallback %s: %v", o.secondary.Name(), secondaryErr)},
		Reason:            reason,
		FallbackAttempted: true,
	}
}

// complete wraps one provider call, folding blank output into an error so
// classification sees it. Some providers signal overload by returning an
// empty completion instead of failing.
func (o *Orchestrator) complete(ctx context.Context, p ai.Provider, prompt ai.Prompt) (string, error) {
	observability.ProviderCalls.WithLabelValues(p.Name()).Inc()
	text, err := p.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: provider returned empty response", p.Name())
	}
	return text, nil
}
