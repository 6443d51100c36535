package trip

import "fmt"

// ErrorKind is the machine-checkable error taxonomy surfaced to clients.
type ErrorKind string

const (
	KindRequestInvalid ErrorKind = "request_invalid"
	// KindProviderFailed is a fatally-classified provider failure; no
	// fallback is attempted. Retryable single-call failures never surface a
	// kind of their own: they are swallowed by a successful fallback or
	// escalate to KindAllProvidersExhausted.
	KindProviderFailed        ErrorKind = "provider_error"
	KindAllProvidersExhausted ErrorKind = "all_providers_exhausted"
	KindMalformedOutput       ErrorKind = "malformed_provider_output"
	KindSchemaViolation       ErrorKind = "schema_violation"
)

// GenerationError is the single normalized failure shape the pipeline
// surfaces. Detail is for logs; handlers decide what reaches the client, and
// provider-specific payloads never do.
type GenerationError struct {
	Kind              ErrorKind
	Provider          string
	Detail            string
	Details           []string // validation findings, or auxiliary failure context
	Reason            FailureReason
	FallbackAttempted bool
}

func (e *GenerationError) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("%s (%s): %s", e.Kind, e.Provider, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}
