package trip

import (
	"errors"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"

	"tripgen/internal/ai"
)

// FailureClass partitions provider failures into those worth a single
// fallback hop and those that are not.
type FailureClass int

const (
	ClassFatal FailureClass = iota
	ClassRetryable
)

// FailureReason labels why a call failed, for logs, metrics and the 429/503
// split on exhaustion.
type FailureReason string

const (
	ReasonRateLimit  FailureReason = "rate_limit"
	ReasonOverloaded FailureReason = "overloaded"
	ReasonGateway    FailureReason = "gateway_error"
	ReasonAuth       FailureReason = "auth_failure"
	ReasonTimeout    FailureReason = "timeout"
	ReasonEmpty      FailureReason = "empty_response"
	ReasonOther      FailureReason = "other"
)

// retryableStatuses maps transport status codes to reasons. Provider error
// shapes are inconsistent, so the substring rules below back this up for
// errors that only expose a string.
var retryableStatuses = map[int]FailureReason{
	http.StatusTooManyRequests:     ReasonRateLimit,
	http.StatusInternalServerError: ReasonGateway,
	http.StatusBadGateway:          ReasonGateway,
	http.StatusServiceUnavailable:  ReasonOverloaded,
	http.StatusUnauthorized:        ReasonAuth,
	http.StatusForbidden:           ReasonAuth,
	http.StatusRequestTimeout:      ReasonTimeout,
	http.StatusGatewayTimeout:      ReasonTimeout,
}

// retryableSubstrings is matched against the lowercased error text, first
// match wins.
var retryableSubstrings = []struct {
	substr string
	reason FailureReason
}{
	{"rate limit", ReasonRateLimit},
	{"ratelimit", ReasonRateLimit},
	{"too many requests", ReasonRateLimit},
	{"quota", ReasonRateLimit},
	{"resource exhausted", ReasonRateLimit},
	{"429", ReasonRateLimit},
	{"overload", ReasonOverloaded},
	{"unavailable", ReasonOverloaded},
	{"503", ReasonOverloaded},
	{"internal server error", ReasonGateway},
	{"bad gateway", ReasonGateway},
	{"500", ReasonGateway},
	{"502", ReasonGateway},
	{"unauthorized", ReasonAuth},
	{"api key", ReasonAuth},
	{"authentication", ReasonAuth},
	{"permission denied", ReasonAuth},
	{"timed out", ReasonTimeout},
	{"timeout", ReasonTimeout},
	{"deadline exceeded", ReasonTimeout},
	{"empty candidates", ReasonEmpty},
	{"empty text parts", ReasonEmpty},
	{"empty choices", ReasonEmpty},
	{"empty response", ReasonEmpty},
}

// Classify maps an observed provider failure to a class and reason. The
// structured status is consulted when the error chain carries one, then the
// lowercased message text, because some vendors only expose a string.
func Classify(err error) (FailureClass, FailureReason) {
	if err == nil {
		return ClassFatal, ReasonOther
	}
	if reason, ok := retryableStatuses[statusOf(err)]; ok {
		return ClassRetryable, reason
	}
	msg := strings.ToLower(err.Error())
	for _, rule := range retryableSubstrings {
		if strings.Contains(msg, rule.substr) {
			return ClassRetryable, rule.reason
		}
	}
	return ClassFatal, ReasonOther
}

// statusOf digs a transport status code out of the error chain.
func statusOf(err error) int {
	var pe *ai.ProviderError
	if errors.As(err, &pe) {
		return pe.StatusCode
	}
	var ge *googleapi.Error
	if errors.As(err, &ge) {
		return ge.Code
	}
	return 0
}
