// README: Prometheus instruments for the generation pipeline.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Generations counts pipeline outcomes; "result" is either "success" or
	// an error taxonomy string.
	Generations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripgen_generations_total",
		Help: "Generation pipeline outcomes by result kind.",
	}, []string{"result"})

	ProviderCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripgen_provider_calls_total",
		Help: "Outbound provider completion calls.",
	}, []string{"provider"})

	ProviderFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripgen_provider_failures_total",
		Help: "Failed provider calls by classified reason.",
	}, []string{"provider", "reason"})

	Fallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tripgen_provider_fallbacks_total",
		Help: "Fallback hops to the secondary provider.",
	})

	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tripgen_cache_hits_total",
		Help: "Generation requests served from the result cache.",
	})

	GenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tripgen_generation_duration_seconds",
		Help:    "End-to-end duration of the generation pipeline.",
		Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
	})
)
