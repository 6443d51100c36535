package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tripgen/internal/modules/cost"
	"tripgen/internal/modules/currency"
	"tripgen/internal/modules/history"
	"tripgen/internal/observability"
	"tripgen/internal/types"
)

// Service is the pipeline controller: validate -> orchestrate -> shape-guard
// -> cost-normalize. It owns the full lifecycle of one generation request and
// holds no cross-request state; the currency table's snapshot cache is the
// only shared mutable state in the process.
type Service struct {
	orch    *Orchestrator
	rates   *currency.Table
	cache   *Cache           // nil disables result caching
	history *history.Service // nil disables persistence
	log     *slog.Logger
}

func NewService(orch *Orchestrator, rates *currency.Table, cache *Cache, hist *history.Service, log *slog.Logger) *Service {
	return &Service{orch: orch, rates: rates, cache: cache, history: hist, log: log}
}

// Generate runs the whole pipeline and returns exactly one result or one
// normalized error.
func (s *Service) Generate(ctx context.Context, req *types.TripRequest) (*types.GenerationResult, *GenerationError) {
	start := time.Now()
	result, genErr := s.generate(ctx, req)
	observability.GenerationDuration.Observe(time.Since(start).Seconds())
	if genErr != nil {
		observability.Generations.WithLabelValues(string(genErr.Kind)).Inc()
		return nil, genErr
	}
	observability.Generations.WithLabelValues("success").Inc()
	return result, nil
}

func (s *Service) generate(ctx context.Context, req *types.TripRequest) (*types.GenerationResult, *GenerationError) {
	validation := ValidateRequest(req)
	for _, w := range validation.Warnings {
		s.log.Warn("request warning", slog.String("warning", w), slog.String("destination", req.Destination))
	}
	if !validation.Valid {
		return nil, &GenerationError{
			Kind:    KindRequestInvalid,
			Detail:  "trip request failed validation",
			Details: validation.Errors,
		}
	}

	if cached, ok := s.cache.Get(ctx, req); ok {
		observability.CacheHits.Inc()
		s.log.Info("serving cached itinerary", slog.String("destination", req.Destination))
		return cached, nil
	}

	raw, genErr := s.orch.Generate(ctx, BuildPrompt(req))
	if genErr != nil {
		return nil, genErr
	}

	doc, err := decodeProviderJSON(raw)
	if err != nil {
		// Not retried: another provider call is unlikely to fix a systemic
		// prompt-format problem.
		return nil, &GenerationError{Kind: KindMalformedOutput, Detail: err.Error()}
	}
	if ok, path := ValidateItineraryShape(doc); !ok {
		return nil, &GenerationError{
			Kind:   KindSchemaViolation,
			Detail: fmt.Sprintf("provider payload failed shape validation at %s", path),
		}
	}

	result, err := s.assemble(req, raw)
	if err != nil {
		return nil, &GenerationError{Kind: KindSchemaViolation, Detail: err.Error()}
	}

	s.cache.Set(ctx, req, result)
	if s.history != nil {
		if id, err := s.history.Record(ctx, req, result); err != nil {
			s.log.Error("record trip", slog.Any("err", err))
		} else {
			s.log.Info("trip recorded", slog.String("id", id.String()))
		}
	}
	return result, nil
}

// assemble decodes the already-validated payload into the typed result and
// derives every cost figure from scratch; upstream figures are never trusted.
func (s *Service) assemble(req *types.TripRequest, raw string) (*types.GenerationResult, error) {
	var payload struct {
		Itinerary   []types.DayPlan `json:"itinerary"`
		PackingList []string        `json:"packing_list"`
	}
	if err := json.Unmarshal([]byte(cleanJSONString(raw)), &payload); err != nil {
		return nil, fmt.Errorf("decode itinerary: %w", err)
	}
	if payload.PackingList == nil {
		payload.PackingList = []string{}
	}

	for i := range payload.Itinerary {
		payload.Itinerary[i].DailyCostUSD = cost.DailyCost(payload.Itinerary[i])
	}

	people := req.NumberOfPeople
	if people < 1 {
		people = 1
	}

	return &types.GenerationResult{
		Itinerary:      payload.Itinerary,
		PackingList:    payload.PackingList,
		CostSummary:    cost.Summarize(payload.Itinerary, req.Budget(), s.rates),
		NumberOfPeople: people,
	}, nil
}

func decodeProviderJSON(raw string) (any, error) {
	var doc any
	if err := json.Unmarshal([]byte(cleanJSONString(raw)), &doc); err != nil {
		return nil, fmt.Errorf("provider returned non-JSON output: %w", err)
	}
	return doc, nil
}

// cleanJSONString removes markdown code fences if present (e.g. ```json ... ```).
// JSON mode should prevent them, but models still slip.
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
