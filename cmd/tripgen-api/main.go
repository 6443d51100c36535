// README: Entry point; loads config, wires the generation pipeline, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tripgen/internal/ai"
	"tripgen/internal/config"
	httptransport "tripgen/internal/http"
	"tripgen/internal/http/handlers"
	"tripgen/internal/infra"
	"tripgen/internal/logger"
	"tripgen/internal/modules/currency"
	"tripgen/internal/modules/history"
	"tripgen/internal/trip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logg := logger.New(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Gemini is the primary when configured; OpenAI is the fallback, or the
	// primary when it is the only provider with a key.
	var primary, secondary ai.Provider
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiModel)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		primary = gemini
	}
	if cfg.AI.OpenAIKey != "" {
		openai, err := ai.NewOpenAIProvider(cfg.AI.OpenAIKey, cfg.AI.OpenAIModel)
		if err != nil {
			log.Fatalf("openai init: %v", err)
		}
		if primary == nil {
			primary = openai
		} else {
			secondary = openai
		}
	}

	rates := currency.NewTable(cfg.Currency.Freshness)
	orch := trip.NewOrchestrator(primary, secondary, logg)

	var cache *trip.Cache
	if cfg.Redis.Addr != "" {
		cache = trip.NewCache(infra.NewRedis(cfg.Redis.Addr), cfg.Redis.TTL)
	}

	var histSvc *history.Service
	if cfg.DB.DSN != "" {
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatalf("db init: %v", err)
		}
		defer pool.Close()
		histSvc = history.NewService(history.NewStore(pool))
	}

	tripSvc := trip.NewService(orch, rates, cache, histSvc, logg)

	gin.SetMode(cfg.HTTP.Mode)
	var histAPI handlers.History
	if histSvc != nil {
		histAPI = histSvc
	}
	handler := httptransport.NewRouter(handlers.NewTripHandler(tripSvc, histAPI, cfg.HTTP.Timeout), logg)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logg.Info("listening", "addr", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
