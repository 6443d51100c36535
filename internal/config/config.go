// README: Config loader; env-driven via viper, with optional .env for local runs.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr    string
		Mode    string // gin mode: debug, release or test
		Timeout time.Duration
	}
	DB struct {
		DSN string // empty disables the history store
	}
	Redis struct {
		Addr string // empty disables the result cache
		TTL  time.Duration
	}
	Currency struct {
		Freshness time.Duration
	}
	AI struct {
		GeminiKey   string
		GeminiModel string
		OpenAIKey   string
		OpenAIModel string
	}
	Log struct {
		Level string
	}
}

// Load reads configuration from the environment. A local .env file is
// honoured when present so the api can run outside a container.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("TRIPGEN_HTTP_ADDR", ":8080")
	v.SetDefault("TRIPGEN_HTTP_MODE", "release")
	v.SetDefault("TRIPGEN_HTTP_TIMEOUT", "90s")
	v.SetDefault("TRIPGEN_DB_DSN", "")
	v.SetDefault("TRIPGEN_REDIS_ADDR", "")
	v.SetDefault("TRIPGEN_CACHE_TTL", "1h")
	v.SetDefault("TRIPGEN_RATE_FRESHNESS", "1h")
	v.SetDefault("TRIPGEN_LOG_LEVEL", "info")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")

	var cfg Config
	cfg.HTTP.Addr = v.GetString("TRIPGEN_HTTP_ADDR")
	cfg.HTTP.Mode = v.GetString("TRIPGEN_HTTP_MODE")
	cfg.HTTP.Timeout = v.GetDuration("TRIPGEN_HTTP_TIMEOUT")
	cfg.DB.DSN = v.GetString("TRIPGEN_DB_DSN")
	cfg.Redis.Addr = v.GetString("TRIPGEN_REDIS_ADDR")
	cfg.Redis.TTL = v.GetDuration("TRIPGEN_CACHE_TTL")
	cfg.Currency.Freshness = v.GetDuration("TRIPGEN_RATE_FRESHNESS")
	cfg.Log.Level = v.GetString("TRIPGEN_LOG_LEVEL")
	cfg.AI.GeminiKey = v.GetString("GEMINI_API_KEY")
	cfg.AI.GeminiModel = v.GetString("GEMINI_MODEL")
	cfg.AI.OpenAIKey = v.GetString("OPENAI_API_KEY")
	cfg.AI.OpenAIModel = v.GetString("OPENAI_MODEL")

	if cfg.AI.GeminiKey == "" && cfg.AI.OpenAIKey == "" {
		return cfg, fmt.Errorf("config: at least one of GEMINI_API_KEY or OPENAI_API_KEY is required")
	}
	return cfg, nil
}
