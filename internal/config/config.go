package config

import (
	"os"
	"strconv"
	"time"
)

const (
	AppName    = "Parley"
	AppVersion = "1.0.0"
)

// Engine provider names.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderStatic    = "static"
)

// EngineConfig selects and configures the translation engine backend.
type EngineConfig struct {
	Provider string // openai, anthropic, static
	APIKey   string
	BaseURL  string // optional override
	Model    string
	QPS      int // engine call rate limit
}

type Config struct {
	Addr       string
	LogLevel   string
	Engine     EngineConfig
	SessionTTL time.Duration // idle conversation sessions older than this are ended
}

func Load() Config {
	addr := os.Getenv("PARLEY_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	logLevel := os.Getenv("PARLEY_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	provider := os.Getenv("PARLEY_ENGINE_PROVIDER")
	if provider == "" {
		provider = ProviderStatic
	}
	model := os.Getenv("PARLEY_ENGINE_MODEL")
	if model == "" {
		switch provider {
		case ProviderOpenAI:
			model = "gpt-4o-mini"
		case ProviderAnthropic:
			model = "claude-3-5-haiku-latest"
		}
	}

	qps := 10
	if raw := os.Getenv("PARLEY_ENGINE_QPS"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			qps = v
		}
	}

	ttl := 30 * time.Minute
	if raw := os.Getenv("PARLEY_SESSION_TTL"); raw != "" {
		if v, err := time.ParseDuration(raw); err == nil && v > 0 {
			ttl = v
		}
	}

	return Config{
		Addr:     addr,
		LogLevel: logLevel,
		Engine: EngineConfig{
			Provider: provider,
			APIKey:   os.Getenv("PARLEY_ENGINE_API_KEY"),
			BaseURL:  os.Getenv("PARLEY_ENGINE_BASE_URL"),
			Model:    model,
			QPS:      qps,
		},
		SessionTTL: ttl,
	}
}
