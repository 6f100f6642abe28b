package config

import (
	"os"
	"time"
)

// LLMProviderConfig describes one HTTP/JSON completion provider.
// Any OpenAI-compatible chat endpoint works.
type LLMProviderConfig struct {
	Name        string        `yaml:"name"`
	BaseURL     string        `yaml:"base_url"`
	APIKeyEnv   string        `yaml:"api_key_env"`
	Model       string        `yaml:"model"`
	StrongModel string        `yaml:"strong_model"`
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout"`

	// RatePerMinute caps calls to this provider (token bucket).
	RatePerMinute int `yaml:"rate_per_minute"`

	// Dimensions, for embedding providers, is sent with each request so
	// models with a larger native width (text-embedding-3-small emits
	// 1536) shorten server-side to the pgvector column width.
	Dimensions int `yaml:"dimensions"`
}

// APIKey resolves the key from the configured environment variable.
func (c *LLMProviderConfig) APIKey() string {
	return os.Getenv(c.APIKeyEnv)
}

// LLMConfig holds the primary/fallback completion pair and the embedding
// provider. The caller composes primary→fallback explicitly; there is no
// hidden retry inside a provider.
type LLMConfig struct {
	Primary   *LLMProviderConfig `yaml:"primary"`
	Fallback  *LLMProviderConfig `yaml:"fallback"`
	Embedding *LLMProviderConfig `yaml:"embedding"`

	// EmbeddingDim must match the pgvector column width.
	EmbeddingDim int `yaml:"embedding_dim"`
}

// DefaultLLMConfig returns a config pointing at env-specified endpoints.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Primary: &LLMProviderConfig{
			Name:          "primary",
			BaseURL:       getenvDefault("LLM_PRIMARY_URL", "https://api.deepseek.com"),
			APIKeyEnv:     "LLM_PRIMARY_API_KEY",
			Model:         getenvDefault("LLM_PRIMARY_MODEL", "deepseek-chat"),
			StrongModel:   getenvDefault("LLM_PRIMARY_STRONG_MODEL", "deepseek-reasoner"),
			Temperature:   0.2,
			MaxTokens:     2048,
			Timeout:       20 * time.Second,
			RatePerMinute: 60,
		},
		Fallback: &LLMProviderConfig{
			Name:          "fallback",
			BaseURL:       getenvDefault("LLM_FALLBACK_URL", "https://api.openai.com"),
			APIKeyEnv:     "LLM_FALLBACK_API_KEY",
			Model:         getenvDefault("LLM_FALLBACK_MODEL", "gpt-4o-mini"),
			StrongModel:   getenvDefault("LLM_FALLBACK_STRONG_MODEL", "gpt-4o"),
			Temperature:   0.2,
			MaxTokens:     2048,
			Timeout:       20 * time.Second,
			RatePerMinute: 60,
		},
		Embedding: &LLMProviderConfig{
			Name:          "embedding",
			BaseURL:       getenvDefault("LLM_EMBEDDING_URL", "https://api.openai.com"),
			APIKeyEnv:     "LLM_EMBEDDING_API_KEY",
			Model:         getenvDefault("LLM_EMBEDDING_MODEL", "text-embedding-3-small"),
			Timeout:       20 * time.Second,
			RatePerMinute: 120,
			Dimensions:    768,
		},
		// Must equal Embedding.Dimensions and the vector(768) column.
		EmbeddingDim: 768,
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
