// Package config loads and validates pipeline configuration from the config
// directory (YAML files) and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config is the root configuration shared by all components.
type Config struct {
	Queue       *QueueConfig
	Scheduler   *SchedulerConfig
	Scrapers    *ScraperConfig
	LLM         *LLMConfig
	RAG         *RAGConfig
	Verify      *VerifyConfig
	Market      *MarketConfig
	Trending    *TrendingConfig
	Taxonomy    *Taxonomy
	Credibility *CredibilityConfig
}

// RAGConfig bounds the evidence gathering stage.
type RAGConfig struct {
	MaxSimilarClaims   int           `yaml:"max_similar_claims"`
	MaxEvidenceSources int           `yaml:"max_evidence_sources"`
	FetchBudget        int           `yaml:"fetch_budget"`
	FetchTimeout       time.Duration `yaml:"fetch_timeout"`
	EvidenceTextLimit  int           `yaml:"evidence_text_limit"`
	PerHostConcurrency int           `yaml:"per_host_concurrency"`
	CacheTTL           time.Duration `yaml:"cache_ttl"`
	CacheSize          int           `yaml:"cache_size"`
	DuplicateThreshold float64       `yaml:"duplicate_threshold"`
	SearchSiteTLD      string        `yaml:"search_site_tld"`
}

// VerifyConfig bounds the verification orchestrator.
type VerifyConfig struct {
	OverallTimeout   time.Duration `yaml:"overall_timeout"`
	SubAgentTimeout  time.Duration `yaml:"sub_agent_timeout"`
	MaxProviderCalls int           `yaml:"max_provider_calls"`
}

// MarketConfig bounds the market intelligence agent.
type MarketConfig struct {
	SystemActor        string  `yaml:"system_actor"`
	SeedMinConfidence  float64 `yaml:"seed_min_confidence"`
	SeedTradeMin       float64 `yaml:"seed_trade_min"`
	SeedTradeMax       float64 `yaml:"seed_trade_max"`
	Tier1BatchSize     int     `yaml:"tier1_batch_size"`
	Tier2MinConfidence float64 `yaml:"tier2_min_confidence"`
	Tier2MinDivergence float64 `yaml:"tier2_min_divergence"`
	Tier2MaxTrades     int     `yaml:"tier2_max_trades"`
	AgentVersion       string  `yaml:"agent_version"`

	// MonthlyCreditBudget caps total agent trade spend per calendar
	// month; the monthly topup task resets the spent counter.
	MonthlyCreditBudget float64 `yaml:"monthly_credit_budget"`

	// InactiveWindow is how long without trades before a market is
	// reassessed by the hourly pass.
	InactiveWindow time.Duration `yaml:"inactive_window"`
}

// Defaults mirror spec behavior and can be overridden per-file.
func defaultRAGConfig() *RAGConfig {
	return &RAGConfig{
		MaxSimilarClaims:   5,
		MaxEvidenceSources: 5,
		FetchBudget:        6,
		FetchTimeout:       3 * time.Second,
		EvidenceTextLimit:  2 * 1024,
		PerHostConcurrency: 2,
		CacheTTL:           24 * time.Hour,
		CacheSize:          4096,
		DuplicateThreshold: 0.95,
		SearchSiteTLD:      "",
	}
}

func defaultVerifyConfig() *VerifyConfig {
	return &VerifyConfig{
		OverallTimeout:   45 * time.Second,
		SubAgentTimeout:  20 * time.Second,
		MaxProviderCalls: 8,
	}
}

func defaultMarketConfig() *MarketConfig {
	return &MarketConfig{
		SystemActor:         "veraz-agent",
		SeedMinConfidence:   0.4,
		SeedTradeMin:        50,
		SeedTradeMax:        200,
		Tier1BatchSize:      50,
		Tier2MinConfidence:  0.6,
		Tier2MinDivergence:  0.15,
		Tier2MaxTrades:      10,
		AgentVersion:        "market-agent/v2",
		MonthlyCreditBudget: 10000,
		InactiveWindow:      24 * time.Hour,
	}
}

// Initialize loads configuration from the given directory.
// Missing YAML files fall back to defaults; a missing taxonomy is fatal
// because topic classification cannot run without it.
func Initialize(configDir string) (*Config, error) {
	cfg := &Config{
		Queue:     DefaultQueueConfig(),
		Scheduler: DefaultSchedulerConfig(),
		Scrapers:  DefaultScraperConfig(),
		LLM:       DefaultLLMConfig(),
		RAG:       defaultRAGConfig(),
		Verify:    defaultVerifyConfig(),
		Market:    defaultMarketConfig(),
		Trending:  DefaultTrendingConfig(),
	}

	taxonomy, err := LoadTaxonomy(filepath.Join(configDir, "taxonomy.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}
	cfg.Taxonomy = taxonomy

	credibility, err := LoadCredibility(filepath.Join(configDir, "credibility.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load credibility config: %w", err)
	}
	cfg.Credibility = credibility

	if err := loadYAMLIfExists(filepath.Join(configDir, "scrapers.yaml"), cfg.Scrapers); err != nil {
		return nil, fmt.Errorf("failed to load scrapers config: %w", err)
	}
	if err := loadYAMLIfExists(filepath.Join(configDir, "trending.yaml"), cfg.Trending); err != nil {
		return nil, fmt.Errorf("failed to load trending config: %w", err)
	}
	if err := loadYAMLIfExists(filepath.Join(configDir, "pipeline.yaml"), &pipelineFile{
		Queue:  cfg.Queue,
		RAG:    cfg.RAG,
		Verify: cfg.Verify,
		Market: cfg.Market,
	}); err != nil {
		return nil, fmt.Errorf("failed to load pipeline config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// pipelineFile groups the sections of pipeline.yaml.
type pipelineFile struct {
	Queue  *QueueConfig  `yaml:"queue"`
	RAG    *RAGConfig    `yaml:"rag"`
	Verify *VerifyConfig `yaml:"verify"`
	Market *MarketConfig `yaml:"market"`
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DEDUP_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f <= 1 {
			cfg.RAG.DuplicateThreshold = f
		}
	}
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Queue.WorkerCount = n
		}
	}
	if v := os.Getenv("SEARCH_SITE_TLD"); v != "" {
		cfg.RAG.SearchSiteTLD = v
	}
}

// Validate checks cross-field invariants.
func (c *Config) Validate() error {
	if c.RAG.DuplicateThreshold <= 0 || c.RAG.DuplicateThreshold > 1 {
		return fmt.Errorf("rag: duplicate_threshold must be in (0,1], got %v", c.RAG.DuplicateThreshold)
	}
	if c.Market.SeedTradeMin > c.Market.SeedTradeMax {
		return fmt.Errorf("market: seed_trade_min %v > seed_trade_max %v",
			c.Market.SeedTradeMin, c.Market.SeedTradeMax)
	}
	if c.Queue.WorkerCount <= 0 {
		return fmt.Errorf("queue: worker_count must be positive")
	}
	if len(c.Taxonomy.Topics) == 0 {
		return fmt.Errorf("taxonomy: no topics defined")
	}
	if c.LLM.Embedding != nil && c.LLM.Embedding.Dimensions != 0 && c.LLM.Embedding.Dimensions != c.LLM.EmbeddingDim {
		return fmt.Errorf("llm: embedding provider dimensions %d do not match embedding_dim %d",
			c.LLM.Embedding.Dimensions, c.LLM.EmbeddingDim)
	}
	return nil
}
