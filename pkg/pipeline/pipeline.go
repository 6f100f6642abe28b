// Package pipeline wires the fact-checking stages into task bus handlers.
package pipeline

import (
	"context"
	"time"

	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/pkg/classify"
	"github.com/veraz-project/veraz/pkg/config"
	"github.com/veraz-project/veraz/pkg/database"
	"github.com/veraz-project/veraz/pkg/extractor"
	"github.com/veraz-project/veraz/pkg/llm"
	"github.com/veraz-project/veraz/pkg/market"
	"github.com/veraz-project/veraz/pkg/ragctx"
	"github.com/veraz-project/veraz/pkg/scrape"
	"github.com/veraz-project/veraz/pkg/services"
	"github.com/veraz-project/veraz/pkg/taskbus"
	"github.com/veraz-project/veraz/pkg/trending"
	"github.com/veraz-project/veraz/pkg/verify"
)

// Task names handled by this package. The scheduled ones match the
// default schedule table; process_source, compute_embedding, and
// create_claim_market are enqueued by other handlers.
const (
	TaskProcessSource           = "process_source"
	TaskScrapeSources           = "scrape_sources"
	TaskComputeEmbedding        = "compute_embedding"
	TaskCreateClaimMarket       = "create_claim_market"
	TaskSeedNewMarkets          = "seed_new_markets"
	TaskTier1MarketUpdate       = "tier1_market_update"
	TaskTier2MarketAnalysis     = "tier2_market_analysis"
	TaskReassessInactiveMarkets = "reassess_inactive_markets"
	TaskDetectTrendingTopics    = "detect_trending_topics"
	TaskStatsRollup             = "stats_rollup"
	TaskMonthlyCreditTopup      = "monthly_credit_topup"
)

// SourceStore is the slice of SourceService the handlers depend on.
type SourceStore interface {
	Get(ctx context.Context, sourceID string) (*ent.Source, error)
	MarkSkipped(ctx context.Context, sourceID, reason string) error
	MarkFailed(ctx context.Context, sourceID, errMsg string) error
	RetryCandidates(ctx context.Context, limit int) ([]*ent.Source, error)
	ResetForRetry(ctx context.Context, sourceID string) error
}

// Deps carries everything the handlers need.
type Deps struct {
	Config     *config.Config
	DB         *database.Client
	Bus        *taskbus.Bus
	Driver     *scrape.Driver
	Extractor  *extractor.Extractor
	Builder    *ragctx.Builder
	Verifier   *verify.Orchestrator
	Classifier *classify.Classifier
	Embedder   llm.Provider
	Sources    SourceStore
	Claims     *services.ClaimService
	Markets    *services.MarketService
	Stats      *services.StatsService
	Agent      *market.Agent
	Detector   *trending.Detector
}

// Pipeline holds the wired stages behind the task handlers.
type Pipeline struct {
	deps Deps
}

// New builds a pipeline over its dependencies.
func New(deps Deps) *Pipeline {
	return &Pipeline{deps: deps}
}

// Register binds every handler to its task name. Retry policies differ
// by kind: provider-bound tasks back off harder, scheduled recomputes
// barely retry because the next tick redoes the work anyway.
func (p *Pipeline) Register(reg *taskbus.Registry) {
	providerPolicy := taskbus.RetryPolicy{
		MaxAttempts:    3,
		InitialBackoff: 30 * time.Second,
		Multiplier:     2.0,
		Jitter:         10 * time.Second,
		MaxBackoff:     15 * time.Minute,
	}
	embeddingPolicy := taskbus.RetryPolicy{
		MaxAttempts:    5,
		InitialBackoff: time.Minute,
		Multiplier:     2.0,
		Jitter:         15 * time.Second,
		MaxBackoff:     30 * time.Minute,
	}
	scheduledPolicy := taskbus.RetryPolicy{
		MaxAttempts:    2,
		InitialBackoff: time.Minute,
		Multiplier:     2.0,
		Jitter:         10 * time.Second,
		MaxBackoff:     5 * time.Minute,
	}

	reg.Register(TaskProcessSource, p.processSource, providerPolicy)
	reg.Register(TaskScrapeSources, p.scrapeSources, scheduledPolicy)
	reg.Register(TaskComputeEmbedding, p.computeEmbedding, embeddingPolicy)
	reg.Register(TaskCreateClaimMarket, p.createClaimMarket, providerPolicy)
	reg.Register(TaskSeedNewMarkets, p.seedNewMarkets, scheduledPolicy)
	reg.Register(TaskTier1MarketUpdate, p.tier1MarketUpdate, scheduledPolicy)
	reg.Register(TaskTier2MarketAnalysis, p.tier2MarketAnalysis, scheduledPolicy)
	reg.Register(TaskReassessInactiveMarkets, p.reassessInactiveMarkets, scheduledPolicy)
	reg.Register(TaskDetectTrendingTopics, p.detectTrendingTopics, scheduledPolicy)
	reg.Register(TaskStatsRollup, p.statsRollup, scheduledPolicy)
	reg.Register(TaskMonthlyCreditTopup, p.monthlyCreditTopup, scheduledPolicy)
}
