// Package market implements the market intelligence agent: seeding new
// prediction markets, the lightweight tier-1 refresh, and the daily
// tier-2 deep reassessment.
package market

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/pkg/config"
	"github.com/veraz-project/veraz/pkg/llm"
	"github.com/veraz-project/veraz/pkg/services"
	"github.com/veraz-project/veraz/pkg/websearch"
)

// spentCounter tracks agent credit spend within the current month; the
// monthly topup task resets it.
const spentCounter = "agent_credits_spent"

// seedMaxAge bounds seeding to recently created markets.
const seedMaxAge = time.Hour

// tier1Staleness is how old an assessment may be before the tier-1 pass
// refreshes it.
const tier1Staleness = 2 * time.Hour

// Agent runs the market intelligence loops.
type Agent struct {
	markets  *services.MarketService
	stats    *services.StatsService
	counters CounterReader
	provider llm.Provider
	strong   string
	searcher websearch.Searcher
	cfg      *config.MarketConfig
}

// CounterReader reads a named counter value; zero when absent.
type CounterReader interface {
	CounterValue(ctx context.Context, name string) (float64, error)
}

// NewAgent wires the market intelligence agent. strongModel overrides
// the provider default for high-stakes assessments.
func NewAgent(markets *services.MarketService, stats *services.StatsService, counters CounterReader, provider llm.Provider, strongModel string, searcher websearch.Searcher, cfg *config.MarketConfig) *Agent {
	return &Agent{
		markets:  markets,
		stats:    stats,
		counters: counters,
		provider: provider,
		strong:   strongModel,
		searcher: searcher,
		cfg:      cfg,
	}
}

// assessment is the closed JSON shape of one market assessment call.
type assessment struct {
	AssessedProb float64 `json:"assessed_prob"`
	Confidence   float64 `json:"confidence"`
	Reasoning    string  `json:"reasoning"`
}

const assessSystemPrompt = `Sos un analista de mercados de predicción sobre política y economía en español.

Dada la pregunta de un mercado y su contexto, estimá la probabilidad de que se resuelva SÍ.

Respondé ÚNICAMENTE con JSON:
{"assessed_prob": 0.0-1.0, "confidence": 0.0-1.0, "reasoning": "una o dos oraciones en español"}`

// SeedNewMarkets assesses open markets created in the last hour with no
// trades and places one seed trade each when the assessment is confident
// enough and budget remains.
func (a *Agent) SeedNewMarkets(ctx context.Context) error {
	candidates, err := a.markets.SeedCandidates(ctx, seedMaxAge, 50)
	if err != nil {
		return fmt.Errorf("failed to find seed candidates: %w", err)
	}

	for _, m := range candidates {
		if err := a.seedOne(ctx, m); err != nil {
			slog.Error("Market seeding failed", "market_id", m.ID, "error", err)
		}
	}
	return nil
}

func (a *Agent) seedOne(ctx context.Context, m *ent.Market) error {
	result, err := a.assess(ctx, m)
	if err != nil {
		return err
	}

	if err := a.markets.RecordAssessment(ctx, m.ID, result.AssessedProb, result.Confidence, result.Reasoning, a.cfg.AgentVersion, nil); err != nil {
		return err
	}

	if result.Confidence < a.cfg.SeedMinConfidence {
		slog.Info("Assessment below seed confidence, skipping trade",
			"market_id", m.ID, "confidence", result.Confidence)
		return nil
	}

	size := SeedTradeSize(result.Confidence, a.cfg.SeedMinConfidence, a.cfg.SeedTradeMin, a.cfg.SeedTradeMax)
	if ok, err := a.withinBudget(ctx, size); err != nil {
		return err
	} else if !ok {
		slog.Warn("Monthly credit budget exhausted, skipping seed trade", "market_id", m.ID)
		return nil
	}

	side := TradeSide(result.AssessedProb)
	if _, err := a.markets.ExecuteTrade(ctx, m.ID, a.cfg.SystemActor, side, size); err != nil {
		return fmt.Errorf("failed to place seed trade: %w", err)
	}
	if err := a.recordSpend(ctx, size); err != nil {
		return err
	}

	slog.Info("Seed trade placed",
		"market_id", m.ID, "side", side, "size", size,
		"assessed_prob", result.AssessedProb, "confidence", result.Confidence)
	return nil
}

// Tier1Update refreshes sentiment/news aggregates for the stalest open
// markets, bounded per tick. No trades are placed.
func (a *Agent) Tier1Update(ctx context.Context) error {
	stale, err := a.markets.StaleAssessed(ctx, tier1Staleness, a.cfg.Tier1BatchSize)
	if err != nil {
		return fmt.Errorf("failed to find stale markets: %w", err)
	}

	for _, m := range stale {
		aggregates, err := a.newsAggregates(ctx, m.Question)
		if err != nil {
			slog.Warn("Tier-1 aggregate refresh failed", "market_id", m.ID, "error", err)
			continue
		}

		// Carry the last assessed probability forward; tier-1 only
		// refreshes the data inputs.
		assessedProb := m.YesProb
		confidence := 0.0
		reasoning := "tier-1 aggregate refresh"
		if last, err := a.markets.LatestAssessment(ctx, m.ID); err == nil {
			assessedProb = last.AssessedProb
			confidence = last.Confidence
			reasoning = last.Reasoning
		}

		if err := a.markets.RecordAssessment(ctx, m.ID, assessedProb, confidence, reasoning, a.cfg.AgentVersion, aggregates); err != nil {
			slog.Error("Failed to record tier-1 assessment", "market_id", m.ID, "error", err)
		}
	}

	slog.Info("Tier-1 update complete", "markets", len(stale))
	return nil
}

// Tier2Analysis reruns the full assessment on every open market and
// places an adjustment trade only when the agent is confident, the
// divergence is material, and the market is still thin.
func (a *Agent) Tier2Analysis(ctx context.Context) error {
	open, err := a.markets.OpenMarkets(ctx, 1000)
	if err != nil {
		return fmt.Errorf("failed to list open markets: %w", err)
	}

	for _, m := range open {
		if err := a.tier2One(ctx, m); err != nil {
			slog.Error("Tier-2 analysis failed", "market_id", m.ID, "error", err)
		}
	}
	return nil
}

func (a *Agent) tier2One(ctx context.Context, m *ent.Market) error {
	aggregates, err := a.newsAggregates(ctx, m.Question)
	if err != nil {
		aggregates = nil
	}

	result, err := a.assess(ctx, m)
	if err != nil {
		return err
	}
	if err := a.markets.RecordAssessment(ctx, m.ID, result.AssessedProb, result.Confidence, result.Reasoning, a.cfg.AgentVersion, aggregates); err != nil {
		return err
	}

	trades, err := a.markets.TradeCount(ctx, m.ID)
	if err != nil {
		return err
	}
	if !ShouldAdjust(a.cfg, result.Confidence, result.AssessedProb, m.YesProb, trades) {
		return nil
	}

	size := SeedTradeSize(result.Confidence, a.cfg.Tier2MinConfidence, a.cfg.SeedTradeMin, a.cfg.SeedTradeMax)
	if ok, err := a.withinBudget(ctx, size); err != nil {
		return err
	} else if !ok {
		return nil
	}

	side := TradeSide(result.AssessedProb)
	if _, err := a.markets.ExecuteTrade(ctx, m.ID, a.cfg.SystemActor, side, size); err != nil {
		return fmt.Errorf("failed to place adjustment trade: %w", err)
	}
	if err := a.recordSpend(ctx, size); err != nil {
		return err
	}

	slog.Info("Adjustment trade placed",
		"market_id", m.ID, "side", side, "size", size,
		"assessed_prob", result.AssessedProb, "market_prob", m.YesProb)
	return nil
}

// ReassessInactive refreshes the assessment of open markets with no
// recent trades. Assessment only; trading stays with seed and tier-2.
func (a *Agent) ReassessInactive(ctx context.Context) error {
	inactive, err := a.markets.InactiveMarkets(ctx, a.cfg.InactiveWindow, a.cfg.Tier1BatchSize)
	if err != nil {
		return fmt.Errorf("failed to find inactive markets: %w", err)
	}

	for _, m := range inactive {
		result, err := a.assess(ctx, m)
		if err != nil {
			slog.Warn("Inactive market reassessment failed", "market_id", m.ID, "error", err)
			continue
		}
		if err := a.markets.RecordAssessment(ctx, m.ID, result.AssessedProb, result.Confidence, result.Reasoning, a.cfg.AgentVersion, nil); err != nil {
			slog.Error("Failed to record reassessment", "market_id", m.ID, "error", err)
		}
	}

	slog.Info("Inactive market reassessment complete", "markets", len(inactive))
	return nil
}

// MonthlyTopup resets the agent's spent-credit counter for the new month.
func (a *Agent) MonthlyTopup(ctx context.Context) error {
	spent, err := a.counters.CounterValue(ctx, spentCounter)
	if err != nil {
		return err
	}
	if err := a.stats.Increment(ctx, spentCounter, -int64(spent)); err != nil {
		return fmt.Errorf("failed to reset spend counter: %w", err)
	}
	slog.Info("Monthly credit topup applied",
		"previous_spend", spent, "budget", a.cfg.MonthlyCreditBudget)
	return nil
}

// assess runs one LLM assessment of a market. High-stakes markets use
// the stronger model.
func (a *Agent) assess(ctx context.Context, m *ent.Market) (*assessment, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PREGUNTA: %s\nCATEGORÍA: %s\n", m.Question, m.Category)
	fmt.Fprintf(&sb, "PROBABILIDAD ACTUAL DEL MERCADO: %.2f\nVOLUMEN: %.0f\n", m.YesProb, m.Volume)

	req := llm.Request{
		System: assessSystemPrompt,
		User:   sb.String(),
	}
	if m.HighStakes && a.strong != "" {
		req.Model = a.strong
	}

	raw, err := a.provider.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("assessment call failed: %w", err)
	}

	var parsed assessment
	if err := llm.DecodeJSON(raw, &parsed); err != nil {
		return nil, fmt.Errorf("assessment returned undecodable JSON: %w", err)
	}
	if parsed.AssessedProb < 0 || parsed.AssessedProb > 1 {
		return nil, fmt.Errorf("assessment probability out of range: %v", parsed.AssessedProb)
	}
	parsed.Confidence = math.Min(1, math.Max(0, parsed.Confidence))
	return &parsed, nil
}

// newsAggregates builds the sentiment/news input blob from a web search
// over the market question.
func (a *Agent) newsAggregates(ctx context.Context, question string) (map[string]interface{}, error) {
	results, err := a.searcher.Search(ctx, question, 10)
	if err != nil {
		return nil, err
	}

	domains := make(map[string]int)
	titles := make([]string, 0, len(results))
	for _, r := range results {
		domains[r.Host()]++
		titles = append(titles, r.Title)
	}

	return map[string]interface{}{
		"news_hits":    len(results),
		"domains":      domains,
		"headlines":    titles,
		"collected_at": time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (a *Agent) withinBudget(ctx context.Context, size float64) (bool, error) {
	spent, err := a.counters.CounterValue(ctx, spentCounter)
	if err != nil {
		return false, err
	}
	return spent+size <= a.cfg.MonthlyCreditBudget, nil
}

func (a *Agent) recordSpend(ctx context.Context, size float64) error {
	return a.stats.Increment(ctx, spentCounter, int64(size))
}

// SeedTradeSize maps confidence onto the configured size band linearly:
// the floor confidence buys the minimum size, full confidence the max.
func SeedTradeSize(confidence, floor, min, max float64) float64 {
	if confidence <= floor {
		return min
	}
	frac := (confidence - floor) / (1 - floor)
	if frac > 1 {
		frac = 1
	}
	return math.Round(min + frac*(max-min))
}

// TradeSide picks the side matching the majority assessment.
func TradeSide(assessedProb float64) string {
	if assessedProb >= 0.5 {
		return "yes"
	}
	return "no"
}

// ShouldAdjust applies the tier-2 trade gate: confident, materially
// divergent, and still a thin market.
func ShouldAdjust(cfg *config.MarketConfig, confidence, assessedProb, currentProb float64, trades int) bool {
	return confidence >= cfg.Tier2MinConfidence &&
		math.Abs(assessedProb-currentProb) >= cfg.Tier2MinDivergence &&
		trades < cfg.Tier2MaxTrades
}
