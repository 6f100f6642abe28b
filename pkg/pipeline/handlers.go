package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/pkg/services"
	"github.com/veraz-project/veraz/pkg/taskbus"
)

// retryBatchSize bounds how many failed sources one scrape tick re-queues.
const retryBatchSize = 50

// scrapeSources runs all platform adapters, enqueues a process_source
// task per inserted source, and re-queues failed sources that are due
// for another attempt.
func (p *Pipeline) scrapeSources(ctx context.Context, t *ent.Task) error {
	stats, err := p.deps.Driver.Run(ctx)
	if err != nil {
		return fmt.Errorf("scrape run failed: %w", err)
	}

	enqueued := 0
	for _, sourceID := range stats.InsertedIDs {
		if err := p.enqueueProcessSource(ctx, sourceID); err != nil {
			slog.Error("Failed to enqueue source task", "source_id", sourceID, "error", err)
			continue
		}
		enqueued++
	}

	retried, err := p.retryFailedSources(ctx)
	if err != nil {
		slog.Error("Failed source retry sweep errored", "error", err)
	}

	slog.Info("Scrape tick complete",
		"fetched", stats.Fetched,
		"inserted", stats.Inserted,
		"duplicates", stats.Duplicates,
		"enqueued", enqueued,
		"retried", retried,
		"failed_platforms", stats.FailedPlatforms)
	return nil
}

// retryFailedSources resets sources that failed under the retry budget
// and puts them back on the queue.
func (p *Pipeline) retryFailedSources(ctx context.Context) (int, error) {
	candidates, err := p.deps.Sources.RetryCandidates(ctx, retryBatchSize)
	if err != nil {
		return 0, err
	}
	retried := 0
	for _, src := range candidates {
		if err := p.deps.Sources.ResetForRetry(ctx, src.ID); err != nil {
			slog.Error("Failed to reset source for retry", "source_id", src.ID, "error", err)
			continue
		}
		if err := p.enqueueProcessSource(ctx, src.ID); err != nil {
			slog.Error("Failed to enqueue retried source", "source_id", src.ID, "error", err)
			continue
		}
		retried++
	}
	return retried, nil
}

func (p *Pipeline) enqueueProcessSource(ctx context.Context, sourceID string) error {
	body, _ := json.Marshal(sourcePayload{SourceID: sourceID})
	_, err := p.deps.Bus.Enqueue(ctx, TaskProcessSource, body, taskbus.EnqueueOptions{
		UniqueKey: "source:" + sourceID,
		Priority:  4,
	})
	return err
}

// computeEmbedding writes the claim embedding out of band so a slow or
// flaky embedding provider never blocks verdict persistence.
func (p *Pipeline) computeEmbedding(ctx context.Context, t *ent.Task) error {
	var payload claimPayload
	if err := json.Unmarshal([]byte(t.Payload), &payload); err != nil || payload.ClaimID == "" || payload.Text == "" {
		return taskbus.Skip("malformed compute_embedding payload")
	}

	vecs, err := p.deps.Embedder.Embed(ctx, []string{payload.Text})
	if err != nil {
		return providerErr("claim embedding", err)
	}
	if len(vecs) != 1 || len(vecs[0]) != p.deps.Config.LLM.EmbeddingDim {
		return taskbus.Skip("embedding has unexpected shape")
	}
	if err := p.deps.DB.UpdateClaimEmbedding(ctx, payload.ClaimID, vecs[0]); err != nil {
		return err
	}
	return nil
}

// createClaimMarket opens a prediction market tied to a claim. The
// scheduled seeding pass picks it up within five minutes.
func (p *Pipeline) createClaimMarket(ctx context.Context, t *ent.Task) error {
	var payload marketPayload
	if err := json.Unmarshal([]byte(t.Payload), &payload); err != nil || payload.Question == "" {
		return taskbus.Skip("malformed create_claim_market payload")
	}

	created, err := p.deps.Markets.CreateMarket(ctx, services.CreateMarketRequest{
		Question:   payload.Question,
		Category:   payload.Category,
		HighStakes: payload.HighStakes,
		ClaimID:    payload.ClaimID,
	})
	if err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			return taskbus.Skip("market already exists for claim " + payload.ClaimID)
		}
		return err
	}
	slog.Info("Market created from claim", "market_id", created.ID, "claim_id", payload.ClaimID)
	return nil
}

func (p *Pipeline) seedNewMarkets(ctx context.Context, t *ent.Task) error {
	return p.deps.Agent.SeedNewMarkets(ctx)
}

func (p *Pipeline) tier1MarketUpdate(ctx context.Context, t *ent.Task) error {
	return p.deps.Agent.Tier1Update(ctx)
}

func (p *Pipeline) tier2MarketAnalysis(ctx context.Context, t *ent.Task) error {
	return p.deps.Agent.Tier2Analysis(ctx)
}

func (p *Pipeline) reassessInactiveMarkets(ctx context.Context, t *ent.Task) error {
	return p.deps.Agent.ReassessInactive(ctx)
}

func (p *Pipeline) detectTrendingTopics(ctx context.Context, t *ent.Task) error {
	_, err := p.deps.Detector.Run(ctx)
	return err
}

func (p *Pipeline) statsRollup(ctx context.Context, t *ent.Task) error {
	return p.deps.Stats.Rollup(ctx)
}

func (p *Pipeline) monthlyCreditTopup(ctx context.Context, t *ent.Task) error {
	return p.deps.Agent.MonthlyTopup(ctx)
}
