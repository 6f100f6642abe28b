// Package ragctx assembles the verification context for a claim: prior
// similar claims, fetched web evidence, and source credibility.
package ragctx

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/veraz-project/veraz/pkg/config"
	"github.com/veraz-project/veraz/pkg/database"
	"github.com/veraz-project/veraz/pkg/websearch"
)

// PriorClaim is a previously verified claim similar to the current one.
type PriorClaim struct {
	ClaimID    string  `json:"claim_id"`
	Text       string  `json:"text"`
	Verdict    string  `json:"verdict"`
	Similarity float64 `json:"similarity"`
}

// EvidenceItem is one piece of fetched web evidence.
type EvidenceItem struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Text    string `json:"text,omitempty"`
	// Tier is the source credibility tier, 1 (official) to 4 (unknown).
	Tier int `json:"tier"`
	// Rank is the search relevance position, 0 = most relevant.
	Rank int `json:"rank"`
}

// VerificationContext is everything the verification stage sees.
type VerificationContext struct {
	ClaimText string `json:"claim_text"`

	// DuplicateOf is set when a stored claim matches above the duplicate
	// threshold; verification is skipped and the source attaches to it.
	DuplicateOf string `json:"duplicate_of,omitempty"`

	SimilarClaims []PriorClaim   `json:"similar_claims"`
	Evidence      []EvidenceItem `json:"evidence"`
	EntityHints   []string       `json:"entity_hints,omitempty"`
}

// VectorSearcher finds stored claims near an embedding.
type VectorSearcher interface {
	SearchSimilarClaims(ctx context.Context, embedding []float32, limit int) ([]database.SimilarClaim, error)
}

// Builder assembles verification contexts.
type Builder struct {
	cfg         *config.RAGConfig
	credibility *config.CredibilityConfig
	vectors     VectorSearcher
	searcher    websearch.Searcher
	fetcher     *websearch.Fetcher
}

// NewBuilder wires the context builder.
func NewBuilder(cfg *config.RAGConfig, credibility *config.CredibilityConfig, vectors VectorSearcher, searcher websearch.Searcher, fetcher *websearch.Fetcher) *Builder {
	return &Builder{
		cfg:         cfg,
		credibility: credibility,
		vectors:     vectors,
		searcher:    searcher,
		fetcher:     fetcher,
	}
}

// Build assembles the context for a claim. When a stored claim matches at
// or above the duplicate threshold, DuplicateOf is set and no evidence is
// gathered. embedding may be nil when the embedding provider was down;
// similar-claim lookup is then skipped.
func (b *Builder) Build(ctx context.Context, claimText string, embedding []float32, entityHints []string) (*VerificationContext, error) {
	vc := &VerificationContext{
		ClaimText:   claimText,
		EntityHints: entityHints,
	}

	if embedding != nil {
		similar, err := b.vectors.SearchSimilarClaims(ctx, embedding, b.cfg.MaxSimilarClaims)
		if err != nil {
			return nil, fmt.Errorf("similar claim search failed: %w", err)
		}
		for _, s := range similar {
			if s.Similarity >= b.cfg.DuplicateThreshold {
				vc.DuplicateOf = s.ClaimID
				return vc, nil
			}
			vc.SimilarClaims = append(vc.SimilarClaims, PriorClaim{
				ClaimID:    s.ClaimID,
				Text:       s.Text,
				Verdict:    s.Verdict,
				Similarity: s.Similarity,
			})
		}
	}

	evidence, err := b.gatherEvidence(ctx, claimText)
	if err != nil {
		return nil, err
	}
	vc.Evidence = evidence
	return vc, nil
}

// gatherEvidence searches the web for the claim, drops blacklisted
// sources, fetches page text within the budget, and orders by
// credibility tier then relevance.
func (b *Builder) gatherEvidence(ctx context.Context, claimText string) ([]EvidenceItem, error) {
	results, err := b.searcher.Search(ctx, claimText, b.cfg.MaxEvidenceSources*2)
	if err != nil {
		return nil, fmt.Errorf("evidence search failed: %w", err)
	}

	items := make([]EvidenceItem, 0, len(results))
	for rank, r := range results {
		host := r.Host()
		if host == "" || b.credibility.IsBlacklisted(host) {
			continue
		}
		items = append(items, EvidenceItem{
			URL:     r.URL,
			Title:   r.Title,
			Snippet: r.Snippet,
			Tier:    b.credibility.TierFor(host),
			Rank:    rank,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Tier != items[j].Tier {
			return items[i].Tier < items[j].Tier
		}
		return items[i].Rank < items[j].Rank
	})
	if len(items) > b.cfg.MaxEvidenceSources {
		items = items[:b.cfg.MaxEvidenceSources]
	}

	b.fetchTexts(ctx, items)
	return items, nil
}

// fetchTexts downloads page text for up to FetchBudget items. Failures
// leave the snippet-only item in place; evidence gathering degrades, it
// never aborts.
func (b *Builder) fetchTexts(ctx context.Context, items []EvidenceItem) {
	budget := b.cfg.FetchBudget
	if budget > len(items) {
		budget = len(items)
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.PerHostConcurrency * 2)

	for i := 0; i < budget; i++ {
		g.Go(func() error {
			text, err := b.fetcher.FetchText(gctx, items[i].URL)
			if err != nil {
				slog.Debug("Evidence fetch failed, keeping snippet only",
					"url", items[i].URL, "error", err)
				return nil
			}
			mu.Lock()
			items[i].Text = text
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
}
