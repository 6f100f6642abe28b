package verify

import (
	"context"
	"fmt"

	"github.com/veraz-project/veraz/pkg/ragctx"
)

// HistoricalAgent votes from previously verified similar claims. A close
// prior claim with a settled verdict is strong signal; recycled
// misinformation returns in waves with minor rephrasing. Deterministic.
type HistoricalAgent struct{}

// NewHistoricalAgent builds the historical-context sub-agent.
func NewHistoricalAgent() *HistoricalAgent { return &HistoricalAgent{} }

// Name identifies the agent in findings.
func (a *HistoricalAgent) Name() string { return "historical_context" }

// minSimilarity is the floor below which a prior claim carries no signal.
const minSimilarity = 0.80

// Evaluate picks the closest prior claim with a settled verdict and votes
// it with similarity-scaled confidence.
func (a *HistoricalAgent) Evaluate(ctx context.Context, vc *ragctx.VerificationContext) (*Finding, error) {
	var best *ragctx.PriorClaim
	for i := range vc.SimilarClaims {
		prior := &vc.SimilarClaims[i]
		if prior.Similarity < minSimilarity {
			continue
		}
		if prior.Verdict != VerdictVerified && prior.Verdict != VerdictDebunked && prior.Verdict != VerdictMisleading {
			continue
		}
		if best == nil || prior.Similarity > best.Similarity {
			best = prior
		}
	}

	if best == nil {
		return &Finding{
			Agent:      a.Name(),
			Verdict:    VerdictUnverified,
			Confidence: 0.25,
			Rationale:  "no settled prior claim close enough to carry signal",
		}, nil
	}

	// Scale: similarity 0.80 → 0.5 confidence, 0.95 → ~0.88.
	confidence := (best.Similarity - minSimilarity) / (1 - minSimilarity)
	confidence = 0.5 + confidence*0.4

	return &Finding{
		Agent:      a.Name(),
		Verdict:    best.Verdict,
		Confidence: confidence,
		Rationale:  fmt.Sprintf("prior claim %s (%s) matches at %.2f similarity", best.ClaimID, best.Verdict, best.Similarity),
	}, nil
}
