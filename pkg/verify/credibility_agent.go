package verify

import (
	"context"
	"fmt"
	"strings"

	"github.com/veraz-project/veraz/pkg/ragctx"
)

// CredibilityAgent scores the claim by the credibility and corroboration
// of the gathered evidence. Fully deterministic: no provider calls.
type CredibilityAgent struct{}

// NewCredibilityAgent builds the source-credibility sub-agent.
func NewCredibilityAgent() *CredibilityAgent { return &CredibilityAgent{} }

// Name identifies the agent in findings.
func (a *CredibilityAgent) Name() string { return "source_credibility" }

// Evaluate votes from evidence tiers and term overlap. High-tier sources
// whose text shares the claim's terms push toward verified; high-tier
// sources that mention the topic without corroborating stay neutral.
func (a *CredibilityAgent) Evaluate(ctx context.Context, vc *ragctx.VerificationContext) (*Finding, error) {
	if len(vc.Evidence) == 0 {
		return &Finding{
			Agent:      a.Name(),
			Verdict:    VerdictUnverified,
			Confidence: 0.2,
			Rationale:  "no evidence sources available",
		}, nil
	}

	terms := significantTerms(vc.ClaimText)

	var score float64
	var corroborating int
	for _, ev := range vc.Evidence {
		weight := tierWeight(ev.Tier)
		overlap := termOverlap(terms, ev.Text+" "+ev.Snippet+" "+ev.Title)
		if overlap >= 0.4 {
			corroborating++
			score += weight * overlap
		}
	}

	if corroborating == 0 {
		return &Finding{
			Agent:      a.Name(),
			Verdict:    VerdictUnverified,
			Confidence: 0.3,
			Rationale:  fmt.Sprintf("%d sources found, none corroborate the claim terms", len(vc.Evidence)),
		}, nil
	}

	confidence := score / float64(len(vc.Evidence))
	if confidence > 0.95 {
		confidence = 0.95
	}
	return &Finding{
		Agent:      a.Name(),
		Verdict:    VerdictVerified,
		Confidence: confidence,
		Rationale:  fmt.Sprintf("%d of %d sources corroborate, best tier %d", corroborating, len(vc.Evidence), bestTier(vc.Evidence)),
	}, nil
}

func tierWeight(tier int) float64 {
	switch tier {
	case 1:
		return 1.0
	case 2:
		return 0.85
	case 3:
		return 0.6
	default:
		return 0.4
	}
}

func bestTier(evidence []ragctx.EvidenceItem) int {
	best := 4
	for _, ev := range evidence {
		if ev.Tier < best {
			best = ev.Tier
		}
	}
	return best
}

// significantTerms lowercases and keeps words of four or more runes,
// which drops Spanish articles and prepositions without a stop list.
func significantTerms(text string) []string {
	var terms []string
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,;:¡!¿?\"'()%")
		if len([]rune(w)) >= 4 {
			terms = append(terms, w)
		}
	}
	return terms
}

// termOverlap is the fraction of terms present in the text.
func termOverlap(terms []string, text string) float64 {
	if len(terms) == 0 {
		return 0
	}
	lower := strings.ToLower(text)
	hits := 0
	for _, t := range terms {
		if strings.Contains(lower, t) {
			hits++
		}
	}
	return float64(hits) / float64(len(terms))
}
