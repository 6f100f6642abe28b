package verify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finding(agent, verdict string, confidence float64) Finding {
	return Finding{Agent: agent, Verdict: verdict, Confidence: confidence, Rationale: "razón de " + agent}
}

func TestSynthesize_StrongConsensus(t *testing.T) {
	out := Synthesize([]Finding{
		finding("source_credibility", VerdictDebunked, 0.8),
		finding("historical_context", VerdictDebunked, 0.75),
		finding("logical_consistency", VerdictDebunked, 0.9),
		finding("evidence_analysis", VerdictUnverified, 0.3),
	}, 4)

	assert.Equal(t, VerdictDebunked, out.Verdict)
	assert.Equal(t, StrengthStrong, out.EvidenceStrength)
	assert.InDelta(t, (0.8+0.75+0.9)/3, out.Confidence, 0.001)
	assert.False(t, out.NeedsReview)
	assert.Equal(t, PriorityNone, out.ReviewPriority)
}

func TestSynthesize_MajorityModerate(t *testing.T) {
	out := Synthesize([]Finding{
		finding("source_credibility", VerdictVerified, 0.6),
		finding("evidence_analysis", VerdictVerified, 0.55),
		finding("historical_context", VerdictUnverified, 0.25),
	}, 3)

	assert.Equal(t, VerdictVerified, out.Verdict)
	assert.Equal(t, StrengthModerate, out.EvidenceStrength)
	assert.True(t, out.NeedsReview, "confidence below 0.6 needs human review")
	assert.Equal(t, PriorityMedium, out.ReviewPriority)
}

func TestSynthesize_ContradictionResolvesUnverified(t *testing.T) {
	out := Synthesize([]Finding{
		finding("source_credibility", VerdictVerified, 0.7),
		finding("evidence_analysis", VerdictDebunked, 0.7),
		finding("historical_context", VerdictVerified, 0.4),
		finding("logical_consistency", VerdictDebunked, 0.4),
	}, 2)

	assert.Equal(t, VerdictUnverified, out.Verdict)
	assert.Equal(t, StrengthWeak, out.EvidenceStrength)
	assert.True(t, out.NeedsReview)
}

func TestSynthesize_ManipulationForcesMisleading(t *testing.T) {
	findings := []Finding{
		finding("source_credibility", VerdictVerified, 0.8),
		finding("historical_context", VerdictVerified, 0.7),
		{Agent: "evidence_analysis", Verdict: VerdictMisleading, Confidence: 0.75,
			Rationale: "cifra real presentada fuera de contexto", ContextualManipulation: true},
	}

	out := Synthesize(findings, 3)
	assert.Equal(t, VerdictMisleading, out.Verdict)
	assert.Contains(t, out.Explanation, "fuera de contexto")
}

func TestSynthesize_LowConfidenceHighPriority(t *testing.T) {
	out := Synthesize([]Finding{
		finding("source_credibility", VerdictUnverified, 0.3),
		finding("historical_context", VerdictUnverified, 0.25),
	}, 3)

	assert.Equal(t, VerdictUnverified, out.Verdict)
	assert.True(t, out.NeedsReview)
	assert.Equal(t, PriorityHigh, out.ReviewPriority)
	assert.Equal(t, StrengthInsufficient, out.EvidenceStrength)
}

func TestSynthesize_NoEvidenceIsInsufficient(t *testing.T) {
	// Three findings, no consensus, nothing hinges on finding count.
	split := []Finding{
		finding("source_credibility", VerdictVerified, 0.45),
		finding("historical_context", VerdictUnverified, 0.3),
		finding("logical_consistency", VerdictMisleading, 0.35),
	}

	t.Run("without evidence", func(t *testing.T) {
		out := Synthesize(split, 0)
		assert.Equal(t, VerdictUnverified, out.Verdict)
		assert.Equal(t, StrengthInsufficient, out.EvidenceStrength)
	})

	t.Run("with evidence", func(t *testing.T) {
		out := Synthesize(split, 4)
		assert.Equal(t, VerdictUnverified, out.Verdict)
		assert.Equal(t, StrengthWeak, out.EvidenceStrength)
	})
}

func TestSynthesize_Deterministic(t *testing.T) {
	findings := []Finding{
		finding("a", VerdictVerified, 0.5),
		finding("b", VerdictDebunked, 0.5),
	}

	first := Synthesize(findings, 1)
	for i := 0; i < 10; i++ {
		again := Synthesize(findings, 1)
		assert.Equal(t, first.Verdict, again.Verdict)
		assert.Equal(t, first.Confidence, again.Confidence)
		assert.Equal(t, first.Explanation, again.Explanation)
	}
}

func TestBuildExplanation_Capped(t *testing.T) {
	long := strings.Repeat("palabra ", 60)
	out := Synthesize([]Finding{
		{Agent: "a", Verdict: VerdictVerified, Confidence: 0.9, Rationale: long},
		{Agent: "b", Verdict: VerdictVerified, Confidence: 0.8, Rationale: long},
		{Agent: "c", Verdict: VerdictVerified, Confidence: 0.8, Rationale: long},
	}, 3)

	require.LessOrEqual(t, len(out.Explanation), MaxExplanationLength)
}
