package verify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veraz-project/veraz/pkg/llm"
	"github.com/veraz-project/veraz/pkg/ragctx"
)

func TestCredibilityAgent(t *testing.T) {
	agent := NewCredibilityAgent()

	t.Run("no evidence abstains", func(t *testing.T) {
		f, err := agent.Evaluate(context.Background(), &ragctx.VerificationContext{
			ClaimText: "El índice de pobreza bajó al 38%",
		})
		require.NoError(t, err)
		assert.Equal(t, VerdictUnverified, f.Verdict)
		assert.Less(t, f.Confidence, 0.4)
	})

	t.Run("corroborating official source votes verified", func(t *testing.T) {
		f, err := agent.Evaluate(context.Background(), &ragctx.VerificationContext{
			ClaimText: "El índice de pobreza bajó al 38% según el INDEC",
			Evidence: []ragctx.EvidenceItem{
				{URL: "https://indec.gob.ar/informe", Tier: 1,
					Text: "El INDEC informó que el índice de pobreza bajó al 38% en el semestre."},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, VerdictVerified, f.Verdict)
		assert.Greater(t, f.Confidence, 0.5)
	})

	t.Run("unrelated evidence stays unverified", func(t *testing.T) {
		f, err := agent.Evaluate(context.Background(), &ragctx.VerificationContext{
			ClaimText: "El índice de pobreza bajó al 38%",
			Evidence: []ragctx.EvidenceItem{
				{URL: "https://ejemplo.com", Tier: 3, Text: "Resultados deportivos del fin de semana."},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, VerdictUnverified, f.Verdict)
	})
}

func TestHistoricalAgent(t *testing.T) {
	agent := NewHistoricalAgent()

	t.Run("close settled prior carries its verdict", func(t *testing.T) {
		f, err := agent.Evaluate(context.Background(), &ragctx.VerificationContext{
			SimilarClaims: []ragctx.PriorClaim{
				{ClaimID: "c1", Verdict: VerdictDebunked, Similarity: 0.91},
				{ClaimID: "c2", Verdict: VerdictVerified, Similarity: 0.84},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, VerdictDebunked, f.Verdict, "closest settled prior wins")
		assert.Greater(t, f.Confidence, 0.5)
	})

	t.Run("unverified priors carry no signal", func(t *testing.T) {
		f, err := agent.Evaluate(context.Background(), &ragctx.VerificationContext{
			SimilarClaims: []ragctx.PriorClaim{
				{ClaimID: "c1", Verdict: VerdictUnverified, Similarity: 0.92},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, VerdictUnverified, f.Verdict)
		assert.Less(t, f.Confidence, 0.4)
	})

	t.Run("distant priors are ignored", func(t *testing.T) {
		f, err := agent.Evaluate(context.Background(), &ragctx.VerificationContext{
			SimilarClaims: []ragctx.PriorClaim{
				{ClaimID: "c1", Verdict: VerdictDebunked, Similarity: 0.6},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, VerdictUnverified, f.Verdict)
	})
}

type fixedProvider struct {
	response string
}

func (f *fixedProvider) Name() string { return "fixed" }

func (f *fixedProvider) Complete(ctx context.Context, req llm.Request) (string, error) {
	return f.response, nil
}

func (f *fixedProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, nil
}

func TestConsistencyAgent_DecodesFencedFinding(t *testing.T) {
	provider := &fixedProvider{response: "```json\n" +
		`{"verdict": "debunked", "confidence": 0.85, "rationale": "la cifra citada no existe", "contextual_manipulation": false}` +
		"\n```"}
	agent := NewConsistencyAgent(provider)

	f, err := agent.Evaluate(context.Background(), &ragctx.VerificationContext{ClaimText: "afirmación"})
	require.NoError(t, err)
	assert.Equal(t, VerdictDebunked, f.Verdict)
	assert.InDelta(t, 0.85, f.Confidence, 0.001)
	assert.Equal(t, "la cifra citada no existe", f.Rationale)
}

func TestEvidenceAgent(t *testing.T) {
	t.Run("abstains without evidence", func(t *testing.T) {
		agent := NewEvidenceAgent(&fixedProvider{response: "nunca llamado"})
		f, err := agent.Evaluate(context.Background(), &ragctx.VerificationContext{ClaimText: "afirmación"})
		require.NoError(t, err)
		assert.Equal(t, VerdictUnverified, f.Verdict)
	})

	t.Run("unknown verdict is rejected", func(t *testing.T) {
		agent := NewEvidenceAgent(&fixedProvider{
			response: `{"verdict": "quizás", "confidence": 0.5, "rationale": "x"}`,
		})
		_, err := agent.Evaluate(context.Background(), &ragctx.VerificationContext{
			ClaimText: "afirmación",
			Evidence:  []ragctx.EvidenceItem{{URL: "https://x", Snippet: "texto"}},
		})
		assert.Error(t, err)
	})

	t.Run("confidence clamped to unit range", func(t *testing.T) {
		agent := NewEvidenceAgent(&fixedProvider{
			response: `{"verdict": "verified", "confidence": 1.7, "rationale": "x"}`,
		})
		f, err := agent.Evaluate(context.Background(), &ragctx.VerificationContext{
			ClaimText: "afirmación",
			Evidence:  []ragctx.EvidenceItem{{URL: "https://x", Snippet: "texto"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 1.0, f.Confidence)
	})
}
