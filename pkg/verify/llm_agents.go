package verify

import (
	"context"
	"fmt"
	"strings"

	"github.com/veraz-project/veraz/pkg/llm"
	"github.com/veraz-project/veraz/pkg/ragctx"
)

// llmFinding is the JSON shape both LLM sub-agents request.
type llmFinding struct {
	Verdict                string  `json:"verdict"`
	Confidence             float64 `json:"confidence"`
	Rationale              string  `json:"rationale"`
	ContextualManipulation bool    `json:"contextual_manipulation"`
}

const consistencySystemPrompt = `Sos un verificador de hechos. Evaluá la consistencia lógica interna de la afirmación: ¿es plausible, internamente coherente, y compatible con el conocimiento general? No uses evidencia externa; evaluá solo la afirmación.

Respondé ÚNICAMENTE con JSON:
{"verdict": "verified|debunked|misleading|unverified", "confidence": 0.0-1.0, "rationale": "una oración en español", "contextual_manipulation": false}`

const evidenceSystemPrompt = `Sos un verificador de hechos. Evaluá la afirmación contra la evidencia provista. Marcá "contextual_manipulation": true si la afirmación es técnicamente cierta pero está presentada de forma engañosa (cifras fuera de contexto, causalidad inventada, omisión clave).

Respondé ÚNICAMENTE con JSON:
{"verdict": "verified|debunked|misleading|unverified", "confidence": 0.0-1.0, "rationale": "una oración en español", "contextual_manipulation": false}`

// ConsistencyAgent asks the model whether the claim is internally
// coherent and plausible, without external evidence.
type ConsistencyAgent struct {
	provider llm.Provider
}

// NewConsistencyAgent builds the logical-consistency sub-agent.
func NewConsistencyAgent(provider llm.Provider) *ConsistencyAgent {
	return &ConsistencyAgent{provider: provider}
}

// Name identifies the agent in findings.
func (a *ConsistencyAgent) Name() string { return "logical_consistency" }

// Evaluate runs the consistency check.
func (a *ConsistencyAgent) Evaluate(ctx context.Context, vc *ragctx.VerificationContext) (*Finding, error) {
	return completeFinding(ctx, a.provider, a.Name(), consistencySystemPrompt, vc.ClaimText)
}

// EvidenceAgent asks the model to weigh the claim against the fetched
// evidence texts.
type EvidenceAgent struct {
	provider llm.Provider
}

// NewEvidenceAgent builds the evidence-analysis sub-agent.
func NewEvidenceAgent(provider llm.Provider) *EvidenceAgent {
	return &EvidenceAgent{provider: provider}
}

// Name identifies the agent in findings.
func (a *EvidenceAgent) Name() string { return "evidence_analysis" }

// Evaluate runs the evidence analysis. Without any evidence the agent
// abstains with an unverified low-confidence finding instead of asking
// the model to hallucinate.
func (a *EvidenceAgent) Evaluate(ctx context.Context, vc *ragctx.VerificationContext) (*Finding, error) {
	if len(vc.Evidence) == 0 {
		return &Finding{
			Agent:      a.Name(),
			Verdict:    VerdictUnverified,
			Confidence: 0.2,
			Rationale:  "sin evidencia disponible para analizar",
		}, nil
	}

	var sb strings.Builder
	sb.WriteString("AFIRMACIÓN:\n")
	sb.WriteString(vc.ClaimText)
	sb.WriteString("\n\nEVIDENCIA:\n")
	for i, ev := range vc.Evidence {
		fmt.Fprintf(&sb, "[%d] (%s, tier %d) %s\n", i+1, ev.URL, ev.Tier, ev.Title)
		if ev.Text != "" {
			sb.WriteString(ev.Text)
		} else {
			sb.WriteString(ev.Snippet)
		}
		sb.WriteString("\n\n")
	}

	return completeFinding(ctx, a.provider, a.Name(), evidenceSystemPrompt, sb.String())
}

// completeFinding runs one provider call and decodes the finding.
func completeFinding(ctx context.Context, provider llm.Provider, agentName, system, user string) (*Finding, error) {
	temperature := 0.2
	raw, err := provider.Complete(ctx, llm.Request{
		System:      system,
		User:        user,
		Temperature: &temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%s provider call failed: %w", agentName, err)
	}

	var parsed llmFinding
	if err := llm.DecodeJSON(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%s returned undecodable finding: %w", agentName, err)
	}

	verdict := normalizeVerdict(parsed.Verdict)
	if verdict == "" {
		return nil, fmt.Errorf("%s returned unknown verdict %q", agentName, parsed.Verdict)
	}
	confidence := parsed.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return &Finding{
		Agent:                  agentName,
		Verdict:                verdict,
		Confidence:             confidence,
		Rationale:              strings.TrimSpace(parsed.Rationale),
		ContextualManipulation: parsed.ContextualManipulation,
	}, nil
}

func normalizeVerdict(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case VerdictVerified:
		return VerdictVerified
	case VerdictDebunked:
		return VerdictDebunked
	case VerdictMisleading:
		return VerdictMisleading
	case VerdictUnverified:
		return VerdictUnverified
	}
	return ""
}
