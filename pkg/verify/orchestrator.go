package verify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/veraz-project/veraz/pkg/config"
	"github.com/veraz-project/veraz/pkg/ragctx"
)

// Orchestrator fans the claim out to the sub-agents and synthesizes the
// findings. Sub-agents run concurrently, each under its own timeout;
// results arrive on a buffered channel so a finished agent never blocks
// on a slow sibling.
type Orchestrator struct {
	agents []SubAgent
	cfg    *config.VerifyConfig
}

// NewOrchestrator wires the standard four sub-agents.
func NewOrchestrator(cfg *config.VerifyConfig, agents ...SubAgent) *Orchestrator {
	return &Orchestrator{agents: agents, cfg: cfg}
}

// agentResult is one sub-agent's delivery on the results channel.
type agentResult struct {
	agentName string
	finding   *Finding
	err       error
}

// Verify runs the full verification of one claim.
func (o *Orchestrator) Verify(ctx context.Context, vc *ragctx.VerificationContext) (*Outcome, error) {
	overallCtx, cancel := context.WithTimeout(ctx, o.cfg.OverallTimeout)
	defer cancel()

	resultsCh := make(chan agentResult, len(o.agents))

	for _, agent := range o.agents {
		go func() {
			agentCtx, cancelAgent := context.WithTimeout(overallCtx, o.cfg.SubAgentTimeout)
			defer cancelAgent()

			finding, err := agent.Evaluate(agentCtx, vc)
			resultsCh <- agentResult{agentName: agent.Name(), finding: finding, err: err}
		}()
	}

	findings := make([]Finding, 0, len(o.agents))
	for range o.agents {
		select {
		case res := <-resultsCh:
			if res.err != nil {
				slog.Warn("Sub-agent failed, continuing without its finding",
					"agent", res.agentName, "error", res.err)
				continue
			}
			findings = append(findings, *res.finding)
		case <-overallCtx.Done():
			// Whatever arrived so far is all we get.
			slog.Warn("Verification timed out waiting for sub-agents",
				"collected", len(findings), "total", len(o.agents))
			return o.finish(findings, len(vc.Evidence))
		}
	}
	return o.finish(findings, len(vc.Evidence))
}

func (o *Orchestrator) finish(findings []Finding, evidenceCount int) (*Outcome, error) {
	if len(findings) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientAgents, len(findings))
	}
	outcome := Synthesize(findings, evidenceCount)
	slog.Info("Verification synthesized",
		"verdict", outcome.Verdict,
		"confidence", outcome.Confidence,
		"strength", outcome.EvidenceStrength,
		"findings", len(findings))
	return outcome, nil
}
