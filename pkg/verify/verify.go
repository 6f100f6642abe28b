// Package verify runs the multi-agent verification of a claim. Four
// specialist sub-agents evaluate the claim independently; a deterministic
// synthesizer combines their findings into a verdict.
package verify

import (
	"context"
	"errors"

	"github.com/veraz-project/veraz/pkg/ragctx"
)

// Verdict values. Stored on the claim and shown to readers.
const (
	VerdictVerified   = "verified"
	VerdictDebunked   = "debunked"
	VerdictMisleading = "misleading"
	VerdictUnverified = "unverified"
)

// Evidence strength values.
const (
	StrengthStrong       = "strong"
	StrengthModerate     = "moderate"
	StrengthWeak         = "weak"
	StrengthInsufficient = "insufficient"
)

// Review priority values.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
	PriorityNone   = "none"
)

// ErrInsufficientAgents indicates fewer than two sub-agents produced a
// finding; the verification is retried rather than synthesized from a
// single opinion.
var ErrInsufficientAgents = errors.New("fewer than two sub-agent findings")

// Finding is one sub-agent's independent evaluation.
type Finding struct {
	Agent      string  `json:"agent"`
	Verdict    string  `json:"verdict"`
	Confidence float64 `json:"confidence"`
	Rationale  string  `json:"rationale"`
	// ContextualManipulation flags technically-true content presented in
	// a misleading frame. Any agent raising it steers the synthesis
	// toward a misleading verdict.
	ContextualManipulation bool `json:"contextual_manipulation"`
}

// SubAgent evaluates a claim against the verification context.
type SubAgent interface {
	Name() string
	Evaluate(ctx context.Context, vc *ragctx.VerificationContext) (*Finding, error)
}

// Outcome is the synthesized verification result.
type Outcome struct {
	Verdict          string  `json:"verdict"`
	Confidence       float64 `json:"confidence"`
	EvidenceStrength string  `json:"evidence_strength"`
	// Explanation is the reader-facing summary, at most 280 characters.
	Explanation    string    `json:"explanation"`
	NeedsReview    bool      `json:"needs_review"`
	ReviewPriority string    `json:"review_priority"`
	Findings       []Finding `json:"findings"`
}
