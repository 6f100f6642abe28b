package verify

import (
	"fmt"
	"sort"
	"strings"
)

// MaxExplanationLength caps the reader-facing explanation.
const MaxExplanationLength = 280

// Synthesize combines sub-agent findings into a verdict. evidenceCount is
// how many evidence items the agents saw. The function is deterministic:
// the same inputs always produce the same outcome.
//
// Rules, in order:
//  1. Any contextual-manipulation flag forces a misleading verdict.
//  2. Three or more agents agreeing with mean confidence >= 0.7 settles
//     the verdict with strong evidence.
//  3. A strict majority with mean confidence >= 0.5 settles it with
//     moderate evidence.
//  4. A verified/debunked split with no majority resolves to unverified.
//  5. Anything else is unverified with weak evidence, or insufficient
//     when fewer than three findings arrived or no evidence was gathered.
func Synthesize(findings []Finding, evidenceCount int) *Outcome {
	byVerdict := make(map[string][]Finding)
	for _, f := range findings {
		byVerdict[f.Verdict] = append(byVerdict[f.Verdict], f)
	}

	if manipulated(findings) {
		supporters := byVerdict[VerdictMisleading]
		confidence := meanConfidence(supporters)
		if confidence == 0 {
			// Flag came from agents voting another verdict; inherit their
			// certainty about the content itself.
			confidence = meanConfidence(findings)
		}
		return buildOutcome(VerdictMisleading, confidence, strengthFor(len(supporters), confidence), findings)
	}

	verdict, supporters := topVerdict(byVerdict)
	confidence := meanConfidence(supporters)

	switch {
	case len(supporters) >= 3 && confidence >= 0.7:
		return buildOutcome(verdict, confidence, StrengthStrong, findings)
	case len(supporters)*2 > len(findings) && confidence >= 0.5:
		return buildOutcome(verdict, confidence, StrengthModerate, findings)
	}

	// Verified and debunked in direct contradiction cancel out.
	if len(byVerdict[VerdictVerified]) > 0 && len(byVerdict[VerdictDebunked]) > 0 {
		return buildOutcome(VerdictUnverified, meanConfidence(findings)*0.5, StrengthWeak, findings)
	}

	strength := StrengthWeak
	if len(findings) < 3 || evidenceCount == 0 {
		strength = StrengthInsufficient
	}
	return buildOutcome(VerdictUnverified, meanConfidence(findings)*0.6, strength, findings)
}

// manipulated reports whether any finding flagged contextual manipulation.
func manipulated(findings []Finding) bool {
	for _, f := range findings {
		if f.ContextualManipulation {
			return true
		}
	}
	return false
}

// topVerdict returns the verdict with the most supporters; ties break
// deterministically by verdict name so synthesis stays reproducible.
func topVerdict(byVerdict map[string][]Finding) (string, []Finding) {
	verdicts := make([]string, 0, len(byVerdict))
	for v := range byVerdict {
		verdicts = append(verdicts, v)
	}
	sort.Strings(verdicts)

	best := ""
	for _, v := range verdicts {
		if best == "" || len(byVerdict[v]) > len(byVerdict[best]) {
			best = v
		}
	}
	return best, byVerdict[best]
}

func meanConfidence(findings []Finding) float64 {
	if len(findings) == 0 {
		return 0
	}
	var sum float64
	for _, f := range findings {
		sum += f.Confidence
	}
	return sum / float64(len(findings))
}

func strengthFor(supporters int, confidence float64) string {
	switch {
	case supporters >= 3 && confidence >= 0.7:
		return StrengthStrong
	case supporters >= 2 && confidence >= 0.5:
		return StrengthModerate
	default:
		return StrengthWeak
	}
}

func buildOutcome(verdict string, confidence float64, strength string, findings []Finding) *Outcome {
	needsReview := false
	priority := PriorityNone
	switch {
	case confidence < 0.4:
		needsReview = true
		priority = PriorityHigh
	case confidence < 0.6:
		needsReview = true
		priority = PriorityMedium
	}

	return &Outcome{
		Verdict:          verdict,
		Confidence:       confidence,
		EvidenceStrength: strength,
		Explanation:      buildExplanation(verdict, findings),
		NeedsReview:      needsReview,
		ReviewPriority:   priority,
		Findings:         findings,
	}
}

// buildExplanation picks the highest-confidence rationale among the
// findings supporting the verdict, falling back to a generic line, and
// caps it at MaxExplanationLength.
func buildExplanation(verdict string, findings []Finding) string {
	best := ""
	bestConf := -1.0
	for _, f := range findings {
		if f.Verdict == verdict && f.Rationale != "" && f.Confidence > bestConf {
			best = f.Rationale
			bestConf = f.Confidence
		}
	}
	if best == "" {
		best = fmt.Sprintf("Síntesis de %d evaluaciones independientes sin consenso suficiente.", len(findings))
	}
	return truncateExplanation(best)
}

// truncateExplanation caps at MaxExplanationLength without splitting a
// UTF-8 sequence, preferring a word boundary.
func truncateExplanation(s string) string {
	if len(s) <= MaxExplanationLength {
		return s
	}
	cut := s[:MaxExplanationLength]
	for len(cut) > 0 && cut[len(cut)-1]&0xC0 == 0x80 {
		cut = cut[:len(cut)-1]
	}
	if idx := strings.LastIndexByte(cut, ' '); idx > MaxExplanationLength/2 {
		cut = cut[:idx]
	}
	return cut
}
