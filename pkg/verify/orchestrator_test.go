package verify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veraz-project/veraz/pkg/config"
	"github.com/veraz-project/veraz/pkg/ragctx"
)

type fakeAgent struct {
	name    string
	finding *Finding
	err     error
	delay   time.Duration
}

func (f *fakeAgent) Name() string { return f.name }

func (f *fakeAgent) Evaluate(ctx context.Context, vc *ragctx.VerificationContext) (*Finding, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.finding, f.err
}

func testVerifyConfig() *config.VerifyConfig {
	return &config.VerifyConfig{
		OverallTimeout:   2 * time.Second,
		SubAgentTimeout:  time.Second,
		MaxProviderCalls: 8,
	}
}

func TestOrchestrator_AllAgentsSucceed(t *testing.T) {
	o := NewOrchestrator(testVerifyConfig(),
		&fakeAgent{name: "a", finding: &Finding{Agent: "a", Verdict: VerdictVerified, Confidence: 0.8}},
		&fakeAgent{name: "b", finding: &Finding{Agent: "b", Verdict: VerdictVerified, Confidence: 0.75}},
		&fakeAgent{name: "c", finding: &Finding{Agent: "c", Verdict: VerdictVerified, Confidence: 0.7}},
	)

	out, err := o.Verify(context.Background(), &ragctx.VerificationContext{ClaimText: "afirmación"})
	require.NoError(t, err)
	assert.Equal(t, VerdictVerified, out.Verdict)
	assert.Equal(t, StrengthStrong, out.EvidenceStrength)
	assert.Len(t, out.Findings, 3)
}

func TestOrchestrator_FailedAgentDropped(t *testing.T) {
	o := NewOrchestrator(testVerifyConfig(),
		&fakeAgent{name: "a", finding: &Finding{Agent: "a", Verdict: VerdictDebunked, Confidence: 0.8}},
		&fakeAgent{name: "b", finding: &Finding{Agent: "b", Verdict: VerdictDebunked, Confidence: 0.7}},
		&fakeAgent{name: "c", err: errors.New("provider down")},
	)

	out, err := o.Verify(context.Background(), &ragctx.VerificationContext{})
	require.NoError(t, err)
	assert.Len(t, out.Findings, 2)
}

func TestOrchestrator_InsufficientFindings(t *testing.T) {
	o := NewOrchestrator(testVerifyConfig(),
		&fakeAgent{name: "a", finding: &Finding{Agent: "a", Verdict: VerdictVerified, Confidence: 0.9}},
		&fakeAgent{name: "b", err: errors.New("down")},
		&fakeAgent{name: "c", err: errors.New("down")},
	)

	_, err := o.Verify(context.Background(), &ragctx.VerificationContext{})
	assert.ErrorIs(t, err, ErrInsufficientAgents)
}

func TestOrchestrator_SlowAgentTimesOut(t *testing.T) {
	cfg := &config.VerifyConfig{
		OverallTimeout:  300 * time.Millisecond,
		SubAgentTimeout: 100 * time.Millisecond,
	}
	o := NewOrchestrator(cfg,
		&fakeAgent{name: "fast1", finding: &Finding{Agent: "fast1", Verdict: VerdictVerified, Confidence: 0.8}},
		&fakeAgent{name: "fast2", finding: &Finding{Agent: "fast2", Verdict: VerdictVerified, Confidence: 0.7}},
		&fakeAgent{name: "slow", delay: 5 * time.Second,
			finding: &Finding{Agent: "slow", Verdict: VerdictDebunked, Confidence: 0.9}},
	)

	out, err := o.Verify(context.Background(), &ragctx.VerificationContext{})
	require.NoError(t, err)
	assert.Len(t, out.Findings, 2, "slow agent's finding is not waited for")
	assert.Equal(t, VerdictVerified, out.Verdict)
}
