package llm

import (
	"context"
	"log/slog"
)

// FallbackProvider tries the primary provider first and falls back to the
// secondary on any error except context cancellation. Hard failures
// (auth, quota) on the primary still allow the fallback a chance; the
// composite only reports a hard failure when both providers hit one.
type FallbackProvider struct {
	primary  Provider
	fallback Provider
}

// NewFallbackProvider composes two providers. fallback may be nil, in
// which case the composite is just the primary.
func NewFallbackProvider(primary, fallback Provider) *FallbackProvider {
	return &FallbackProvider{primary: primary, fallback: fallback}
}

// Name identifies the composite in logs.
func (f *FallbackProvider) Name() string { return f.primary.Name() + "+fallback" }

// Complete tries primary then fallback.
func (f *FallbackProvider) Complete(ctx context.Context, req Request) (string, error) {
	out, err := f.primary.Complete(ctx, req)
	if err == nil {
		return out, nil
	}
	if f.fallback == nil || ctx.Err() != nil {
		return "", err
	}

	slog.Warn("Primary LLM provider failed, trying fallback",
		"primary", f.primary.Name(), "fallback", f.fallback.Name(), "error", err)

	out, ferr := f.fallback.Complete(ctx, req)
	if ferr == nil {
		return out, nil
	}
	// Prefer the hard-failure error so callers park the task instead of
	// retrying a dead credential pair.
	if IsHardFailure(err) && IsHardFailure(ferr) {
		return "", err
	}
	return "", ferr
}

// Embed tries primary then fallback.
func (f *FallbackProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	out, err := f.primary.Embed(ctx, texts)
	if err == nil {
		return out, nil
	}
	if f.fallback == nil || ctx.Err() != nil {
		return nil, err
	}

	slog.Warn("Primary embedding provider failed, trying fallback",
		"primary", f.primary.Name(), "fallback", f.fallback.Name(), "error", err)
	return f.fallback.Embed(ctx, texts)
}
