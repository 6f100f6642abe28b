// Package llm provides the chat-completion and embedding clients used by
// the extraction and verification stages. All providers speak the
// OpenAI-compatible HTTP JSON surface.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// Request is a single chat completion call.
type Request struct {
	// System is the system prompt.
	System string
	// User is the user message.
	User string
	// Model overrides the provider's default model when non-empty.
	Model string
	// Temperature overrides the provider default when non-nil.
	Temperature *float64
	// MaxTokens overrides the provider default when > 0.
	MaxTokens int
}

// Provider generates completions and embeddings.
type Provider interface {
	// Complete returns the raw assistant message content.
	Complete(ctx context.Context, req Request) (string, error)
	// Embed returns one vector per input text, in order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	// Name identifies the provider in logs.
	Name() string
}

// ProviderError is a non-2xx response from a provider.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// IsHardFailure reports whether err is a provider failure that retrying
// will not fix: bad credentials or exhausted quota. Callers park the task
// for operator intervention instead of burning attempts.
func IsHardFailure(err error) bool {
	var pe *ProviderError
	if !errors.As(err, &pe) {
		return false
	}
	switch pe.StatusCode {
	case 401, 402, 403:
		return true
	}
	return false
}

// IsRateLimited reports whether err is a 429 response.
func IsRateLimited(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.StatusCode == 429
}
