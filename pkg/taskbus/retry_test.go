package taskbus

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veraz-project/veraz/ent"
)

func TestRetryPolicy_Backoff(t *testing.T) {
	policy := RetryPolicy{
		MaxAttempts:    5,
		InitialBackoff: 30 * time.Second,
		Multiplier:     2.0,
		Jitter:         0,
		MaxBackoff:     15 * time.Minute,
	}

	tests := []struct {
		name     string
		attempt  int
		expected time.Duration
	}{
		{"first failure", 1, 30 * time.Second},
		{"second failure doubles", 2, 60 * time.Second},
		{"third failure doubles again", 3, 120 * time.Second},
		{"attempt below one clamps to first", 0, 30 * time.Second},
		{"large attempt capped at max", 10, 15 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, policy.Backoff(tt.attempt))
		})
	}
}

func TestRetryPolicy_BackoffJitterBounds(t *testing.T) {
	policy := RetryPolicy{
		InitialBackoff: 30 * time.Second,
		Multiplier:     2.0,
		Jitter:         10 * time.Second,
		MaxBackoff:     15 * time.Minute,
	}

	for i := 0; i < 100; i++ {
		d := policy.Backoff(1)
		assert.GreaterOrEqual(t, d, 20*time.Second)
		assert.LessOrEqual(t, d, 40*time.Second)
	}
}

func TestRetryPolicy_BackoffNeverNegative(t *testing.T) {
	policy := RetryPolicy{
		InitialBackoff: time.Second,
		Multiplier:     1.0,
		Jitter:         time.Minute,
	}

	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, policy.Backoff(1), time.Duration(0))
	}
}

func TestRegistry_PolicyFallback(t *testing.T) {
	registry := NewRegistry()

	custom := RetryPolicy{
		MaxAttempts:    1,
		InitialBackoff: 5 * time.Second,
		Multiplier:     1.0,
	}
	registry.Register("compute_embedding", func(ctx context.Context, task *ent.Task) error {
		return nil
	}, custom)

	t.Run("registered name uses its policy", func(t *testing.T) {
		assert.Equal(t, custom, registry.Policy("compute_embedding"))
	})

	t.Run("unknown name falls back to default", func(t *testing.T) {
		assert.Equal(t, DefaultRetryPolicy(), registry.Policy("unregistered"))
	})

	t.Run("handler lookup", func(t *testing.T) {
		h, ok := registry.Handler("compute_embedding")
		require.True(t, ok)
		require.NotNil(t, h)

		_, ok = registry.Handler("unregistered")
		assert.False(t, ok)
	})

	t.Run("names lists registrations", func(t *testing.T) {
		assert.Equal(t, []string{"compute_embedding"}, registry.Names())
	})
}

func TestErrorClassification(t *testing.T) {
	t.Run("skip error", func(t *testing.T) {
		err := Skip("no verifiable claim")
		assert.True(t, IsSkip(err))
		assert.False(t, IsHold(err))
		assert.Contains(t, err.Error(), "no verifiable claim")
	})

	t.Run("hold error", func(t *testing.T) {
		err := Hold("search provider quota exhausted")
		assert.True(t, IsHold(err))
		assert.False(t, IsSkip(err))
		assert.Contains(t, err.Error(), "quota exhausted")
	})

	t.Run("wrapped errors are detected", func(t *testing.T) {
		wrapped := fmt.Errorf("processing source: %w", Skip("duplicate"))
		assert.True(t, IsSkip(wrapped))

		wrapped = fmt.Errorf("scraping: %w", Hold("invalid credentials"))
		assert.True(t, IsHold(wrapped))
	})

	t.Run("plain errors are neither", func(t *testing.T) {
		err := errors.New("connection refused")
		assert.False(t, IsSkip(err))
		assert.False(t, IsHold(err))
	})
}
