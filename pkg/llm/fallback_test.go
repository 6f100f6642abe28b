package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name     string
	response string
	err      error
	calls    int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Complete(ctx context.Context, req Request) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range out {
		out[i] = []float32{0.1, 0.2}
	}
	return out, nil
}

func TestFallbackProvider_Complete(t *testing.T) {
	t.Run("primary success skips fallback", func(t *testing.T) {
		primary := &fakeProvider{name: "primary", response: "ok"}
		fallback := &fakeProvider{name: "fallback", response: "never"}
		p := NewFallbackProvider(primary, fallback)

		out, err := p.Complete(context.Background(), Request{User: "hola"})
		require.NoError(t, err)
		assert.Equal(t, "ok", out)
		assert.Equal(t, 0, fallback.calls)
	})

	t.Run("primary failure falls through", func(t *testing.T) {
		primary := &fakeProvider{name: "primary", err: errors.New("connection refused")}
		fallback := &fakeProvider{name: "fallback", response: "rescued"}
		p := NewFallbackProvider(primary, fallback)

		out, err := p.Complete(context.Background(), Request{User: "hola"})
		require.NoError(t, err)
		assert.Equal(t, "rescued", out)
	})

	t.Run("both fail returns fallback error", func(t *testing.T) {
		primary := &fakeProvider{name: "primary", err: errors.New("primary down")}
		fallback := &fakeProvider{name: "fallback", err: errors.New("fallback down")}
		p := NewFallbackProvider(primary, fallback)

		_, err := p.Complete(context.Background(), Request{User: "hola"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fallback down")
	})

	t.Run("double hard failure surfaces as hard", func(t *testing.T) {
		primary := &fakeProvider{name: "primary", err: &ProviderError{Provider: "primary", StatusCode: 401}}
		fallback := &fakeProvider{name: "fallback", err: &ProviderError{Provider: "fallback", StatusCode: 402}}
		p := NewFallbackProvider(primary, fallback)

		_, err := p.Complete(context.Background(), Request{User: "hola"})
		require.Error(t, err)
		assert.True(t, IsHardFailure(err))
	})

	t.Run("cancelled context does not invoke fallback", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		primary := &fakeProvider{name: "primary", err: context.Canceled}
		fallback := &fakeProvider{name: "fallback", response: "never"}
		p := NewFallbackProvider(primary, fallback)

		cancel()
		_, err := p.Complete(ctx, Request{User: "hola"})
		require.Error(t, err)
		assert.Equal(t, 0, fallback.calls)
	})

	t.Run("nil fallback passes primary error through", func(t *testing.T) {
		primary := &fakeProvider{name: "primary", err: errors.New("down")}
		p := NewFallbackProvider(primary, nil)

		_, err := p.Complete(context.Background(), Request{User: "hola"})
		assert.Error(t, err)
	})
}

func TestIsHardFailure(t *testing.T) {
	assert.True(t, IsHardFailure(&ProviderError{StatusCode: 401}))
	assert.True(t, IsHardFailure(&ProviderError{StatusCode: 402}))
	assert.True(t, IsHardFailure(&ProviderError{StatusCode: 403}))
	assert.False(t, IsHardFailure(&ProviderError{StatusCode: 429}))
	assert.False(t, IsHardFailure(&ProviderError{StatusCode: 500}))
	assert.False(t, IsHardFailure(errors.New("plain")))
	assert.True(t, IsRateLimited(&ProviderError{StatusCode: 429}))
}
