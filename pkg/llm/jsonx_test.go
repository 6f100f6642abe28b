package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type verdictPayload struct {
	Verdict    string  `json:"verdict"`
	Confidence float64 `json:"confidence"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{
			name:  "clean json",
			raw:   `{"verdict": "debunked", "confidence": 0.85}`,
			valid: true,
		},
		{
			name: "fenced with language tag",
			raw: "```json\n" +
				`{"verdict": "debunked", "confidence": 0.85}` +
				"\n```",
			valid: true,
		},
		{
			name: "fenced without language tag",
			raw: "```\n" +
				`{"verdict": "debunked", "confidence": 0.85}` +
				"\n```",
			valid: true,
		},
		{
			name:  "leading prose",
			raw:   `Here is my analysis: {"verdict": "debunked", "confidence": 0.85}`,
			valid: true,
		},
		{
			name:  "trailing comma repaired",
			raw:   `{"verdict": "debunked", "confidence": 0.85,}`,
			valid: true,
		},
		{
			name:  "single quotes repaired",
			raw:   `{'verdict': 'debunked', 'confidence': 0.85}`,
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out verdictPayload
			err := DecodeJSON(tt.raw, &out)
			if !tt.valid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "debunked", out.Verdict)
			assert.InDelta(t, 0.85, out.Confidence, 0.001)
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	t.Run("prose around fence is dropped", func(t *testing.T) {
		raw := "Sure, here's the JSON:\n```json\n{\"a\": 1}\n```\nLet me know if you need more."
		assert.Equal(t, `{"a": 1}`, stripCodeFence(raw))
	})

	t.Run("array extraction without fence", func(t *testing.T) {
		raw := `The entities are: [{"name": "BCRA"}] as requested.`
		assert.Equal(t, `[{"name": "BCRA"}]`, stripCodeFence(raw))
	})

	t.Run("no json at all passes through", func(t *testing.T) {
		assert.Equal(t, "SKIP", stripCodeFence("SKIP"))
	})
}
