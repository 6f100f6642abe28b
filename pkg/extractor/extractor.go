// Package extractor distills a scraped source into a single verifiable
// factual claim, or decides the content has none.
package extractor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/veraz-project/veraz/pkg/llm"
)

// MaxClaimLength caps extracted claim text.
const MaxClaimLength = 500

// skipSentinel is the exact token the model returns for content with no
// verifiable claim.
const skipSentinel = "SKIP"

const systemPrompt = `Sos un analista de verificación de hechos especializado en noticias políticas en español.

Dado el texto de una publicación, extraé LA afirmación fáctica central y verificable, reformulada como una oración declarativa, autocontenida y en español neutro. Resolvé pronombres y referencias implícitas usando el contexto de la publicación.

Reglas:
- Respondé ÚNICAMENTE con la afirmación, sin comillas ni explicación.
- Máximo 500 caracteres.
- Si el texto no contiene ninguna afirmación fáctica verificable (opinión pura, humor, pregunta, spam), respondé exactamente: SKIP`

// ErrNoClaim indicates the content carries no verifiable factual claim.
// It is a terminal outcome for the source, not a failure.
var ErrNoClaim = fmt.Errorf("content contains no verifiable claim")

// Extractor runs claim extraction over an LLM provider.
type Extractor struct {
	provider llm.Provider
	timeout  time.Duration
}

// New builds an extractor. timeout bounds the single provider call.
func New(provider llm.Provider, timeout time.Duration) *Extractor {
	return &Extractor{provider: provider, timeout: timeout}
}

// Extract returns the central verifiable claim of the content, or
// ErrNoClaim. Extraction runs at low temperature so the same content
// yields stable phrasing.
func (e *Extractor) Extract(ctx context.Context, content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrNoClaim
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	temperature := 0.1
	raw, err := e.provider.Complete(callCtx, llm.Request{
		System:      systemPrompt,
		User:        content,
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("claim extraction failed: %w", err)
	}

	claim := strings.TrimSpace(raw)
	claim = strings.Trim(claim, `"“”`)

	if claim == "" || strings.EqualFold(claim, skipSentinel) {
		return "", ErrNoClaim
	}
	if len(claim) > MaxClaimLength {
		claim = truncateRunes(claim, MaxClaimLength)
	}
	return claim, nil
}

// truncateRunes cuts at the limit without splitting a UTF-8 sequence.
func truncateRunes(s string, limit int) string {
	cut := s[:limit]
	for len(cut) > 0 && cut[len(cut)-1]&0xC0 == 0x80 {
		cut = cut[:len(cut)-1]
	}
	return cut
}
