package classify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veraz-project/veraz/pkg/config"
	"github.com/veraz-project/veraz/pkg/llm"
)

type fixedProvider struct {
	response string
}

func (f *fixedProvider) Name() string { return "fixed" }

func (f *fixedProvider) Complete(ctx context.Context, req llm.Request) (string, error) {
	return f.response, nil
}

func (f *fixedProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, nil
}

func testTaxonomy() *config.Taxonomy {
	return &config.Taxonomy{Topics: []config.TaxonomyTopic{
		{Slug: "economia", Name: "Economía"},
		{Slug: "elecciones", Name: "Elecciones"},
		{Slug: "seguridad", Name: "Seguridad"},
	}}
}

func TestClassifier_Classify(t *testing.T) {
	provider := &fixedProvider{response: `{
		"entities": [
			{"name": "BCRA", "kind": "organization"},
			{"name": "Banco Central", "kind": "organization"},
			{"name": "Sergio Pérez", "kind": "person"}
		],
		"topics": [
			{"slug": "economia", "confidence": 0.9},
			{"slug": "elecciones", "confidence": 0.3},
			{"slug": "deportes", "confidence": 0.95}
		]
	}`}

	c := New(provider, testTaxonomy(), 20*time.Second)
	result, err := c.Classify(context.Background(), "El BCRA intervino en el mercado cambiario")
	require.NoError(t, err)

	t.Run("aliases collapse to one canonical entity", func(t *testing.T) {
		require.Len(t, result.Entities, 2)
		assert.Equal(t, "Banco Central de la República Argentina", result.Entities[0].Name)
		assert.Equal(t, "Sergio Pérez", result.Entities[1].Name)
	})

	t.Run("low-confidence and off-taxonomy topics dropped", func(t *testing.T) {
		require.Len(t, result.Topics, 1)
		assert.Equal(t, "economia", result.Topics[0].Slug)
	})
}

func TestClassifier_TopicsCappedAtThree(t *testing.T) {
	provider := &fixedProvider{response: `{
		"entities": [],
		"topics": [
			{"slug": "economia", "confidence": 0.7},
			{"slug": "elecciones", "confidence": 0.9},
			{"slug": "seguridad", "confidence": 0.6},
			{"slug": "salud", "confidence": 0.8},
			{"slug": "justicia", "confidence": 0.55}
		]
	}`}
	taxonomy := &config.Taxonomy{Topics: []config.TaxonomyTopic{
		{Slug: "economia", Name: "Economía"},
		{Slug: "elecciones", Name: "Elecciones"},
		{Slug: "seguridad", Name: "Seguridad"},
		{Slug: "salud", Name: "Salud"},
		{Slug: "justicia", Name: "Justicia"},
	}}

	c := New(provider, taxonomy, 20*time.Second)
	result, err := c.Classify(context.Background(), "una afirmación que toca todos los temas")
	require.NoError(t, err)

	require.Len(t, result.Topics, MaxTopicsPerClaim)
	assert.Equal(t, "elecciones", result.Topics[0].Slug)
	assert.Equal(t, "salud", result.Topics[1].Slug)
	assert.Equal(t, "economia", result.Topics[2].Slug)
}

func TestClassifier_KnownEntities(t *testing.T) {
	c := New(&fixedProvider{}, testTaxonomy(), time.Second)

	t.Run("aliases resolve and deduplicate", func(t *testing.T) {
		hints := c.KnownEntities("El BCRA respondió al Banco Central de Brasil; el INDEC no opinó")
		assert.Equal(t, []string{
			"Banco Central de la República Argentina",
			"Instituto Nacional de Estadística y Censos",
		}, hints)
	})

	t.Run("matches respect word boundaries", func(t *testing.T) {
		assert.Empty(t, c.KnownEntities("se acaba la plata"), "caba must not match inside acabar")
		assert.Equal(t, []string{"Ciudad Autónoma de Buenos Aires"},
			c.KnownEntities("el gobierno de CABA anunció obras"))
	})

	t.Run("no aliases yields nothing", func(t *testing.T) {
		assert.Empty(t, c.KnownEntities("la inflación de marzo fue del 11%"))
	})
}

func TestClassifier_Canonicalize(t *testing.T) {
	c := New(&fixedProvider{}, testTaxonomy(), time.Second)

	assert.Equal(t, "Instituto Nacional de Estadística y Censos", c.Canonicalize("INDEC"))
	assert.Equal(t, "Instituto Nacional de Estadística y Censos", c.Canonicalize("indec"))
	assert.Equal(t, "Juana Molina", c.Canonicalize("  Juana   Molina "))
	assert.Equal(t, "", c.Canonicalize("   "))
}

func TestNormalizeKind(t *testing.T) {
	assert.Equal(t, "person", normalizeKind("Persona"))
	assert.Equal(t, "location", normalizeKind("lugar"))
	assert.Equal(t, "institution", normalizeKind("institución"))
	assert.Equal(t, "organization", normalizeKind("algo raro"))
}
