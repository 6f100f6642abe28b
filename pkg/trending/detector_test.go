package trending

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/pkg/config"
)

func testDetector() *Detector {
	taxonomy := &config.Taxonomy{
		Topics: []config.TaxonomyTopic{
			{Slug: "economia", Name: "Economía", Keywords: []string{"inflación", "dólar", "tasa"}},
			{Slug: "elecciones", Name: "Elecciones", Keywords: []string{"elecciones", "votos", "padrón"}},
		},
	}
	return NewDetector(nil, nil, taxonomy, config.DefaultTrendingConfig())
}

func TestTokenize(t *testing.T) {
	d := testDetector()

	t.Run("drops stop words and short tokens", func(t *testing.T) {
		words := d.tokenize("El dólar subió más que la inflación en el año")
		assert.Equal(t, []string{"dólar", "subió", "inflación"}, words)
	})

	t.Run("keeps accented letters intact", func(t *testing.T) {
		words := d.tokenize("inflación, devaluación; déficit!")
		assert.Equal(t, []string{"inflación", "devaluación", "déficit"}, words)
	})

	t.Run("empty text yields nothing", func(t *testing.T) {
		assert.Empty(t, d.tokenize(""))
	})
}

func TestCollect(t *testing.T) {
	d := testDetector()
	now := time.Now()
	halfPoint := now.Add(-12 * time.Hour)
	claimID := "claim-1"

	sources := []*ent.Source{
		{Platform: "news_rss", Content: "inflación récord según INDEC", CapturedAt: now.Add(-1 * time.Hour), ClaimID: &claimID},
		{Platform: "social_short", Content: "inflación imparable dicen todos", CapturedAt: now.Add(-2 * time.Hour)},
		{Platform: "news_rss", Content: "inflación baja lentamente", CapturedAt: now.Add(-20 * time.Hour)},
	}

	candidates := d.collect(sources, halfPoint)
	c, ok := candidates["inflación"]
	if !ok {
		t.Fatal("expected candidate for inflación")
	}
	assert.Equal(t, 3, c.total)
	assert.Equal(t, 2, c.recent)
	assert.Len(t, c.platforms, 2)
	assert.True(t, c.claimIDs["claim-1"])

	t.Run("bigrams are candidates too", func(t *testing.T) {
		_, ok := candidates["inflación récord"]
		assert.True(t, ok)
	})

	t.Run("phrase counted once per source", func(t *testing.T) {
		repeated := []*ent.Source{
			{Platform: "forum", Content: "dólar dólar dólar", CapturedAt: now},
		}
		got := d.collect(repeated, halfPoint)
		assert.Equal(t, 1, got["dólar"].total)
	})
}

func TestScore(t *testing.T) {
	d := testDetector()

	t.Run("accelerating phrase outranks a fading one", func(t *testing.T) {
		rising := d.score(&candidate{
			name: "dólar", keywords: []string{"dólar"},
			total: 10, recent: 9,
			platforms: map[string]bool{"news_rss": true, "social_short": true},
		}, 0)
		fading := d.score(&candidate{
			name: "censo", keywords: []string{"censo"},
			total: 10, recent: 1,
			platforms: map[string]bool{"news_rss": true, "social_short": true},
		}, 0)
		assert.Greater(t, rising.Priority, fading.Priority)
	})

	t.Run("misinformation risk raises priority", func(t *testing.T) {
		base := &candidate{
			name: "elecciones", keywords: []string{"elecciones"},
			total: 6, recent: 3,
			platforms: map[string]bool{"forum": true},
		}
		risky := d.score(base, 1.0)
		clean := d.score(base, 0.0)
		assert.Greater(t, risky.Priority, clean.Priority)
		assert.Equal(t, 1.0, risky.Risk)
	})

	t.Run("taxonomy keyword gives full relevance", func(t *testing.T) {
		in := d.score(&candidate{
			name: "inflación", keywords: []string{"inflación"},
			total: 5, recent: 3, platforms: map[string]bool{"news_rss": true},
		}, 0)
		assert.Equal(t, 1.0, in.Relevance)

		out := d.score(&candidate{
			name: "asado", keywords: []string{"asado"},
			total: 5, recent: 3, platforms: map[string]bool{"news_rss": true},
		}, 0)
		assert.Equal(t, 0.0, out.Relevance)
	})

	t.Run("correlation saturates at all platforms", func(t *testing.T) {
		all := map[string]bool{"a": true, "b": true, "c": true, "d": true, "e": true, "f": true}
		in := d.score(&candidate{name: "x", keywords: []string{"x"}, total: 5, recent: 3, platforms: all}, 0)
		assert.Equal(t, 1.0, in.Correlation)
	})

	t.Run("scores stay within unit range", func(t *testing.T) {
		in := d.score(&candidate{
			name: "dólar", keywords: []string{"dólar"},
			total: 100, recent: 100,
			platforms: map[string]bool{"news_rss": true},
		}, 1.0)
		for _, v := range []float64{in.TrendScore, in.Velocity, in.Correlation, in.Relevance, in.Risk} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
		assert.LessOrEqual(t, in.Priority, 1.0)
	})
}
