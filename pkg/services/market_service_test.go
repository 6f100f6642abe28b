package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveProbability(t *testing.T) {
	t.Run("yes trade raises yes_prob", func(t *testing.T) {
		moved := moveProbability(0.5, 0, "yes", 100)
		assert.Greater(t, moved, 0.5)
	})

	t.Run("no trade lowers yes_prob", func(t *testing.T) {
		moved := moveProbability(0.5, 0, "no", 100)
		assert.Less(t, moved, 0.5)
	})

	t.Run("same trade moves a deep market less", func(t *testing.T) {
		shallow := moveProbability(0.5, 0, "yes", 100)
		deep := moveProbability(0.5, 10000, "yes", 100)
		assert.Greater(t, shallow, deep)
	})

	t.Run("price never reaches certainty", func(t *testing.T) {
		moved := moveProbability(0.98, 0, "yes", 1e9)
		assert.LessOrEqual(t, moved, 0.99)

		moved = moveProbability(0.02, 0, "no", 1e9)
		assert.GreaterOrEqual(t, moved, 0.01)
	})

	t.Run("complement invariant holds", func(t *testing.T) {
		for _, side := range []string{"yes", "no"} {
			yes := moveProbability(0.37, 250, side, 75)
			no := 1 - yes
			assert.InDelta(t, 1.0, yes+no, probEpsilon)
		}
	})
}

func TestSlugify(t *testing.T) {
	slug := slugify("¿El BCRA subirá la tasa en marzo?")
	assert.True(t, strings.HasPrefix(slug, "el-bcra-subir"), slug)
	assert.NotContains(t, slug, " ")
	assert.NotContains(t, slug, "?")

	t.Run("slugs are unique per call", func(t *testing.T) {
		assert.NotEqual(t, slugify("misma pregunta"), slugify("misma pregunta"))
	})

	t.Run("long questions are bounded", func(t *testing.T) {
		slug := slugify(strings.Repeat("palabra ", 40))
		assert.LessOrEqual(t, len(slug), 90)
	})
}
