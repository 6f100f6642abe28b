package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veraz-project/veraz/pkg/config"
)

func TestSeedTradeSize(t *testing.T) {
	t.Run("floor confidence buys the minimum", func(t *testing.T) {
		assert.Equal(t, 50.0, SeedTradeSize(0.4, 0.4, 50, 200))
	})

	t.Run("full confidence buys the maximum", func(t *testing.T) {
		assert.Equal(t, 200.0, SeedTradeSize(1.0, 0.4, 50, 200))
	})

	t.Run("mid confidence lands in between", func(t *testing.T) {
		size := SeedTradeSize(0.7, 0.4, 50, 200)
		assert.Greater(t, size, 50.0)
		assert.Less(t, size, 200.0)
	})

	t.Run("monotonic in confidence", func(t *testing.T) {
		prev := 0.0
		for c := 0.4; c <= 1.0; c += 0.1 {
			size := SeedTradeSize(c, 0.4, 50, 200)
			assert.GreaterOrEqual(t, size, prev)
			prev = size
		}
	})

	t.Run("below floor clamps to minimum", func(t *testing.T) {
		assert.Equal(t, 50.0, SeedTradeSize(0.1, 0.4, 50, 200))
	})
}

func TestTradeSide(t *testing.T) {
	assert.Equal(t, "yes", TradeSide(0.8))
	assert.Equal(t, "yes", TradeSide(0.5))
	assert.Equal(t, "no", TradeSide(0.3))
}

func TestShouldAdjust(t *testing.T) {
	cfg := &config.MarketConfig{
		Tier2MinConfidence: 0.6,
		Tier2MinDivergence: 0.15,
		Tier2MaxTrades:     10,
	}

	t.Run("all gates pass", func(t *testing.T) {
		assert.True(t, ShouldAdjust(cfg, 0.7, 0.8, 0.5, 3))
	})

	t.Run("low confidence blocks", func(t *testing.T) {
		assert.False(t, ShouldAdjust(cfg, 0.55, 0.8, 0.5, 3))
	})

	t.Run("small divergence blocks", func(t *testing.T) {
		assert.False(t, ShouldAdjust(cfg, 0.7, 0.6, 0.5, 3))
	})

	t.Run("divergence exactly at threshold passes", func(t *testing.T) {
		assert.True(t, ShouldAdjust(cfg, 0.7, 0.65, 0.5, 3))
	})

	t.Run("liquid market blocks", func(t *testing.T) {
		assert.False(t, ShouldAdjust(cfg, 0.7, 0.8, 0.5, 10))
	})

	t.Run("divergence direction does not matter", func(t *testing.T) {
		assert.True(t, ShouldAdjust(cfg, 0.7, 0.2, 0.5, 3))
	})
}
