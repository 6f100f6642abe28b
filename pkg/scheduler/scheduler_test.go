package scheduler

import (
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchedules_SpecsParse(t *testing.T) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

	for _, s := range DefaultSchedules() {
		t.Run(s.TaskName, func(t *testing.T) {
			_, err := parser.Parse(s.Spec)
			require.NoError(t, err)
		})
	}
}

func TestDefaultSchedules_FireTimes(t *testing.T) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	byName := make(map[string]cron.Schedule)
	for _, s := range DefaultSchedules() {
		parsed, err := parser.Parse(s.Spec)
		require.NoError(t, err)
		byName[s.TaskName] = parsed
	}

	t.Run("daily analysis fires at 02:00", func(t *testing.T) {
		next := byName["tier2_market_analysis"].Next(base)
		assert.Equal(t, time.Date(2026, 3, 11, 2, 0, 0, 0, time.UTC), next)
	})

	t.Run("monthly topup fires on day one", func(t *testing.T) {
		next := byName["monthly_credit_topup"].Next(base)
		assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), next)
	})

	t.Run("market seeding fires every five minutes", func(t *testing.T) {
		next := byName["seed_new_markets"].Next(base)
		assert.Equal(t, base.Add(5*time.Minute), next)
	})
}

func TestCoalesce(t *testing.T) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	hourly, err := parser.Parse("@every 1h")
	require.NoError(t, err)

	now := time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)

	t.Run("future cursor is untouched", func(t *testing.T) {
		next := now.Add(30 * time.Minute)
		assert.Equal(t, next, coalesce(hourly, next, now))
	})

	t.Run("one overdue fire stays due", func(t *testing.T) {
		next := now.Add(-10 * time.Minute)
		assert.Equal(t, next, coalesce(hourly, next, now))
	})

	t.Run("an outage collapses to a single catch-up", func(t *testing.T) {
		// Cursor three periods behind: only the most recent overdue fire
		// survives, the two older ones are dropped.
		next := now.Add(-2*time.Hour - 53*time.Minute)
		got := coalesce(hourly, next, now)

		assert.Equal(t, next.Add(2*time.Hour), got)
		assert.False(t, got.After(now), "the surviving fire is due")
		assert.True(t, hourly.Next(got).After(now), "and it is the only due one")
	})
}

func TestParseFireKey(t *testing.T) {
	fireTime := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	got, err := parseFireKey(fireKey("scrape_sources", fireTime))
	require.NoError(t, err)
	assert.True(t, got.Equal(fireTime))

	_, err = parseFireKey("not a key")
	assert.Error(t, err)
	_, err = parseFireKey("sched:scrape_sources:maniana")
	assert.Error(t, err)
}

func TestFireKey_StableAcrossPods(t *testing.T) {
	fireTime := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// Two leaders computing the key for the same fire must collide.
	assert.Equal(t,
		fireKey("scrape_sources", fireTime),
		fireKey("scrape_sources", fireTime))

	// Different fires never collide.
	assert.NotEqual(t,
		fireKey("scrape_sources", fireTime),
		fireKey("scrape_sources", fireTime.Add(time.Hour)))
	assert.NotEqual(t,
		fireKey("scrape_sources", fireTime),
		fireKey("seed_new_markets", fireTime))
}
