package scheduler

// Schedule defines one recurring enqueue. Expressions use standard cron
// syntax (with @every descriptors) as parsed by robfig/cron.
type Schedule struct {
	// TaskName is the task kind enqueued when the schedule fires.
	TaskName string

	// Spec is the cron expression.
	Spec string

	// Priority is passed through to the enqueued task.
	Priority int

	// Payload is the static JSON payload for the enqueued task, if any.
	Payload string
}

// DefaultSchedules returns the built-in periodic work.
func DefaultSchedules() []Schedule {
	return []Schedule{
		{TaskName: "scrape_sources", Spec: "@every 1h", Priority: 5},
		{TaskName: "detect_trending_topics", Spec: "@every 2h", Priority: 3},
		{TaskName: "tier1_market_update", Spec: "@every 2h", Priority: 3},
		{TaskName: "tier2_market_analysis", Spec: "0 2 * * *", Priority: 2},
		{TaskName: "seed_new_markets", Spec: "@every 5m", Priority: 4},
		{TaskName: "reassess_inactive_markets", Spec: "@every 1h", Priority: 2},
		{TaskName: "stats_rollup", Spec: "@every 5m", Priority: 1},
		{TaskName: "monthly_credit_topup", Spec: "0 0 1 * *", Priority: 5},
	}
}
