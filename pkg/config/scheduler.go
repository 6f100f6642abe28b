package config

import "time"

// SchedulerConfig configures the periodic task scheduler.
type SchedulerConfig struct {
	// LeaseName is the shared lease row coordinating leadership.
	LeaseName string `yaml:"lease_name"`

	// LeaseTTL is how long a held lease stays valid without renewal.
	LeaseTTL time.Duration `yaml:"lease_ttl"`

	// RenewInterval is how often the leader renews; must be < LeaseTTL.
	RenewInterval time.Duration `yaml:"renew_interval"`

	// TickInterval is how often schedules are evaluated for due fires.
	TickInterval time.Duration `yaml:"tick_interval"`
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		LeaseName:     "scheduler",
		LeaseTTL:      30 * time.Second,
		RenewInterval: 10 * time.Second,
		TickInterval:  15 * time.Second,
	}
}
