package config

import "time"

// QueueConfig contains task bus and worker pool configuration.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int `yaml:"worker_count"`

	// MaxInFlight is the global limit of concurrently running tasks across
	// all replicas. Enforced by database COUNT(*) check.
	MaxInFlight int `yaml:"max_in_flight"`

	// PollInterval is the base interval for checking available tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter randomizes the poll: PollInterval ± jitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// TaskTimeout is the maximum wall time for one task execution.
	TaskTimeout time.Duration `yaml:"task_timeout"`

	// HeartbeatInterval is how often a running task renews its heartbeat.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// VisibilityTimeout is how long a running task may go without a
	// heartbeat before it is re-offered to other workers.
	VisibilityTimeout time.Duration `yaml:"visibility_timeout"`

	// ReaperInterval is how often the stale-task reaper scans.
	ReaperInterval time.Duration `yaml:"reaper_interval"`

	// GracefulShutdownTimeout bounds the wait for in-flight tasks on stop.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             8,
		MaxInFlight:             8,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		TaskTimeout:             120 * time.Second,
		HeartbeatInterval:       15 * time.Second,
		VisibilityTimeout:       3 * time.Minute,
		ReaperInterval:          1 * time.Minute,
		GracefulShutdownTimeout: 2 * time.Minute,
	}
}
