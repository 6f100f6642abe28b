package taskbus

import (
	"math"
	"math/rand/v2"
	"time"
)

// RetryPolicy controls per-task-kind retry behavior. On exhaustion the task
// moves to the dead-letter stream (status "dead").
type RetryPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	Multiplier     float64
	Jitter         time.Duration
	MaxBackoff     time.Duration
}

// DefaultRetryPolicy is used for task kinds without an explicit policy.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    3,
		InitialBackoff: 30 * time.Second,
		Multiplier:     2.0,
		Jitter:         10 * time.Second,
		MaxBackoff:     15 * time.Minute,
	}
}

// Backoff returns the delay before the given retry. attempt is 1-based:
// Backoff(1) is the delay after the first failure.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := float64(p.InitialBackoff) * math.Pow(p.Multiplier, float64(attempt-1))
	if max := float64(p.MaxBackoff); p.MaxBackoff > 0 && d > max {
		d = max
	}
	if p.Jitter > 0 {
		d += float64(rand.Int64N(int64(2*p.Jitter))) - float64(p.Jitter)
	}
	if d < 0 {
		d = 0
	}
	return time.Duration(d)
}

// Registry maps task names to handlers and retry policies.
type Registry struct {
	handlers map[string]Handler
	policies map[string]RetryPolicy
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		policies: make(map[string]RetryPolicy),
	}
}

// Register binds a handler (and retry policy) to a task name.
func (r *Registry) Register(name string, h Handler, policy RetryPolicy) {
	r.handlers[name] = h
	r.policies[name] = policy
}

// Handler returns the handler for a task name.
func (r *Registry) Handler(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Policy returns the retry policy for a task name, falling back to default.
func (r *Registry) Policy(name string) RetryPolicy {
	if p, ok := r.policies[name]; ok {
		return p
	}
	return DefaultRetryPolicy()
}

// Names returns all registered task names.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		out = append(out, name)
	}
	return out
}
