// Package scheduler fires periodic tasks onto the task bus. Every pod runs
// a scheduler; a database lease elects one leader, and unique-key enqueue
// makes double-fires harmless anyway.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/veraz-project/veraz/pkg/config"
	"github.com/veraz-project/veraz/pkg/taskbus"
)

// Scheduler evaluates cron schedules and enqueues due tasks.
type Scheduler struct {
	bus      *taskbus.Bus
	lease    *Lease
	config   *config.SchedulerConfig
	entries  []entry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu       sync.Mutex
	isLeader bool
}

type entry struct {
	schedule Schedule
	cron     cron.Schedule
	// next is the next fire time not yet enqueued.
	next time.Time
}

// New builds a scheduler over the given schedules. Specs are validated
// here so a bad expression fails at startup, not mid-run.
func New(bus *taskbus.Bus, lease *Lease, cfg *config.SchedulerConfig, schedules []Schedule) (*Scheduler, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

	now := time.Now()
	entries := make([]entry, 0, len(schedules))
	for _, s := range schedules {
		parsed, err := parser.Parse(s.Spec)
		if err != nil {
			return nil, fmt.Errorf("invalid cron spec %q for %s: %w", s.Spec, s.TaskName, err)
		}
		entries = append(entries, entry{
			schedule: s,
			cron:     parsed,
			next:     parsed.Next(now),
		})
	}

	return &Scheduler{
		bus:     bus,
		lease:   lease,
		config:  cfg,
		entries: entries,
		stopCh:  make(chan struct{}),
	}, nil
}

// Start runs the lease renewal and tick loops until Stop or ctx cancel.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		s.runLeaseLoop(ctx)
	}()
	go func() {
		defer s.wg.Done()
		s.runTickLoop(ctx)
	}()
	slog.Info("Scheduler started", "schedules", len(s.entries))
}

// Stop halts the loops and releases the lease if held.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()

	if s.IsLeader() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.lease.Release(ctx); err != nil {
			slog.Warn("Failed to release scheduler lease", "error", err)
		}
	}
	slog.Info("Scheduler stopped")
}

// IsLeader reports whether this pod currently holds the lease.
func (s *Scheduler) IsLeader() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLeader
}

// setLeader updates the leadership flag and reports whether it was just
// gained.
func (s *Scheduler) setLeader(leader bool) bool {
	s.mu.Lock()
	was := s.isLeader
	s.isLeader = leader
	s.mu.Unlock()

	if leader && !was {
		slog.Info("Acquired scheduler leadership")
	}
	if !leader && was {
		slog.Info("Lost scheduler leadership")
	}
	return leader && !was
}

func (s *Scheduler) runLeaseLoop(ctx context.Context) {
	// Attempt immediately, then on the renew interval.
	s.renewOnce(ctx)

	ticker := time.NewTicker(s.config.RenewInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.renewOnce(ctx)
		}
	}
}

func (s *Scheduler) renewOnce(ctx context.Context) {
	acquired, err := s.lease.TryAcquire(ctx)
	if err != nil {
		slog.Error("Scheduler lease renewal failed", "error", err)
		s.setLeader(false)
		return
	}
	if s.setLeader(acquired) {
		s.syncCursors(ctx, time.Now())
	}
}

// syncCursors rebases every schedule cursor on the last fire recorded in
// the task table. A pod gaining leadership after a restart or handover
// neither replays fires the previous leader already enqueued nor loses
// fires missed while no leader ran; a backlog of missed fires collapses
// to the single most recent one.
func (s *Scheduler) syncCursors(ctx context.Context, now time.Time) {
	for i := range s.entries {
		e := &s.entries[i]
		last, err := s.lastFire(ctx, e.schedule.TaskName)
		if err != nil {
			slog.Warn("Failed to recover last fire, keeping local cursor",
				"task", e.schedule.TaskName, "error", err)
		} else if !last.IsZero() {
			e.next = e.cron.Next(last)
		}
		e.next = coalesce(e.cron, e.next, now)
	}
}

// lastFire recovers the newest recorded fire time for a schedule from its
// enqueued unique keys.
func (s *Scheduler) lastFire(ctx context.Context, taskName string) (time.Time, error) {
	t, err := s.bus.LatestByKeyPrefix(ctx, "sched:"+taskName+":")
	if err != nil || t == nil || t.UniqueKey == nil {
		return time.Time{}, err
	}
	return parseFireKey(*t.UniqueKey)
}

func (s *Scheduler) runTickLoop(ctx context.Context) {
	ticker := time.NewTicker(s.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			if !s.IsLeader() {
				continue
			}
			s.fireDue(ctx, time.Now())
		}
	}
}

// fireDue enqueues every schedule whose fire time has passed. The unique
// key is derived from the fire time, so a restarted or competing leader
// enqueues each fire exactly once. Any backlog of overdue fires is
// coalesced to the most recent one first, so an outage of N periods
// yields one catch-up enqueue, never N.
func (s *Scheduler) fireDue(ctx context.Context, now time.Time) {
	for i := range s.entries {
		e := &s.entries[i]
		e.next = coalesce(e.cron, e.next, now)
		for !e.next.After(now) {
			key := fireKey(e.schedule.TaskName, e.next)
			_, err := s.bus.Enqueue(ctx, e.schedule.TaskName, []byte(e.schedule.Payload), taskbus.EnqueueOptions{
				UniqueKey: key,
				Priority:  e.schedule.Priority,
			})
			if err != nil {
				slog.Error("Failed to enqueue scheduled task",
					"task", e.schedule.TaskName, "fire_time", e.next, "error", err)
				// Leave e.next untouched so the next tick retries this fire.
				break
			}
			slog.Debug("Scheduled task enqueued", "task", e.schedule.TaskName, "key", key)
			e.next = e.cron.Next(e.next)
		}
	}
}

// coalesce advances next past all overdue fires but the latest: when next
// is due it returns the most recent fire time not after now, otherwise
// next unchanged.
func coalesce(sched cron.Schedule, next, now time.Time) time.Time {
	for {
		n := sched.Next(next)
		if n.After(now) {
			return next
		}
		next = n
	}
}

// fireKey buckets a fire into a stable dedup key shared by all pods.
func fireKey(taskName string, fireTime time.Time) string {
	return fmt.Sprintf("sched:%s:%d", taskName, fireTime.Unix())
}

// parseFireKey recovers the fire time from a sched unique key.
func parseFireKey(key string) (time.Time, error) {
	idx := strings.LastIndexByte(key, ':')
	if idx < 0 {
		return time.Time{}, fmt.Errorf("malformed fire key %q", key)
	}
	unix, err := strconv.ParseInt(key[idx+1:], 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed fire key %q: %w", key, err)
	}
	return time.Unix(unix, 0), nil
}
