package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/ent/schedulerlease"
)

// Lease implements single-leader election over a shared database row.
// The holder renews expires_at while alive; any pod may take over an
// expired lease.
type Lease struct {
	client *ent.Client
	name   string
	holder string
	ttl    time.Duration
}

// NewLease creates a lease handle for the given lease row.
func NewLease(client *ent.Client, name, holder string, ttl time.Duration) *Lease {
	return &Lease{client: client, name: name, holder: holder, ttl: ttl}
}

// TryAcquire attempts to take or renew the lease. Returns true when this
// holder now owns it. The compare-and-swap goes through a conditional
// UPDATE so two pods cannot both win.
func (l *Lease) TryAcquire(ctx context.Context) (bool, error) {
	now := time.Now()

	n, err := l.client.SchedulerLease.Update().
		Where(
			schedulerlease.ID(l.name),
			schedulerlease.Or(
				schedulerlease.HolderEQ(l.holder),
				schedulerlease.ExpiresAtLT(now),
			),
		).
		SetHolder(l.holder).
		SetExpiresAt(now.Add(l.ttl)).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update lease %s: %w", l.name, err)
	}
	if n > 0 {
		return true, nil
	}

	// No row updated: either the row does not exist yet, or another live
	// holder owns it.
	exists, err := l.client.SchedulerLease.Query().
		Where(schedulerlease.ID(l.name)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query lease %s: %w", l.name, err)
	}
	if exists {
		return false, nil
	}

	err = l.client.SchedulerLease.Create().
		SetID(l.name).
		SetHolder(l.holder).
		SetExpiresAt(now.Add(l.ttl)).
		Exec(ctx)
	if err != nil {
		// Concurrent create: someone else won the race.
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create lease %s: %w", l.name, err)
	}
	return true, nil
}

// Release gives up the lease by expiring it immediately. Only the current
// holder's row is touched.
func (l *Lease) Release(ctx context.Context) error {
	_, err := l.client.SchedulerLease.Update().
		Where(
			schedulerlease.ID(l.name),
			schedulerlease.HolderEQ(l.holder),
		).
		SetExpiresAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release lease %s: %w", l.name, err)
	}
	return nil
}
