package services

import (
	"context"
	"fmt"
	"time"

	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/ent/claim"
	"github.com/veraz-project/veraz/ent/source"
	"github.com/veraz-project/veraz/ent/statcounter"
)

// StatsService maintains incremental counters and serves the aggregate
// statistics snapshot.
type StatsService struct {
	client *ent.Client
}

// NewStatsService creates a new StatsService
func NewStatsService(client *ent.Client) *StatsService {
	return &StatsService{client: client}
}

// Increment bumps a named counter by delta.
func (s *StatsService) Increment(ctx context.Context, name string, delta int64) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := addCounter(ctx, tx, name, delta); err != nil {
		return err
	}
	return tx.Commit()
}

// incrementCounters bumps several counters by one inside an existing
// transaction. Shared with ClaimService's persist path.
func incrementCounters(ctx context.Context, tx *ent.Tx, names ...string) error {
	for _, name := range names {
		if err := addCounter(ctx, tx, name, 1); err != nil {
			return err
		}
	}
	return nil
}

func addCounter(ctx context.Context, tx *ent.Tx, name string, delta int64) error {
	n, err := tx.StatCounter.Update().
		Where(statcounter.ID(name)).
		AddValue(delta).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update counter %s: %w", name, err)
	}
	if n > 0 {
		return nil
	}

	err = tx.StatCounter.Create().
		SetID(name).
		SetValue(delta).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the create race; add on the now-existing row.
			_, err = tx.StatCounter.Update().
				Where(statcounter.ID(name)).
				AddValue(delta).
				Save(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to create counter %s: %w", name, err)
		}
	}
	return nil
}

// Rollup recomputes the claim counters from the claims table, correcting
// any drift the incremental path accumulated (crashed tasks, manual
// deletes). Runs on its own schedule.
func (s *StatsService) Rollup(ctx context.Context) error {
	var rows []struct {
		Verdict string `json:"verdict"`
		Count   int64  `json:"count"`
	}
	err := s.client.Claim.Query().
		GroupBy(claim.FieldVerdict).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return fmt.Errorf("failed to count claims by verdict: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var total int64
	for _, r := range rows {
		total += r.Count
		if err := setCounter(ctx, tx, "claims_"+r.Verdict, r.Count); err != nil {
			return err
		}
	}
	if err := setCounter(ctx, tx, "claims_total", total); err != nil {
		return err
	}
	return tx.Commit()
}

func setCounter(ctx context.Context, tx *ent.Tx, name string, value int64) error {
	n, err := tx.StatCounter.Update().
		Where(statcounter.ID(name)).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set counter %s: %w", name, err)
	}
	if n > 0 {
		return nil
	}
	err = tx.StatCounter.Create().
		SetID(name).
		SetValue(value).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("failed to create counter %s: %w", name, err)
	}
	return nil
}

// CounterValue reads a named counter; a counter that was never
// incremented reads as zero.
func (s *StatsService) CounterValue(ctx context.Context, name string) (float64, error) {
	c, err := s.client.StatCounter.Get(ctx, name)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read counter %s: %w", name, err)
	}
	return float64(c.Value), nil
}

// Snapshot is the aggregate statistics view served by the API.
type Snapshot struct {
	TotalClaims    int64            `json:"total_claims"`
	ByVerdict      map[string]int64 `json:"by_verdict"`
	PendingSources int              `json:"pending_sources"`
	NeedsReview    int              `json:"needs_review"`
	ClaimsLast24h  int              `json:"claims_last_24h"`
	GeneratedAt    time.Time        `json:"generated_at"`
}

// GetSnapshot builds the statistics snapshot from counters plus cheap
// live queries for the values counters cannot carry.
func (s *StatsService) GetSnapshot(ctx context.Context) (*Snapshot, error) {
	counters, err := s.client.StatCounter.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load counters: %w", err)
	}

	snap := &Snapshot{
		ByVerdict:   make(map[string]int64),
		GeneratedAt: time.Now(),
	}
	for _, c := range counters {
		switch {
		case c.ID == "claims_total":
			snap.TotalClaims = c.Value
		case len(c.ID) > 7 && c.ID[:7] == "claims_":
			snap.ByVerdict[c.ID[7:]] = c.Value
		}
	}

	snap.PendingSources, err = s.client.Source.Query().
		Where(source.StateEQ(source.StatePending)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending sources: %w", err)
	}

	snap.NeedsReview, err = s.client.Claim.Query().
		Where(claim.NeedsReview(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count review queue: %w", err)
	}

	snap.ClaimsLast24h, err = s.client.Claim.Query().
		Where(claim.CreatedAtGT(time.Now().Add(-24 * time.Hour))).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count recent claims: %w", err)
	}

	return snap, nil
}
