package scrape

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/google/uuid"
	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/ent/source"
	"github.com/veraz-project/veraz/pkg/config"
)

// Notifier receives operator-facing alerts (platform auth failures).
type Notifier interface {
	Notify(ctx context.Context, severity, title, body string) error
}

// RunStats summarizes one scrape run.
type RunStats struct {
	Fetched    int
	Inserted   int
	Duplicates int
	Truncated  int
	// FailedPlatforms lists adapters whose fetch errored this run.
	FailedPlatforms []string
	// InsertedIDs are the new source ids, in insert order, for follow-up
	// task enqueue.
	InsertedIDs []string
}

// Driver fans out over the enabled adapters, deduplicates against stored
// sources, and lands new items as pending sources.
type Driver struct {
	client   *ent.Client
	cfg      *config.ScraperConfig
	adapters []Scraper
	notifier Notifier
}

// NewDriver builds a driver over the given adapters.
func NewDriver(client *ent.Client, cfg *config.ScraperConfig, adapters []Scraper, notifier Notifier) *Driver {
	return &Driver{client: client, cfg: cfg, adapters: adapters, notifier: notifier}
}

// Run executes one scrape pass: every adapter fetches concurrently, the
// results are merged, deduplicated, and inserted in one transaction. An
// adapter failure never aborts the run; auth failures additionally raise
// an operator notification.
func (d *Driver) Run(ctx context.Context) (*RunStats, error) {
	stats := &RunStats{}

	var mu sync.Mutex
	var items []Item

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.Concurrency)

	for _, adapter := range d.adapters {
		g.Go(func() error {
			fetched, err := adapter.Fetch(gctx, d.cfg.Keywords, d.cfg.Window)
			if err != nil {
				d.reportAdapterFailure(gctx, adapter.Platform(), err)
				mu.Lock()
				stats.FailedPlatforms = append(stats.FailedPlatforms, adapter.Platform())
				mu.Unlock()
				// Swallow the error: the run covers the other platforms.
				return nil
			}
			mu.Lock()
			items = append(items, fetched...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}

	stats.Fetched = len(items)
	if len(items) > d.cfg.MaxPerTick {
		slog.Warn("Scrape run over per-tick cap, truncating",
			"fetched", len(items), "cap", d.cfg.MaxPerTick)
		items = items[:d.cfg.MaxPerTick]
	}

	if err := d.insertBatch(ctx, items, stats); err != nil {
		return stats, err
	}

	slog.Info("Scrape run complete",
		"fetched", stats.Fetched, "inserted", stats.Inserted,
		"duplicates", stats.Duplicates, "failed_platforms", stats.FailedPlatforms)
	return stats, nil
}

// insertBatch lands the new items in one transaction, discarding items
// already stored for the same (platform, external_id).
func (d *Driver) insertBatch(ctx context.Context, items []Item, stats *RunStats) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := d.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start insert transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		key := item.Platform + "\x00" + item.ExternalID
		if seen[key] {
			stats.Duplicates++
			continue
		}
		seen[key] = true

		exists, err := tx.Source.Query().
			Where(
				source.PlatformEQ(source.Platform(item.Platform)),
				source.ExternalIDEQ(item.ExternalID),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check for duplicate source: %w", err)
		}
		if exists {
			stats.Duplicates++
			continue
		}

		content := TruncateContent(item.Content)
		if len(content) < len(item.Content) {
			stats.Truncated++
		}

		id := uuid.New().String()
		builder := tx.Source.Create().
			SetID(id).
			SetPlatform(source.Platform(item.Platform)).
			SetExternalID(item.ExternalID).
			SetAuthor(item.Author).
			SetURL(item.URL).
			SetContent(content)
		if item.PublishedAt != nil {
			builder.SetPublishedAt(*item.PublishedAt)
		}
		if item.Likes != nil {
			builder.SetLikes(*item.Likes)
		}
		if item.Shares != nil {
			builder.SetShares(*item.Shares)
		}
		if item.Comments != nil {
			builder.SetComments(*item.Comments)
		}
		if item.Views != nil {
			builder.SetViews(*item.Views)
		}

		if err := builder.Exec(ctx); err != nil {
			// Concurrent run landed the same item between check and insert.
			if ent.IsConstraintError(err) {
				stats.Duplicates++
				continue
			}
			return fmt.Errorf("failed to insert source: %w", err)
		}
		stats.Inserted++
		stats.InsertedIDs = append(stats.InsertedIDs, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit source batch: %w", err)
	}
	return nil
}

func (d *Driver) reportAdapterFailure(ctx context.Context, platform string, err error) {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		slog.Error("Platform credentials rejected", "platform", platform, "error", err)
		if d.notifier != nil {
			nctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if nerr := d.notifier.Notify(nctx, "critical",
				fmt.Sprintf("Scraper credentials rejected: %s", platform),
				err.Error()); nerr != nil {
				slog.Error("Failed to raise operator notification", "error", nerr)
			}
		}
		return
	}
	slog.Error("Platform fetch failed", "platform", platform, "error", err)
}
