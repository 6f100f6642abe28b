package scrape

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"

	"github.com/veraz-project/veraz/pkg/config"
)

// RSSAdapter pulls items from configured news feeds. Items are matched
// against the keyword list client-side since RSS has no query surface.
type RSSAdapter struct {
	cfg     *config.AdapterConfig
	parser  *gofeed.Parser
	limiter *rate.Limiter
}

// NewRSSAdapter builds the adapter from configuration.
func NewRSSAdapter(cfg *config.AdapterConfig) *RSSAdapter {
	limit := rate.Inf
	if cfg.RatePerMinute > 0 {
		limit = rate.Limit(float64(cfg.RatePerMinute) / 60.0)
	}
	return &RSSAdapter{
		cfg:     cfg,
		parser:  gofeed.NewParser(),
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Platform returns the platform value for RSS items.
func (a *RSSAdapter) Platform() string { return "news_rss" }

// Fetch parses every configured feed and returns keyword-matching items
// published within the window. A broken feed is logged and skipped.
func (a *RSSAdapter) Fetch(ctx context.Context, keywords []string, window time.Duration) ([]Item, error) {
	cutoff := time.Now().Add(-window)
	var items []Item

	for _, feedURL := range a.cfg.Feeds {
		if err := a.limiter.Wait(ctx); err != nil {
			return items, err
		}

		feed, err := a.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			slog.Warn("Failed to parse feed", "feed", feedURL, "error", err)
			continue
		}

		for _, entry := range feed.Items {
			published := entry.PublishedParsed
			if published == nil {
				published = entry.UpdatedParsed
			}
			if published != nil && published.Before(cutoff) {
				continue
			}

			text := entry.Title
			if entry.Description != "" {
				text += "\n" + entry.Description
			}
			if !matchesKeywords(text, keywords) {
				continue
			}

			externalID := entry.GUID
			if externalID == "" {
				externalID = entry.Link
			}
			author := feed.Title
			if entry.Author != nil && entry.Author.Name != "" {
				author = entry.Author.Name
			}

			items = append(items, Item{
				Platform:    a.Platform(),
				ExternalID:  externalID,
				Author:      author,
				URL:         entry.Link,
				Content:     text,
				PublishedAt: published,
			})
		}
	}
	return items, nil
}

// matchesKeywords reports whether text contains any keyword,
// case-insensitively. An empty keyword list matches everything.
func matchesKeywords(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
