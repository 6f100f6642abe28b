// Package scrape ingests raw content items from the configured platforms
// and lands them as pending sources.
package scrape

import (
	"context"
	"fmt"
	"time"
)

// MaxContentBytes is the hard cap on stored source content.
const MaxContentBytes = 8 * 1024

// Item is one raw content item returned by an adapter, platform-agnostic.
type Item struct {
	Platform    string
	ExternalID  string
	Author      string
	URL         string
	Content     string
	PublishedAt *time.Time
	Likes       *int64
	Shares      *int64
	Comments    *int64
	Views       *int64
}

// Scraper is one platform adapter. Fetch returns items matching the
// keywords published within the window ending now.
type Scraper interface {
	// Platform is the source platform value the adapter produces.
	Platform() string
	// Fetch retrieves matching items. Implementations respect ctx and
	// their own rate limits.
	Fetch(ctx context.Context, keywords []string, window time.Duration) ([]Item, error)
}

// AuthError is a credential rejection from a platform. The scrape run
// continues on other platforms; the failing one is reported to operators.
type AuthError struct {
	Platform string
	Cause    error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("platform %s rejected credentials: %v", e.Platform, e.Cause)
}

func (e *AuthError) Unwrap() error { return e.Cause }

// TruncateContent caps content at MaxContentBytes without splitting a
// UTF-8 sequence.
func TruncateContent(s string) string {
	if len(s) <= MaxContentBytes {
		return s
	}
	cut := s[:MaxContentBytes]
	for len(cut) > 0 && cut[len(cut)-1]&0xC0 == 0x80 {
		cut = cut[:len(cut)-1]
	}
	return cut
}
