package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/veraz-project/veraz/pkg/config"
)

// HTTPAdapter talks to a platform ingest API that exposes keyword search
// over recent posts as JSON. The social, video, and forum platforms all
// share this surface and differ only in endpoint and platform tag.
type HTTPAdapter struct {
	platform string
	cfg      *config.AdapterConfig
	http     *http.Client
	limiter  *rate.Limiter
}

// NewSocialAdapter builds the short-form social platform adapter.
func NewSocialAdapter(cfg *config.AdapterConfig) *HTTPAdapter {
	return newHTTPAdapter("social_short", cfg)
}

// NewVideoAdapter builds the video platform adapter.
func NewVideoAdapter(cfg *config.AdapterConfig) *HTTPAdapter {
	return newHTTPAdapter("video", cfg)
}

// NewForumAdapter builds the forum platform adapter.
func NewForumAdapter(cfg *config.AdapterConfig) *HTTPAdapter {
	return newHTTPAdapter("forum", cfg)
}

func newHTTPAdapter(platform string, cfg *config.AdapterConfig) *HTTPAdapter {
	limit := rate.Inf
	if cfg.RatePerMinute > 0 {
		limit = rate.Limit(float64(cfg.RatePerMinute) / 60.0)
	}
	return &HTTPAdapter{
		platform: platform,
		cfg:      cfg,
		http:     &http.Client{Timeout: 15 * time.Second},
		limiter:  rate.NewLimiter(limit, 1),
	}
}

// Platform returns the adapter's platform tag.
func (a *HTTPAdapter) Platform() string { return a.platform }

type apiPost struct {
	ID          string     `json:"id"`
	Author      string     `json:"author"`
	URL         string     `json:"url"`
	Text        string     `json:"text"`
	PublishedAt *time.Time `json:"published_at"`
	Likes       *int64     `json:"likes"`
	Shares      *int64     `json:"shares"`
	Comments    *int64     `json:"comments"`
	Views       *int64     `json:"views"`
}

type apiResponse struct {
	Posts []apiPost `json:"posts"`
}

// Fetch queries the platform API once per keyword and merges the results.
func (a *HTTPAdapter) Fetch(ctx context.Context, keywords []string, window time.Duration) ([]Item, error) {
	if a.cfg.Endpoint == "" {
		return nil, fmt.Errorf("platform %s has no endpoint configured", a.platform)
	}

	since := time.Now().Add(-window)
	seen := make(map[string]bool)
	var items []Item

	for _, kw := range keywords {
		if err := a.limiter.Wait(ctx); err != nil {
			return items, err
		}

		posts, err := a.search(ctx, kw, since)
		if err != nil {
			return items, err
		}
		for _, p := range posts {
			if p.ID == "" || seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			items = append(items, Item{
				Platform:    a.platform,
				ExternalID:  p.ID,
				Author:      p.Author,
				URL:         p.URL,
				Content:     p.Text,
				PublishedAt: p.PublishedAt,
				Likes:       p.Likes,
				Shares:      p.Shares,
				Comments:    p.Comments,
				Views:       p.Views,
			})
		}
	}
	return items, nil
}

func (a *HTTPAdapter) search(ctx context.Context, keyword string, since time.Time) ([]apiPost, error) {
	q := url.Values{}
	q.Set("q", keyword)
	q.Set("since", since.UTC().Format(time.RFC3339))

	endpoint := strings.TrimRight(a.cfg.Endpoint, "/") + "/search?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	if a.cfg.APIKeyEnv != "" {
		if key := os.Getenv(a.cfg.APIKeyEnv); key != "" {
			req.Header.Set("Authorization", "Bearer "+key)
		}
	}

	res, err := a.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("platform %s request failed: %w", a.platform, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read platform %s response: %w", a.platform, err)
	}

	switch {
	case res.StatusCode == 401 || res.StatusCode == 403:
		return nil, &AuthError{Platform: a.platform, Cause: fmt.Errorf("status %d", res.StatusCode)}
	case res.StatusCode != 200:
		return nil, fmt.Errorf("platform %s returned status %d", a.platform, res.StatusCode)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode platform %s response: %w", a.platform, err)
	}
	return parsed.Posts, nil
}
