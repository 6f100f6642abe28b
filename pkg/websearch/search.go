// Package websearch finds and fetches supporting evidence on the open web.
package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// Result is one search hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Host returns the hostname of the result URL, or "" when unparsable.
func (r Result) Host() string {
	u, err := url.Parse(r.URL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// Searcher runs web searches.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]Result, error)
}

// HTTPSearcher calls a JSON search API. The endpoint and key come from
// SEARCH_API_URL / SEARCH_API_KEY; siteTLD, when set, scopes every query
// to a country domain (e.g. ".ar").
type HTTPSearcher struct {
	endpoint string
	apiKey   string
	siteTLD  string
	http     *http.Client
	limiter  *rate.Limiter
}

// NewHTTPSearcher builds a searcher from environment configuration.
func NewHTTPSearcher(siteTLD string, ratePerMinute int) *HTTPSearcher {
	limit := rate.Inf
	if ratePerMinute > 0 {
		limit = rate.Limit(float64(ratePerMinute) / 60.0)
	}
	return &HTTPSearcher{
		endpoint: os.Getenv("SEARCH_API_URL"),
		apiKey:   os.Getenv("SEARCH_API_KEY"),
		siteTLD:  siteTLD,
		http:     &http.Client{Timeout: 10 * time.Second},
		limiter:  rate.NewLimiter(limit, 1),
	}
}

type searchRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num"`
}

type searchResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

// Search runs one query and returns up to limit results.
func (s *HTTPSearcher) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if s.endpoint == "" {
		return nil, fmt.Errorf("SEARCH_API_URL is not configured")
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	if s.siteTLD != "" {
		query = fmt.Sprintf("%s site:%s", query, s.siteTLD)
	}

	body, err := json.Marshal(searchRequest{Query: query, Num: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("X-API-KEY", s.apiKey)
	}

	res, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}
	if res.StatusCode == 401 || res.StatusCode == 402 || res.StatusCode == 403 {
		return nil, &QuotaError{StatusCode: res.StatusCode}
	}
	if res.StatusCode != 200 {
		return nil, fmt.Errorf("search API returned status %d", res.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := make([]Result, 0, len(parsed.Organic))
	for _, o := range parsed.Organic {
		if o.Link == "" {
			continue
		}
		results = append(results, Result{Title: o.Title, URL: o.Link, Snippet: o.Snippet})
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

// QuotaError is an auth or quota failure from the search provider.
// Retrying will not fix it; callers should park the task.
type QuotaError struct {
	StatusCode int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("search provider rejected credentials or quota (status %d)", e.StatusCode)
}
