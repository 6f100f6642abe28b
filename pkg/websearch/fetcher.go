package websearch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/veraz-project/veraz/pkg/config"
)

// Fetcher downloads evidence pages and extracts their readable text.
// Fetched text is cached by URL so repeated claims about the same story
// do not refetch, and a per-host semaphore keeps the crawler polite.
type Fetcher struct {
	cfg   *config.RAGConfig
	http  *http.Client
	cache *expirable.LRU[string, string]

	mu    sync.Mutex
	hosts map[string]chan struct{}
}

// NewFetcher builds a fetcher from the evidence-gathering config.
func NewFetcher(cfg *config.RAGConfig) *Fetcher {
	return &Fetcher{
		cfg: cfg,
		http: &http.Client{
			Timeout: cfg.FetchTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 5 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		cache: expirable.NewLRU[string, string](cfg.CacheSize, nil, cfg.CacheTTL),
		hosts: make(map[string]chan struct{}),
	}
}

// FetchText downloads one page and returns its extracted text, truncated
// to the configured limit. Errors are per-URL; a dead link never fails
// the pipeline stage.
func (f *Fetcher) FetchText(ctx context.Context, pageURL string) (string, error) {
	if text, ok := f.cache.Get(pageURL); ok {
		return text, nil
	}

	release, err := f.acquireHost(ctx, pageURL)
	if err != nil {
		return "", err
	}
	defer release()

	fetchCtx, cancel := context.WithTimeout(ctx, f.cfg.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create fetch request: %w", err)
	}
	req.Header.Set("User-Agent", "veraz-evidence-bot/1.0")
	req.Header.Set("Accept", "text/html")

	res, err := f.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		return "", fmt.Errorf("fetch of %s returned status %d", pageURL, res.StatusCode)
	}
	ct := res.Header.Get("Content-Type")
	if ct != "" && !strings.Contains(ct, "text/html") && !strings.Contains(ct, "text/plain") {
		return "", fmt.Errorf("fetch of %s returned unsupported content type %s", pageURL, ct)
	}

	// Cap the raw read well above the text limit; extraction shrinks it.
	body := io.LimitReader(res.Body, 2<<20)
	text, err := ExtractText(body, f.cfg.EvidenceTextLimit)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", pageURL, err)
	}

	f.cache.Add(pageURL, text)
	return text, nil
}

// acquireHost takes a per-host slot, blocking up to the fetch timeout.
func (f *Fetcher) acquireHost(ctx context.Context, pageURL string) (func(), error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid evidence URL %s: %w", pageURL, err)
	}
	host := u.Hostname()

	f.mu.Lock()
	sem, ok := f.hosts[host]
	if !ok {
		sem = make(chan struct{}, f.cfg.PerHostConcurrency)
		f.hosts[host] = sem
	}
	f.mu.Unlock()

	select {
	case sem <- struct{}{}:
		return func() { <-sem }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(f.cfg.FetchTimeout):
		return nil, fmt.Errorf("timed out waiting for host slot on %s", host)
	}
}

// ExtractText pulls readable text from an HTML document: boilerplate
// containers are dropped, paragraph and heading text is kept, whitespace
// is collapsed, and the result is truncated to limit bytes on a word
// boundary where possible.
func ExtractText(r io.Reader, limit int) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", err
	}

	doc.Find("script, style, nav, header, footer, aside, form, noscript, iframe").Remove()

	var parts []string
	doc.Find("article p, article h1, article h2, main p, main h1, main h2").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	// Pages without semantic containers: fall back to all paragraphs.
	if len(parts) == 0 {
		doc.Find("p").Each(func(_ int, s *goquery.Selection) {
			if t := strings.TrimSpace(s.Text()); t != "" {
				parts = append(parts, t)
			}
		})
	}
	if len(parts) == 0 {
		parts = append(parts, strings.TrimSpace(doc.Find("body").Text()))
	}

	text := strings.Join(parts, "\n")
	text = strings.Join(strings.Fields(text), " ")

	if limit > 0 && len(text) > limit {
		cut := text[:limit]
		if idx := strings.LastIndexByte(cut, ' '); idx > limit/2 {
			cut = cut[:idx]
		}
		text = cut
	}
	return text, nil
}
