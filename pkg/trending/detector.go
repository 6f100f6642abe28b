// Package trending recomputes the trending-topic snapshot from the
// rolling window of scraped sources and verified claims.
package trending

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/veraz-project/veraz/ent"
	"github.com/veraz-project/veraz/ent/claim"
	"github.com/veraz-project/veraz/ent/source"
	"github.com/veraz-project/veraz/pkg/config"
	"github.com/veraz-project/veraz/pkg/services"
)

// maxWindowSources bounds how many sources one detector run reads.
const maxWindowSources = 5000

// Detector computes trending topics and publishes them as a snapshot.
type Detector struct {
	client   *ent.Client
	topics   *services.TrendingService
	taxonomy *config.Taxonomy
	cfg      *config.TrendingConfig
	stop     map[string]bool
}

// NewDetector builds a Detector from the configured stop list and weights.
func NewDetector(client *ent.Client, topics *services.TrendingService, taxonomy *config.Taxonomy, cfg *config.TrendingConfig) *Detector {
	stop := make(map[string]bool, len(cfg.StopWords))
	for _, w := range cfg.StopWords {
		stop[strings.ToLower(w)] = true
	}
	return &Detector{
		client:   client,
		topics:   topics,
		taxonomy: taxonomy,
		cfg:      cfg,
		stop:     stop,
	}
}

// candidate accumulates per-phrase counts over the window.
type candidate struct {
	name      string
	keywords  []string
	total     int
	recent    int
	platforms map[string]bool
	claimIDs  map[string]bool
}

// Run recomputes the snapshot over the rolling window and replaces the
// previous one atomically. Returns the new snapshot id.
func (d *Detector) Run(ctx context.Context) (string, error) {
	now := time.Now()
	windowStart := now.Add(-d.cfg.Window)
	halfPoint := now.Add(-d.cfg.Window / 2)

	sources, err := d.client.Source.Query().
		Where(source.CapturedAtGT(windowStart)).
		Order(ent.Desc(source.FieldCapturedAt)).
		Limit(maxWindowSources).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load window sources: %w", err)
	}

	candidates := d.collect(sources, halfPoint)

	risk, err := d.claimRisk(ctx, candidates)
	if err != nil {
		return "", err
	}

	scored := make([]services.TrendingInput, 0, len(candidates))
	for _, c := range candidates {
		if c.total < d.cfg.MinFrequency {
			continue
		}
		scored = append(scored, d.score(c, risk[c.name]))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Priority != scored[j].Priority {
			return scored[i].Priority > scored[j].Priority
		}
		return scored[i].Name < scored[j].Name
	})
	if len(scored) > d.cfg.TopN {
		scored = scored[:d.cfg.TopN]
	}

	snapshotID, err := d.topics.ReplaceSnapshot(ctx, scored)
	if err != nil {
		return "", fmt.Errorf("failed to publish trending snapshot: %w", err)
	}

	slog.Info("Trending snapshot published",
		"snapshot_id", snapshotID,
		"sources", len(sources),
		"candidates", len(candidates),
		"published", len(scored))
	return snapshotID, nil
}

// collect extracts phrase candidates (unigrams and bigrams) from the
// window sources and accumulates their counts.
func (d *Detector) collect(sources []*ent.Source, halfPoint time.Time) map[string]*candidate {
	candidates := make(map[string]*candidate)

	bump := func(phrase string, words []string, s *ent.Source) {
		c, ok := candidates[phrase]
		if !ok {
			c = &candidate{
				name:      phrase,
				keywords:  words,
				platforms: make(map[string]bool),
				claimIDs:  make(map[string]bool),
			}
			candidates[phrase] = c
		}
		c.total++
		if s.CapturedAt.After(halfPoint) {
			c.recent++
		}
		c.platforms[string(s.Platform)] = true
		if s.ClaimID != nil && *s.ClaimID != "" {
			c.claimIDs[*s.ClaimID] = true
		}
	}

	for _, s := range sources {
		words := d.tokenize(s.Content)
		seen := make(map[string]bool)
		for i, w := range words {
			if len([]rune(w)) >= 4 && !seen[w] {
				seen[w] = true
				bump(w, []string{w}, s)
			}
			if i+1 < len(words) {
				bigram := w + " " + words[i+1]
				if !seen[bigram] {
					seen[bigram] = true
					bump(bigram, []string{w, words[i+1]}, s)
				}
			}
		}
	}
	return candidates
}

// score turns one candidate's window counts into the weighted priority.
func (d *Detector) score(c *candidate, risk float64) services.TrendingInput {
	older := c.total - c.recent

	// Frequency against the older half as baseline, squashed to [0,1).
	ratio := float64(c.recent) / float64(older+1)
	trend := ratio / (ratio + 1)

	// Slope of the two half-window counts, mapped onto [0,1].
	velocity := (float64(c.recent-older)/float64(c.total) + 1) / 2

	correlation := float64(len(c.platforms)) / float64(d.cfg.TotalPlatform)
	if correlation > 1 {
		correlation = 1
	}

	relevance := d.taxonomyOverlap(c.keywords)

	priority := d.cfg.WTrend*trend +
		d.cfg.WVelocity*velocity +
		d.cfg.WCorrelation*correlation +
		d.cfg.WRelevance*relevance +
		d.cfg.WRisk*risk

	return services.TrendingInput{
		Name:        c.name,
		Keywords:    c.keywords,
		TrendScore:  trend,
		Velocity:    velocity,
		Correlation: correlation,
		Relevance:   relevance,
		Risk:        risk,
		Priority:    priority,
	}
}

// taxonomyOverlap is the share of candidate words that appear in any
// taxonomy topic's keyword list.
func (d *Detector) taxonomyOverlap(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	matched := 0
	for _, w := range words {
		for _, topic := range d.taxonomy.Topics {
			if containsFold(topic.Keywords, w) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(words))
}

func containsFold(list []string, word string) bool {
	for _, v := range list {
		if strings.EqualFold(v, word) {
			return true
		}
	}
	return false
}

// claimRisk loads verdicts for all claims linked from candidate sources
// and returns, per phrase, the share of linked claims found debunked or
// misleading.
func (d *Detector) claimRisk(ctx context.Context, candidates map[string]*candidate) (map[string]float64, error) {
	ids := make(map[string]bool)
	for _, c := range candidates {
		for id := range c.claimIDs {
			ids[id] = true
		}
	}
	risk := make(map[string]float64, len(candidates))
	if len(ids) == 0 {
		return risk, nil
	}

	idList := make([]string, 0, len(ids))
	for id := range ids {
		idList = append(idList, id)
	}
	claims, err := d.client.Claim.Query().
		Where(claim.IDIn(idList...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load linked claims: %w", err)
	}
	verdicts := make(map[string]string, len(claims))
	for _, cl := range claims {
		verdicts[cl.ID] = string(cl.Verdict)
	}

	for _, c := range candidates {
		if len(c.claimIDs) == 0 {
			continue
		}
		bad := 0
		for id := range c.claimIDs {
			switch verdicts[id] {
			case "debunked", "misleading":
				bad++
			}
		}
		risk[c.name] = float64(bad) / float64(len(c.claimIDs))
	}
	return risk, nil
}

// tokenize lowercases and splits text on non-letter runes, dropping stop
// words and very short tokens. Accented Spanish letters are kept.
func (d *Detector) tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) < 3 || d.stop[f] {
			continue
		}
		out = append(out, f)
	}
	return out
}
