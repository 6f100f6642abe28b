package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Taxonomy is the fixed topic taxonomy loaded at startup. Claims are only
// ever linked to topics that exist here.
type Taxonomy struct {
	Topics []TaxonomyTopic `yaml:"topics"`
}

// TaxonomyTopic is one topic of the fixed taxonomy.
type TaxonomyTopic struct {
	Slug     string   `yaml:"slug"`
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// LoadTaxonomy reads and validates the taxonomy file.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
	}

	seen := make(map[string]bool, len(t.Topics))
	for _, topic := range t.Topics {
		if topic.Slug == "" || topic.Name == "" {
			return nil, fmt.Errorf("taxonomy topic missing slug or name: %+v", topic)
		}
		if seen[topic.Slug] {
			return nil, fmt.Errorf("duplicate taxonomy slug: %s", topic.Slug)
		}
		seen[topic.Slug] = true
	}
	return &t, nil
}

// HasSlug reports whether slug is part of the taxonomy.
func (t *Taxonomy) HasSlug(slug string) bool {
	for _, topic := range t.Topics {
		if topic.Slug == slug {
			return true
		}
	}
	return false
}

// Slugs returns all taxonomy slugs in file order.
func (t *Taxonomy) Slugs() []string {
	out := make([]string, len(t.Topics))
	for i, topic := range t.Topics {
		out[i] = topic.Slug
	}
	return out
}
