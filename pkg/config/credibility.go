package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Credibility tiers. Tier influences evidence ordering and verification
// weighting but never filters a source, except blacklisted domains which are
// dropped entirely.
const (
	TierOfficial    = 1 // government, central bank
	TierVettedPress = 2
	TierOtherPress  = 3
	TierUnknown     = 4
)

// CredibilityConfig maps evidence domains to tiers.
type CredibilityConfig struct {
	Official    []string `yaml:"official"`
	VettedPress []string `yaml:"vetted_press"`
	OtherPress  []string `yaml:"other_press"`
	Blacklist   []string `yaml:"blacklist"`
}

// LoadCredibility reads the credibility tier file.
func LoadCredibility(path string) (*CredibilityConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var c CredibilityConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse credibility config: %w", err)
	}
	return &c, nil
}

// TierFor returns the credibility tier for a domain. Suffix matching lets
// "banxico.org.mx" match a configured "org.mx" entry and subdomains match
// their parent.
func (c *CredibilityConfig) TierFor(domain string) int {
	domain = strings.ToLower(domain)
	if matchDomain(c.Official, domain) {
		return TierOfficial
	}
	if matchDomain(c.VettedPress, domain) {
		return TierVettedPress
	}
	if matchDomain(c.OtherPress, domain) {
		return TierOtherPress
	}
	return TierUnknown
}

// IsBlacklisted reports whether evidence from this domain must be dropped.
func (c *CredibilityConfig) IsBlacklisted(domain string) bool {
	return matchDomain(c.Blacklist, strings.ToLower(domain))
}

func matchDomain(patterns []string, domain string) bool {
	for _, p := range patterns {
		p = strings.ToLower(p)
		if domain == p || strings.HasSuffix(domain, "."+p) {
			return true
		}
	}
	return false
}
