package config

import "time"

// AdapterConfig configures one scraper adapter.
type AdapterConfig struct {
	Enabled       bool     `yaml:"enabled"`
	RatePerMinute int      `yaml:"rate_per_minute"`
	Endpoint      string   `yaml:"endpoint"`
	APIKeyEnv     string   `yaml:"api_key_env"`
	Feeds         []string `yaml:"feeds"` // RSS adapter only
}

// ScraperConfig configures the scrape driver and its adapters.
type ScraperConfig struct {
	Keywords    []string      `yaml:"keywords"`
	Window      time.Duration `yaml:"window"`
	Concurrency int           `yaml:"concurrency"`
	MaxPerTick  int           `yaml:"max_per_tick"`

	Social AdapterConfig `yaml:"social"`
	RSS    AdapterConfig `yaml:"rss"`
	Video  AdapterConfig `yaml:"video"`
	Forum  AdapterConfig `yaml:"forum"`
}

// DefaultScraperConfig returns the built-in scraper defaults.
func DefaultScraperConfig() *ScraperConfig {
	return &ScraperConfig{
		Keywords:    []string{"gobierno", "elecciones", "inflación", "seguridad"},
		Window:      time.Hour,
		Concurrency: 4,
		MaxPerTick:  200,
		Social:      AdapterConfig{Enabled: true, RatePerMinute: 30},
		RSS:         AdapterConfig{Enabled: true, RatePerMinute: 60},
		Video:       AdapterConfig{Enabled: false, RatePerMinute: 10},
		Forum:       AdapterConfig{Enabled: false, RatePerMinute: 20},
	}
}
