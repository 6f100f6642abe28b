package config

import "time"

// TrendingConfig holds the trending detector weights and window parameters.
// priority = w_trend*trend + w_velocity*velocity + w_correlation*correlation
//          + w_relevance*relevance + w_risk*risk
type TrendingConfig struct {
	Window        time.Duration `yaml:"window"`
	TopN          int           `yaml:"top_n"`
	MinFrequency  int           `yaml:"min_frequency"`
	WTrend        float64       `yaml:"w_trend"`
	WVelocity     float64       `yaml:"w_velocity"`
	WCorrelation  float64       `yaml:"w_correlation"`
	WRelevance    float64       `yaml:"w_relevance"`
	WRisk         float64       `yaml:"w_risk"`
	StopWords     []string      `yaml:"stop_words"`
	TotalPlatform int           `yaml:"total_platforms"`
}

// DefaultTrendingConfig returns the built-in trending defaults.
func DefaultTrendingConfig() *TrendingConfig {
	return &TrendingConfig{
		Window:        24 * time.Hour,
		TopN:          20,
		MinFrequency:  3,
		WTrend:        0.30,
		WVelocity:     0.20,
		WCorrelation:  0.15,
		WRelevance:    0.15,
		WRisk:         0.20,
		TotalPlatform: 5,
		StopWords: []string{
			"el", "la", "los", "las", "un", "una", "de", "del", "en", "que",
			"por", "para", "con", "sin", "se", "su", "es", "al", "lo", "como",
			"más", "este", "esta", "estos", "hay", "fue", "ser", "hoy", "año",
		},
	}
}
