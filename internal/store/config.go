package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Symbol string `yaml:"symbol"`
	Period string `yaml:"period"`

	Indicators struct {
		RSIPeriod    int     `yaml:"rsi_period"`
		MACDFast     int     `yaml:"macd_fast"`
		MACDSlow     int     `yaml:"macd_slow"`
		MACDSignal   int     `yaml:"macd_signal"`
		BBWindow     int     `yaml:"bb_window"`
		BBStdDev     float64 `yaml:"bb_stddev"`
		StochKPeriod int     `yaml:"stoch_k_period"`
		StochDPeriod int     `yaml:"stoch_d_period"`
	} `yaml:"indicators"`

	Moves struct {
		ThresholdPct float64 `yaml:"threshold_pct"`
		IncludeNews  bool    `yaml:"include_news"`
	} `yaml:"moves"`

	News struct {
		MaxArticles    int `yaml:"max_articles"`
		ScraperTimeout int `yaml:"scraper_timeout_seconds"`
	} `yaml:"news"`

	Sentiment struct {
		ML struct {
			Enabled  bool   `yaml:"enabled"`
			Provider string `yaml:"provider"`
			Model    string `yaml:"model"`
		} `yaml:"ml"`
	} `yaml:"sentiment"`
}

func (c *Config) Validate() error {
	if c.Symbol == "" {
		return fmt.Errorf("symbol cannot be empty")
	}
	if c.Moves.ThresholdPct < 0 {
		return fmt.Errorf("moves.threshold_pct must be >= 0, got %.2f", c.Moves.ThresholdPct)
	}
	if c.Indicators.MACDFast >= c.Indicators.MACDSlow {
		return fmt.Errorf("indicators.macd_fast (%d) must be less than macd_slow (%d)",
			c.Indicators.MACDFast, c.Indicators.MACDSlow)
	}
	if c.Sentiment.ML.Enabled {
		p := c.Sentiment.ML.Provider
		if p != "OPENAI" && p != "CLAUDE" {
			return fmt.Errorf("sentiment.ml.provider must be 'OPENAI' or 'CLAUDE', got '%s'", p)
		}
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	if c.Period == "" {
		c.Period = "1y"
	}
	if c.Indicators.RSIPeriod == 0 {
		c.Indicators.RSIPeriod = 14
	}
	if c.Indicators.MACDFast == 0 {
		c.Indicators.MACDFast = 12
	}
	if c.Indicators.MACDSlow == 0 {
		c.Indicators.MACDSlow = 26
	}
	if c.Indicators.MACDSignal == 0 {
		c.Indicators.MACDSignal = 9
	}
	if c.Indicators.BBWindow == 0 {
		c.Indicators.BBWindow = 20
	}
	if c.Indicators.BBStdDev == 0 {
		c.Indicators.BBStdDev = 2.0
	}
	if c.Indicators.StochKPeriod == 0 {
		c.Indicators.StochKPeriod = 14
	}
	if c.Indicators.StochDPeriod == 0 {
		c.Indicators.StochDPeriod = 3
	}
	if c.Moves.ThresholdPct == 0 {
		c.Moves.ThresholdPct = 3.0
	}
	if c.News.MaxArticles == 0 {
		c.News.MaxArticles = 3
	}
	if c.News.ScraperTimeout == 0 {
		c.News.ScraperTimeout = 30
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}
