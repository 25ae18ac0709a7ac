package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		CORSOrigins     []string      `yaml:"cors_origins"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Data struct {
		Dir string `yaml:"dir"`
	} `yaml:"data"`
	Market struct {
		BaseURL       string        `yaml:"base_url"`
		APIKey        string        `yaml:"api_key"`
		Symbol        string        `yaml:"symbol"`
		StartDate     string        `yaml:"start_date"`
		EndDate       string        `yaml:"end_date"`
		Timeout       time.Duration `yaml:"timeout"`
		MaxRetries    int           `yaml:"max_retries"`
		RetryInterval time.Duration `yaml:"retry_interval"`
	} `yaml:"market"`
	News struct {
		BaseURL       string        `yaml:"base_url"`
		APIKey        string        `yaml:"api_key"`
		Query         string        `yaml:"query"`
		Timeout       time.Duration `yaml:"timeout"`
		MaxRetries    int           `yaml:"max_retries"`
		RetryInterval time.Duration `yaml:"retry_interval"`
	} `yaml:"news"`
	Pipeline struct {
		WindowLength   int     `yaml:"window_length"`
		TrainSplit     float64 `yaml:"train_split"`
		EnsembleWeight float64 `yaml:"ensemble_weight"`
		UseSentiment   bool    `yaml:"use_sentiment"`
		Epochs         int     `yaml:"epochs"`
		LearningRate   float64 `yaml:"learning_rate"`
	} `yaml:"pipeline"`
	Cache struct {
		Enabled bool          `yaml:"enabled"`
		Backend string        `yaml:"backend"` // memory or redis
		TTL     time.Duration `yaml:"ttl"`
		Redis   struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" {
		c.Market.APIKey = v
	}
	if v := os.Getenv("NEWSAPI_API_KEY"); v != "" {
		c.News.APIKey = v
	}
	if v := os.Getenv("SYMBOL"); v != "" {
		c.Market.Symbol = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		c.Data.Dir = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir is required")
	}
	if c.Pipeline.WindowLength <= 0 {
		return fmt.Errorf("pipeline.window_length must be positive, got %d", c.Pipeline.WindowLength)
	}
	if c.Pipeline.TrainSplit <= 0 || c.Pipeline.TrainSplit >= 1 {
		return fmt.Errorf("pipeline.train_split must be in (0, 1), got %v", c.Pipeline.TrainSplit)
	}
	if c.Pipeline.EnsembleWeight < 0 || c.Pipeline.EnsembleWeight > 1 {
		return fmt.Errorf("pipeline.ensemble_weight must be in [0, 1], got %v", c.Pipeline.EnsembleWeight)
	}
	if c.Cache.Enabled && c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be 'memory' or 'redis', got '%s'", c.Cache.Backend)
	}
	return nil
}

// ValidatePipeline checks the fields only the batch pipeline needs.
func (c *Config) ValidatePipeline() error {
	if c.Market.APIKey == "" {
		return fmt.Errorf("market.api_key is required")
	}
	if c.Market.Symbol == "" {
		return fmt.Errorf("market.symbol is required")
	}
	if c.News.APIKey == "" {
		return fmt.Errorf("news.api_key is required")
	}
	if c.News.Query == "" {
		return fmt.Errorf("news.query is required")
	}
	return nil
}
