package config

import (
	"fmt"
	"os"
	"strconv"
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
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Model struct {
		Variant      string        `yaml:"variant"`       // closed_form or direct_d1
		HorizonYears int           `yaml:"horizon_years"` // projection window, default 10
		CacheTTL     time.Duration `yaml:"cache_ttl"`     // result cache lifetime
	} `yaml:"model"`
	Session struct {
		DebounceWindow time.Duration `yaml:"debounce_window"` // quiet window before recomputing
		MaxMsgPerSec   float64       `yaml:"max_msg_per_sec"` // per-connection input rate cap
		WriteTimeout   time.Duration `yaml:"write_timeout"`
	} `yaml:"session"`
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
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

	c.applyDefaults()

	// Validate required fields
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

	// Override with environment variables
	if v := os.Getenv("MODEL_VARIANT"); v != "" {
		c.Model.Variant = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Redis.Host = v
		c.Redis.Enabled = true
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Model.HorizonYears == 0 {
		c.Model.HorizonYears = 10
	}
	if c.Model.CacheTTL == 0 {
		c.Model.CacheTTL = 5 * time.Minute
	}
	if c.Session.DebounceWindow == 0 {
		c.Session.DebounceWindow = 300 * time.Millisecond
	}
	if c.Session.MaxMsgPerSec == 0 {
		c.Session.MaxMsgPerSec = 20
	}
	if c.Session.WriteTimeout == 0 {
		c.Session.WriteTimeout = 5 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Model.Variant == "" {
		return fmt.Errorf("model.variant is required")
	}
	if c.Model.Variant != "closed_form" && c.Model.Variant != "direct_d1" {
		return fmt.Errorf("model.variant must be 'closed_form' or 'direct_d1', got '%s'", c.Model.Variant)
	}
	if c.Model.HorizonYears < 1 || c.Model.HorizonYears > 50 {
		return fmt.Errorf("model.horizon_years must be within 1..50, got %d", c.Model.HorizonYears)
	}
	return nil
}
