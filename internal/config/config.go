package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file values
const (
	EnvAPIURL       = "STOREFRONT_API_URL"
	EnvRestaurantID = "STOREFRONT_RESTAURANT_ID"
	EnvLogLevel     = "STOREFRONT_LOG_LEVEL"
)

// Config represents the application configuration
type Config struct {
	RestaurantID string        `yaml:"restaurant_id"`
	API          APIConfig     `yaml:"api"`
	Log          LogConfig     `yaml:"log"`
	Metrics      MetricsConfig `yaml:"metrics"`
	Mock         MockConfig    `yaml:"mock"`
}

// APIConfig points the client at the storefront API
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// LogConfig controls the structured logger
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    int    `yaml:"port"`
	Path    string `yaml:"path"`
}

// MockConfig starts the bundled fixture API instead of talking to a real one
type MockConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		RestaurantID: "1",
		API: APIConfig{
			BaseURL: "http://localhost:3000/api/v1",
			Timeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
			File:   "storefront.log",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9090,
			Path:    "/metrics",
		},
		Mock: MockConfig{
			Enabled: false,
			Addr:    "127.0.0.1:3001",
		},
	}
}

// Load reads configuration from a YAML file on top of the defaults and then
// applies environment overrides. A missing file is not an error. The result
// is not validated; callers apply their own overrides and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv(os.LookupEnv)
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		c.API.BaseURL = v
	}
	if v, ok := lookup(EnvRestaurantID); ok && v != "" {
		c.RestaurantID = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.RestaurantID == "" {
		return errors.New("restaurant_id is required")
	}
	if _, err := strconv.ParseInt(c.RestaurantID, 10, 64); err != nil {
		return fmt.Errorf("restaurant_id must be numeric: %q", c.RestaurantID)
	}
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url is not an absolute URL: %q", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.Metrics.Enabled {
		if c.Metrics.Port <= 0 || c.Metrics.Port > 65535 {
			return fmt.Errorf("metrics.port out of range: %d", c.Metrics.Port)
		}
		if !strings.HasPrefix(c.Metrics.Path, "/") {
			return fmt.Errorf("metrics.path must start with /, got %q", c.Metrics.Path)
		}
	}
	if c.Mock.Enabled && c.Mock.Addr == "" {
		return errors.New("mock.addr is required when mock is enabled")
	}
	return nil
}
