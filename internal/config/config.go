package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Symbol source modes.
const (
	SymbolModeStatic = "static"
	SymbolModeScrape = "scrape"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	DataSource struct {
		Provider       string        `yaml:"provider"` // "yahoo" or "mock"
		RequestTimeout time.Duration `yaml:"request_timeout"`
	} `yaml:"data_source"`
	Symbols struct {
		Mode        string        `yaml:"mode"`
		URL         string        `yaml:"url"`
		Timeout     time.Duration `yaml:"timeout"`
		Limit       int           `yaml:"limit"`
		RefreshCron string        `yaml:"refresh_cron"`
	} `yaml:"symbols"`
	Fetch struct {
		Workers     int           `yaml:"workers"`
		MaxRetries  int           `yaml:"max_retries"`
		BaseBackoff time.Duration `yaml:"base_backoff"`
		ResultPause time.Duration `yaml:"result_pause"`
	} `yaml:"fetch"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies .env and environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// .env never overrides variables already set in the process environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// Environment variable overrides
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("SYMBOL_MODE"); v != "" {
		cfg.Symbols.Mode = v
	}
	if v := os.Getenv("SYMBOL_SOURCE_URL"); v != "" {
		cfg.Symbols.URL = v
	}
	if v := os.Getenv("SYMBOL_REFRESH_CRON"); v != "" {
		cfg.Symbols.RefreshCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("FETCH_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Fetch.Workers = n
		}
	}
	if v := os.Getenv("FETCH_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Fetch.MaxRetries = n
		}
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if cfg.DataSource.RequestTimeout == 0 {
		cfg.DataSource.RequestTimeout = 30 * time.Second
	}
	if cfg.Symbols.Mode == "" {
		cfg.Symbols.Mode = SymbolModeStatic
	}
	if cfg.Symbols.URL == "" {
		cfg.Symbols.URL = "https://etfdb.com/screener/"
	}
	if cfg.Symbols.Timeout == 0 {
		cfg.Symbols.Timeout = 10 * time.Second
	}
	if cfg.Symbols.Limit == 0 {
		cfg.Symbols.Limit = 100
	}
	if cfg.Fetch.Workers == 0 {
		cfg.Fetch.Workers = 5
	}
	if cfg.Fetch.MaxRetries == 0 {
		cfg.Fetch.MaxRetries = 3
	}
	if cfg.Fetch.BaseBackoff == 0 {
		cfg.Fetch.BaseBackoff = 500 * time.Millisecond
	}
	if cfg.Fetch.ResultPause == 0 {
		cfg.Fetch.ResultPause = 100 * time.Millisecond
	}
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	switch c.DataSource.Provider {
	case "yahoo", "mock":
	default:
		return fmt.Errorf("data_source.provider must be yahoo or mock, got %q", c.DataSource.Provider)
	}
	switch c.Symbols.Mode {
	case SymbolModeStatic, SymbolModeScrape:
	default:
		return fmt.Errorf("symbols.mode must be %s or %s, got %q", SymbolModeStatic, SymbolModeScrape, c.Symbols.Mode)
	}
	if c.Symbols.Limit < 0 {
		return fmt.Errorf("symbols.limit must not be negative")
	}
	if c.Fetch.Workers <= 0 {
		return fmt.Errorf("fetch.workers must be positive")
	}
	if c.Fetch.MaxRetries <= 0 {
		return fmt.Errorf("fetch.max_retries must be positive")
	}
	if c.Fetch.ResultPause < 0 {
		return fmt.Errorf("fetch.result_pause must not be negative")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Server.Port)
}
