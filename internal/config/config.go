package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vitrine/catalog/internal/pagination"
	"github.com/vitrine/catalog/pkg/currency"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings of the catalog CLI
type Config struct {
	// Locale selects the currency profile used for display ("us", "pt-br").
	Locale string `yaml:"locale"`
	// WithSymbol prefixes amounts with the currency symbol.
	WithSymbol bool `yaml:"with_symbol"`
	// StorePath is the YAML file holding tags and products.
	StorePath string `yaml:"store_path"`
	// PerPage is the default page size of listings.
	PerPage   int   `yaml:"per_page"`
	PageSizes []int `yaml:"page_sizes"`
	// BaseURL is where product pages are published, used for product links.
	BaseURL string `yaml:"base_url"`

	Notifications Notifications `yaml:"notifications"`
}

// Notifications configures the success notices shown after a mutation
type Notifications struct {
	Enabled   bool   `yaml:"enabled"`
	AutoClose string `yaml:"auto_close"`
	Position  string `yaml:"position"`
	Theme     string `yaml:"theme"`
}

// Default returns the settings used when no file is given
func Default() Config {
	return Config{
		Locale:     currency.DefaultTag,
		WithSymbol: true,
		StorePath:  "catalog.yaml",
		PerPage:    pagination.DefaultPerPage,
		PageSizes:  append([]int(nil), pagination.DefaultPageSizes...),
		BaseURL:    "http://localhost:5173",
		Notifications: Notifications{
			Enabled:   true,
			AutoClose: "3s",
			Position:  "top-right",
			Theme:     "dark",
		},
	}
}

// Loader handles reading configuration files
type Loader struct{}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFromFile reads a YAML file over the defaults and validates the result
func (l *Loader) LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return l.Load(data)
}

// Load parses YAML bytes over the defaults and validates the result
func (l *Loader) Load(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := l.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the loaded configuration
func (l *Loader) Validate(cfg *Config) error {
	if _, err := currency.Lookup(cfg.Locale); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.StorePath == "" {
		return fmt.Errorf("%w: store path is required", ErrInvalidConfig)
	}
	if len(cfg.PageSizes) == 0 {
		return fmt.Errorf("%w: at least one page size is required", ErrInvalidConfig)
	}
	for _, n := range cfg.PageSizes {
		if n <= 0 {
			return fmt.Errorf("%w: page sizes must be positive, got %d", ErrInvalidConfig, n)
		}
	}
	if !pagination.Allowed(cfg.PerPage, cfg.PageSizes) {
		return fmt.Errorf("%w: per_page %d is not one of the page sizes %v", ErrInvalidConfig, cfg.PerPage, cfg.PageSizes)
	}
	if _, err := cfg.Notifications.AutoCloseDuration(); err != nil {
		return fmt.Errorf("%w: notifications.auto_close: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Currency resolves the configured locale profile
func (c *Config) Currency() currency.Locale {
	loc, err := currency.Lookup(c.Locale)
	if err != nil {
		return currency.PtBR
	}
	return loc
}
