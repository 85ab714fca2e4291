// Package config loads the ddf settings from a YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/etnz/fundview"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Data struct {
		PricesFile string `yaml:"prices_file"`
		NamesFile  string `yaml:"names_file"`
		RanksFile  string `yaml:"ranks_file"`
	} `yaml:"data"`
	BasePrice float64 `yaml:"base_price"`
	Count     int     `yaml:"count"`
	Currency  string  `yaml:"currency"`
	Viewport  struct {
		X          float64 `yaml:"x"`
		Y          float64 `yaml:"y"`
		Breakpoint int     `yaml:"breakpoint"`
	} `yaml:"viewport"`
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	cfg := &Config{
		BasePrice: fundview.DefaultBasePrice,
		Count:     fundview.DefaultCount,
		Currency:  fundview.DefaultCurrency,
	}
	cfg.Data.PricesFile = "prices.csv"
	cfg.Data.NamesFile = "names.csv"
	cfg.Viewport.X = fundview.DefaultViewport.X
	cfg.Viewport.Y = fundview.DefaultViewport.Y
	cfg.Viewport.Breakpoint = fundview.DefaultViewport.Breakpoint
	return cfg
}

// Load reads config from a YAML file, then applies environment variable overrides.
//
// Fields absent from the file keep their Default value. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %q: %w", path, err)
			}
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DDF_PRICES_FILE"); v != "" {
		cfg.Data.PricesFile = v
	}
	if v := os.Getenv("DDF_NAMES_FILE"); v != "" {
		cfg.Data.NamesFile = v
	}
	if v := os.Getenv("DDF_RANKS_FILE"); v != "" {
		cfg.Data.RanksFile = v
	}
	if v := os.Getenv("DDF_CURRENCY"); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv("DDF_BASE_PRICE"); v != "" {
		base, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DDF_BASE_PRICE: %w", err)
		}
		cfg.BasePrice = base
	}
	if v := os.Getenv("DDF_BREAKPOINT"); v != "" {
		breakpoint, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DDF_BREAKPOINT: %w", err)
		}
		cfg.Viewport.Breakpoint = breakpoint
	}
	if v := os.Getenv("DDF_VERBOSE"); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DDF_VERBOSE: %w", err)
		}
		cfg.Verbose = verbose
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.BasePrice <= 0 {
		return fmt.Errorf("base_price must be positive got %v", c.BasePrice)
	}
	if c.Count < 0 {
		return fmt.Errorf("count must not be negative got %d", c.Count)
	}
	if c.Viewport.Breakpoint < 0 {
		return fmt.Errorf("viewport.breakpoint must not be negative got %d", c.Viewport.Breakpoint)
	}
	if money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("unknown currency %q", c.Currency)
	}
	return nil
}

// ViewportSettings returns the narrow viewport settings.
func (c *Config) ViewportSettings() fundview.Viewport {
	return fundview.Viewport{X: c.Viewport.X, Y: c.Viewport.Y, Breakpoint: c.Viewport.Breakpoint}
}
