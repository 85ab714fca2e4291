package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/fundview"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ddf.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DDF_PRICES_FILE", "DDF_NAMES_FILE", "DDF_RANKS_FILE", "DDF_BASE_PRICE", "DDF_CURRENCY", "DDF_BREAKPOINT", "DDF_VERBOSE"} {
		t.Setenv(key, "")
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if got, want := cfg.ViewportSettings(), fundview.DefaultViewport; got != want {
		t.Errorf("ViewportSettings() = %v, want %v", got, want)
	}
	if cfg.BasePrice != fundview.DefaultBasePrice {
		t.Errorf("BasePrice = %v, want %v", cfg.BasePrice, fundview.DefaultBasePrice)
	}
	if cfg.Count != fundview.DefaultCount {
		t.Errorf("Count = %v, want %v", cfg.Count, fundview.DefaultCount)
	}
	if cfg.Currency != "KRW" {
		t.Errorf("Currency = %q, want %q", cfg.Currency, "KRW")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
data:
  prices_file: tdf.xlsx
base_price: 100
viewport:
  y: 0
  breakpoint: 600
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) unexpected error: %v", path, err)
	}
	if cfg.Data.PricesFile != "tdf.xlsx" {
		t.Errorf("Data.PricesFile = %q, want %q", cfg.Data.PricesFile, "tdf.xlsx")
	}
	if cfg.Data.NamesFile != "names.csv" {
		t.Errorf("Data.NamesFile = %q, want %q", cfg.Data.NamesFile, "names.csv")
	}
	if cfg.BasePrice != 100 {
		t.Errorf("BasePrice = %v, want %v", cfg.BasePrice, 100)
	}
	want := fundview.Viewport{X: 0, Y: 0, Breakpoint: 600}
	if got := cfg.ViewportSettings(); got != want {
		t.Errorf("ViewportSettings() = %v, want %v", got, want)
	}
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "currency: USD\nbase_price: 100\n")
	t.Setenv("DDF_BASE_PRICE", "1")
	t.Setenv("DDF_CURRENCY", "EUR")
	t.Setenv("DDF_BREAKPOINT", "1024")
	t.Setenv("DDF_VERBOSE", "true")
	t.Setenv("DDF_RANKS_FILE", "ranks.csv")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) unexpected error: %v", path, err)
	}
	if cfg.BasePrice != 1 {
		t.Errorf("BasePrice = %v, want %v", cfg.BasePrice, 1)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("Currency = %q, want %q", cfg.Currency, "EUR")
	}
	if cfg.Viewport.Breakpoint != 1024 {
		t.Errorf("Viewport.Breakpoint = %v, want %v", cfg.Viewport.Breakpoint, 1024)
	}
	if !cfg.Verbose {
		t.Errorf("Verbose = false, want true")
	}
	if cfg.Data.RanksFile != "ranks.csv" {
		t.Errorf("Data.RanksFile = %q, want %q", cfg.Data.RanksFile, "ranks.csv")
	}
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		env     map[string]string
		want    string
	}{
		{"yaml", "base_price: [1", nil, "parse config"},
		{"base price", "", map[string]string{"DDF_BASE_PRICE": "abc"}, "DDF_BASE_PRICE"},
		{"breakpoint", "", map[string]string{"DDF_BREAKPOINT": "1.5"}, "DDF_BREAKPOINT"},
		{"verbose", "", map[string]string{"DDF_VERBOSE": "maybe"}, "DDF_VERBOSE"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tc.content))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Load() error = %v, want it to contain %q", err, tc.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(c *Config)
		valid  bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero base", func(c *Config) { c.BasePrice = 0 }, false},
		{"negative count", func(c *Config) { c.Count = -1 }, false},
		{"negative breakpoint", func(c *Config) { c.Viewport.Breakpoint = -1 }, false},
		{"unknown currency", func(c *Config) { c.Currency = "XYZ" }, false},
		{"usd", func(c *Config) { c.Currency = "USD" }, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.modify(c)
			err := c.Validate()
			if (err == nil) != tc.valid {
				t.Errorf("Validate() = %v, want valid %v", err, tc.valid)
			}
		})
	}
}
