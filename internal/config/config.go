package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"IndexFeed/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Output struct {
		Dir  string `yaml:"dir"`
		File string `yaml:"file"`
	} `yaml:"output"`
	Fetch struct {
		YearsBack int               `yaml:"years_back"`
		Tickers   map[string]string `yaml:"tickers"` // logical symbol -> provider ticker
	} `yaml:"fetch"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"` // empty means run once and exit
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"` // empty disables the audit recorder
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error; the defaults reproduce the standard run.
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

	// Environment variable overrides
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("YEARS_BACK"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Fetch.YearsBack = n
		}
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "data"
	}
	if cfg.Output.File == "" {
		cfg.Output.File = "index_data.json"
	}
	if cfg.Fetch.YearsBack == 0 {
		cfg.Fetch.YearsBack = 20
	}
	if len(cfg.Fetch.Tickers) == 0 {
		cfg.Fetch.Tickers = map[string]string{
			model.SymbolACWI:   "ACWI",     // MSCI ACWI (USD)
			model.SymbolFang:   "^NYFANG",  // NYSE FANG+ (USD)
			model.SymbolNikkei: "^N225",    // Nikkei 225 (JPY)
			model.SymbolUSDJPY: "USDJPY=X", // exchange rate
		}
	}

	return cfg, nil
}

// Validate checks that the fixed symbol set is fully mapped.
func (c *Config) Validate() error {
	if c.Fetch.YearsBack <= 0 {
		return fmt.Errorf("fetch.years_back must be positive")
	}
	if len(c.Fetch.Tickers) != len(model.Symbols) {
		return fmt.Errorf("fetch.tickers must map exactly %d symbols, got %d", len(model.Symbols), len(c.Fetch.Tickers))
	}
	for _, sym := range model.Symbols {
		if c.Fetch.Tickers[sym] == "" {
			return fmt.Errorf("fetch.tickers.%s is required", sym)
		}
	}
	return nil
}

// OutputPath returns the full path of the JSON output file.
func (c *Config) OutputPath() string {
	return filepath.Join(c.Output.Dir, c.Output.File)
}
