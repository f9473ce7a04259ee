// Package config loads back-office settings from a TOML file with
// environment-variable overrides. The file is created with defaults on first
// run so operators can edit it in place.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const configFileName = "config.toml"

// Config holds everything the process needs to find its row store and tabs.
type Config struct {
	// DBPath locates the local sqlite row store. Empty selects
	// <config dir>/backoffice.db.
	DBPath string `toml:"db_path"`

	// Timezone is the IANA name all sheet timestamps are rendered in.
	Timezone string `toml:"timezone"`

	Sheets SheetConfig `toml:"sheets"`
}

// SheetConfig names the tabs of the backing spreadsheet.
type SheetConfig struct {
	Active  string `toml:"active"`
	History string `toml:"history"`
	Cases   string `toml:"cases"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Timezone: "America/Argentina/Buenos_Aires",
		Sheets: SheetConfig{
			Active:  "Active Tasks",
			History: "Task History",
			Cases:   "Cases",
		},
	}
}

// LoadOrInit reads <dir>/config.toml, writing one with defaults when absent,
// then applies BACKOFFICE_* environment overrides.
func LoadOrInit(dir string) (Config, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Config{}, fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(dir, configFileName)
	cfg := Default()
	if b, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	} else {
		b, err := toml.Marshal(cfg)
		if err != nil {
			return Config{}, fmt.Errorf("encoding default config: %w", err)
		}
		if err := os.WriteFile(path, b, 0o644); err != nil {
			return Config{}, fmt.Errorf("writing %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	normalize(&cfg, dir)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("BACKOFFICE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("BACKOFFICE_TIMEZONE"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("BACKOFFICE_ACTIVE_SHEET"); v != "" {
		cfg.Sheets.Active = v
	}
	if v := os.Getenv("BACKOFFICE_HISTORY_SHEET"); v != "" {
		cfg.Sheets.History = v
	}
	if v := os.Getenv("BACKOFFICE_CASES_SHEET"); v != "" {
		cfg.Sheets.Cases = v
	}
}

func normalize(cfg *Config, dir string) {
	def := Default()
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dir, "backoffice.db")
	}
	if cfg.Timezone == "" {
		cfg.Timezone = def.Timezone
	}
	if cfg.Sheets.Active == "" {
		cfg.Sheets.Active = def.Sheets.Active
	}
	if cfg.Sheets.History == "" {
		cfg.Sheets.History = def.Sheets.History
	}
	if cfg.Sheets.Cases == "" {
		cfg.Sheets.Cases = def.Sheets.Cases
	}
}
