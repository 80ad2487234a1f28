// Package config loads the analyst-tunable settings file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

type Config struct {
	// GracePeriodDays is the default grace window; the reconcile command's
	// --grace-days flag overrides it per run.
	GracePeriodDays int    `json:"grace_period_days"`
	OutputPath      string `json:"output_path"`
	CurrencyCode    string `json:"currency_code"`
}

func DefaultConfig() Config {
	return Config{
		GracePeriodDays: 30,
		OutputPath:      "Satech_Reporte_Facturacion.xlsx",
		CurrencyCode:    "MXN",
	}
}

func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "devicebilling")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "devicebilling")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "settings.json")
}

func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.GracePeriodDays < 0 {
		cfg.GracePeriodDays = DefaultConfig().GracePeriodDays
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultConfig().OutputPath
	}
	if cfg.CurrencyCode == "" {
		cfg.CurrencyCode = DefaultConfig().CurrencyCode
	}

	return cfg, nil
}

func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

func SaveTo(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
