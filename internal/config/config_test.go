package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GracePeriodDays != 30 {
		t.Errorf("default grace = %d, want 30", cfg.GracePeriodDays)
	}
	if cfg.OutputPath == "" {
		t.Error("default output path must not be empty")
	}
	if cfg.CurrencyCode != "MXN" {
		t.Errorf("default currency = %q, want MXN", cfg.CurrencyCode)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GracePeriodDays != 30 {
		t.Error("should return defaults for missing file")
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	content := `{"grace_period_days": 15, "output_path": "reporte.xlsx", "currency_code": "USD"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.GracePeriodDays != 15 {
		t.Errorf("grace = %d, want 15", cfg.GracePeriodDays)
	}
	if cfg.OutputPath != "reporte.xlsx" {
		t.Errorf("output = %q", cfg.OutputPath)
	}
	if cfg.CurrencyCode != "USD" {
		t.Errorf("currency = %q", cfg.CurrencyCode)
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestLoadFrom_ClampsNegativeGrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"grace_period_days": -5}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.GracePeriodDays != 30 {
		t.Errorf("grace = %d, want clamp to 30", cfg.GracePeriodDays)
	}
}

func TestSaveToAndLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	cfg := DefaultConfig()
	cfg.GracePeriodDays = 45
	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if loaded.GracePeriodDays != 45 {
		t.Errorf("grace = %d, want 45", loaded.GracePeriodDays)
	}
}
