package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deepdelve.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error for missing file: %v", err)
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("default log level = %q, want INFO", cfg.Logging.Level)
	}
	if cfg.Generation.Seed != 0 || cfg.Generation.Width != 0 {
		t.Errorf("unexpected generation defaults %+v", cfg.Generation)
	}
}

func TestLoadConfig_FromYAML(t *testing.T) {
	path := writeConfig(t, `generation:
  seed: 42
  width: 60
  height: 40
  record_history: true
logging:
  level: DEBUG
locale:
  language: de_DE
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Generation.Seed != 42 || cfg.Generation.Width != 60 || cfg.Generation.Height != 40 {
		t.Errorf("generation not loaded: %+v", cfg.Generation)
	}
	if !cfg.Generation.RecordHistory {
		t.Error("record_history not loaded")
	}
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("log level = %q, want DEBUG", cfg.Logging.Level)
	}
	if cfg.Locale.Language != "de_DE" || cfg.Locale.Domain != "default" {
		t.Errorf("locale not merged with defaults: %+v", cfg.Locale)
	}
}

func TestLoadConfig_RejectsTinyGrid(t *testing.T) {
	path := writeConfig(t, "generation:\n  width: 10\n")
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for width below the minimum")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "generation: [unclosed\n")
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoadConfig_SeedFromEnvironment(t *testing.T) {
	t.Setenv("DEEPDELVE_SEED", "1234")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Generation.Seed != 1234 {
		t.Errorf("seed = %d, want 1234", cfg.Generation.Seed)
	}
}
