package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Sync.IntervalMinutes != 10 {
		t.Errorf("Expected sync interval 10 minutes, got %d", cfg.Sync.IntervalMinutes)
	}

	if cfg.Sync.PreviewLimit != 10 {
		t.Errorf("Expected preview limit 10, got %d", cfg.Sync.PreviewLimit)
	}

	if cfg.Sync.CacheMessages != true {
		t.Error("Expected CacheMessages to be true")
	}

	if cfg.UI.Theme != "auto" {
		t.Errorf("Expected theme 'auto', got %q", cfg.UI.Theme)
	}
}

func TestSyncInterval(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SyncInterval() != 10*time.Minute {
		t.Errorf("Expected 10m, got %v", cfg.SyncInterval())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		wantWarning bool
	}{
		{
			name:        "default config is valid",
			config:      DefaultConfig(),
			wantWarning: false,
		},
		{
			name: "negative sync interval",
			config: &Config{
				Sync: SyncConfig{IntervalMinutes: -1},
			},
			wantWarning: true,
		},
		{
			name: "negative preview limit",
			config: &Config{
				Sync: SyncConfig{PreviewLimit: -5},
			},
			wantWarning: true,
		},
		{
			name: "invalid theme",
			config: &Config{
				UI: UIConfig{Theme: "invalid"},
			},
			wantWarning: true,
		},
		{
			name: "missing root directory",
			config: &Config{
				General: GeneralConfig{Roots: []string{"/does/not/exist-xyz"}},
			},
			wantWarning: true,
		},
		{
			name: "empty root entry",
			config: &Config{
				General: GeneralConfig{Roots: []string{""}},
			},
			wantWarning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.config.Validate()
			hasWarnings := len(warnings) > 0
			if hasWarnings != tt.wantWarning {
				t.Errorf("Validate() hasWarnings = %v, want %v. Warnings: %v", hasWarnings, tt.wantWarning, warnings)
			}
		})
	}
}

func TestLoadPreservesDefaults(t *testing.T) {
	// Create a temp config file with partial config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	// Only specify some values - others should keep defaults
	tomlContent := `[sync]
interval_minutes = 3

[keys]
delete = "x"
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	// Check specified values were loaded
	if cfg.Sync.IntervalMinutes != 3 {
		t.Errorf("Expected sync interval 3, got %d", cfg.Sync.IntervalMinutes)
	}

	if cfg.Keys.Delete != "x" {
		t.Errorf("Expected delete key 'x', got %q", cfg.Keys.Delete)
	}

	// Check that non-specified values keep defaults
	if cfg.Sync.PreviewLimit != 10 {
		t.Errorf("Expected default preview limit 10, got %d", cfg.Sync.PreviewLimit)
	}

	// IMPORTANT: Check that boolean defaults are preserved when not specified
	if cfg.Sync.CacheMessages != true {
		t.Error("Expected CacheMessages to remain true (default) when not specified in config")
	}

	if cfg.Keys.Up != "up,k" {
		t.Errorf("Expected default up binding, got %q", cfg.Keys.Up)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if cfg.Sync.IntervalMinutes != 10 {
		t.Errorf("Expected defaults for missing file, got interval %d", cfg.Sync.IntervalMinutes)
	}
}

func TestConfigPath(t *testing.T) {
	path := ConfigPath()
	if path == "" {
		t.Error("ConfigPath should not return empty string")
	}

	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected config.toml, got %q", filepath.Base(path))
	}

	dir := filepath.Dir(path)
	if filepath.Base(dir) != "git-smart-checkout" {
		t.Errorf("Expected git-smart-checkout dir, got %q", filepath.Base(dir))
	}
}
