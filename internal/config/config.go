// Package config handles git-smart-checkout configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents git-smart-checkout configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Sync    SyncConfig    `toml:"sync"`
	UI      UIConfig      `toml:"ui"`
	Keys    KeysConfig    `toml:"keys"`
	Debug   DebugConfig   `toml:"debug"`
}

// GeneralConfig contains general settings.
type GeneralConfig struct {
	// Extra directories scanned for repositories, in addition to the
	// working directory.
	Roots []string `toml:"roots"`
}

// SyncConfig controls the background rebuild cycle.
type SyncConfig struct {
	// Minutes between automatic rebuilds of the branch list.
	IntervalMinutes int `toml:"interval_minutes"`

	// How many of the most recent local branches get a commit-message
	// preview.
	PreviewLimit int `toml:"preview_limit"`

	// Whether commit messages are memoized on disk between runs.
	CacheMessages bool `toml:"cache_messages"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Color theme: auto, dark, light
	Theme string `toml:"theme"`

	// Show abbreviated commit ids next to branch names
	ShowShortIDs bool `toml:"show_short_ids"`

	// Show commit-message previews for recent local branches
	ShowPreviews bool `toml:"show_previews"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Home    string `toml:"home"`
	End     string `toml:"end"`
	Select  string `toml:"select"`
	Rename  string `toml:"rename"`
	Delete  string `toml:"delete"`
	Refresh string `toml:"refresh"`
	Fetch   string `toml:"fetch"`
	Filter  string `toml:"filter"`
	Help    string `toml:"help"`
	Quit    string `toml:"quit"`
}

// DebugConfig controls the debug log.
type DebugConfig struct {
	// Path of the debug log file; empty disables logging.
	LogFile string `toml:"log_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			Roots: []string{},
		},
		Sync: SyncConfig{
			IntervalMinutes: 10,
			PreviewLimit:    10,
			CacheMessages:   true,
		},
		UI: UIConfig{
			Theme:        "auto",
			ShowShortIDs: true,
			ShowPreviews: true,
		},
		Keys: KeysConfig{
			Up:      "up,k",
			Down:    "down,j",
			Home:    "home,g",
			End:     "end,G",
			Select:  "enter",
			Rename:  "r",
			Delete:  "d",
			Refresh: "R",
			Fetch:   "f",
			Filter:  "/",
			Help:    "?",
			Quit:    "q,ctrl+c",
		},
		Debug: DebugConfig{},
	}
}

// SyncInterval returns the automatic rebuild interval.
func (c *Config) SyncInterval() time.Duration {
	return time.Duration(c.Sync.IntervalMinutes) * time.Minute
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/git-smart-checkout/config.toml (XDG style).
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "git-smart-checkout", "config.toml")
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "git-smart-checkout", "config.toml")
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "git-smart-checkout", "config.toml")
	}
	return filepath.Join(configDir, "git-smart-checkout", "config.toml")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// Unmarshal directly into default config.
	// go-toml/v2 only overwrites fields present in the TOML file,
	// preserving defaults for unspecified fields (including booleans).
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to the config file.
func Save(cfg *Config) error {
	path := ConfigPath()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Sync.IntervalMinutes < 0 {
		warnings = append(warnings, fmt.Sprintf("sync.interval_minutes must not be negative, got %d", c.Sync.IntervalMinutes))
	}
	if c.Sync.PreviewLimit < 0 {
		warnings = append(warnings, fmt.Sprintf("sync.preview_limit must not be negative, got %d", c.Sync.PreviewLimit))
	}

	if c.UI.Theme != "" &&
		c.UI.Theme != "auto" &&
		c.UI.Theme != "dark" &&
		c.UI.Theme != "light" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.theme: %s (expected auto, dark, or light)", c.UI.Theme))
	}

	for _, root := range c.General.Roots {
		if root == "" {
			warnings = append(warnings, "general.roots contains an empty entry")
			continue
		}
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			warnings = append(warnings, fmt.Sprintf("general.roots entry is not a directory: %s", root))
		}
	}

	return warnings
}
