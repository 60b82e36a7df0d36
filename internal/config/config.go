// Package config handles the DadOps config file and data directory layout.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all DadOps configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir string `toml:"data_dir,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{Theme: "flexoki-dark"},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dadops")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "dadops")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// A .env file in the working directory and DADOPS_* environment variables
// override file values.
func Load() (Config, error) {
	_ = godotenv.Load() // optional, missing .env is fine

	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if dir := os.Getenv("DADOPS_DATA_DIR"); dir != "" {
		cfg.General.DataDir = dir
	}
	if theme := os.Getenv("DADOPS_THEME"); theme != "" {
		cfg.Appearance.Theme = theme
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// DataDir resolves the state directory: config value first, then the XDG
// data directory.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "dadops")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "dadops")
}

// StatePath returns the full path to the state database.
func StatePath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "dadops.db")
}
