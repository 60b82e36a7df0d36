package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DADOPS_DATA_DIR", "")
	t.Setenv("DADOPS_THEME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("default theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if cfg.General.DataDir != "" {
		t.Errorf("default data dir = %q, want empty", cfg.General.DataDir)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DADOPS_DATA_DIR", "")
	t.Setenv("DADOPS_THEME", "")

	want := Config{
		General:    GeneralConfig{DataDir: "/tmp/dadops-test"},
		Appearance: AppearanceConfig{Theme: "catppuccin-mocha"},
	}
	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DADOPS_DATA_DIR", "/srv/dadops")
	t.Setenv("DADOPS_THEME", "terminal")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DataDir != "/srv/dadops" {
		t.Errorf("DataDir = %q, want /srv/dadops", cfg.General.DataDir)
	}
	if cfg.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q, want terminal", cfg.Appearance.Theme)
	}
}

func TestDataDirResolution(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	cfg := DefaultConfig()
	if got, want := DataDir(cfg), filepath.Join("/xdg/data", "dadops"); got != want {
		t.Errorf("DataDir = %q, want %q", got, want)
	}

	cfg.General.DataDir = "/explicit"
	if got := DataDir(cfg); got != "/explicit" {
		t.Errorf("explicit DataDir = %q, want /explicit", got)
	}

	if got, want := StatePath(cfg), filepath.Join("/explicit", "dadops.db"); got != want {
		t.Errorf("StatePath = %q, want %q", got, want)
	}
}
