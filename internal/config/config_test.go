package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
data:
  dir: /srv/moto2d
  themes_dir: /srv/moto2d/Themes
  db_path: /srv/moto2d/moto2d.db
theme:
  default: Night
  disable_animations: true
joystick:
  deadzone: 2000
  max: 30000
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Data.Dir != "/srv/moto2d" {
		t.Errorf("Data.Dir = %q", cfg.Data.Dir)
	}
	if cfg.Theme.Default != "Night" {
		t.Errorf("Theme.Default = %q", cfg.Theme.Default)
	}
	if !cfg.Theme.DisableAnimations {
		t.Error("Theme.DisableAnimations should be true")
	}
	if cfg.Joystick.Deadzone != 2000 || cfg.Joystick.Max != 30000 {
		t.Errorf("Joystick = %+v", cfg.Joystick)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() should fail for a missing explicit path")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("data: ["), 0o644); err != nil {
		t.Fatalf("writing config failed: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() should fail for a malformed explicit path")
	}
}

func TestLoadExpandsHome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("data:\n  db_path: ~/x.db\n"), 0o644); err != nil {
		t.Fatalf("writing config failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if strings.HasPrefix(cfg.Data.DBPath, "~") {
		t.Errorf("DBPath not expanded: %q", cfg.Data.DBPath)
	}
	if filepath.Base(cfg.Data.DBPath) != "x.db" {
		t.Errorf("DBPath = %q", cfg.Data.DBPath)
	}
}

func TestDefaultMatchesEmbedded(t *testing.T) {
	def := Default()
	if def.Joystick.Deadzone != 1024 || def.Joystick.Max != 32767 {
		t.Errorf("default joystick tuning = %+v", def.Joystick)
	}
	if def.Theme.Default != "Classic" {
		t.Errorf("default theme = %q", def.Theme.Default)
	}
}
