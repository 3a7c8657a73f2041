package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if !cfg.TUI.ConfirmDelete {
		t.Error("ConfirmDelete should default to true")
	}
}

func TestSaveToLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.General.BillsDir = "/srv/bills"
	cfg.Appearance.Theme = "tokyo-night"
	cfg.TUI.ConfirmDelete = false
	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got != cfg {
		t.Errorf("loaded %+v, want %+v", got, cfg)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[general]\nbills_dir = \"/tmp/b\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.BillsDir != "/tmp/b" {
		t.Errorf("BillsDir = %q", cfg.General.BillsDir)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want default", cfg.Appearance.Theme)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[general\nbills_dir = "), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestBillsDir_Precedence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.BillsDir = "/from/config"

	t.Setenv(BillsDirEnv, "/from/env")
	if got := BillsDir("/from/flag", cfg); got != "/from/flag" {
		t.Errorf("flag: got %q", got)
	}
	if got := BillsDir("", cfg); got != "/from/env" {
		t.Errorf("env: got %q", got)
	}

	t.Setenv(BillsDirEnv, "")
	if got := BillsDir("", cfg); got != "/from/config" {
		t.Errorf("config: got %q", got)
	}

	t.Setenv("HOME", "/home/tester")
	if got := BillsDir("", DefaultConfig()); got != filepath.Join("/home/tester", "EconoManager", "Bills") {
		t.Errorf("default: got %q", got)
	}
}
