package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFlagsOnly(t *testing.T) {
	cfg, err := Load("", []string{"--input", "in.json", "--output", "out.json", "--vis-dir", "vis"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Input != "in.json" || cfg.Output != "out.json" || cfg.VisDir != "vis" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.MaxDist != 0.15 || cfg.MaxAge != 5 || cfg.Alpha != 0.7 {
		t.Errorf("expected compiled-in defaults to survive, got %+v", cfg)
	}
}

func TestLoadMissingRequiredFlagsFails(t *testing.T) {
	if _, err := Load("", []string{}); err == nil {
		t.Error("expected an error when --input/--output/--vis-dir are all missing")
	}
}

func TestLoadINIProvidesDefaultsFlagsOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defaults.ini")
	body := "[tracker]\ninput = ini-in.json\noutput = ini-out.json\nvis-dir = ini-vis\nmax-dist = 0.20\nmax-age = 10\nalpha = 0.5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write ini: %v", err)
	}

	cfg, err := Load(path, []string{"--max-age", "3"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Input != "ini-in.json" || cfg.Output != "ini-out.json" || cfg.VisDir != "ini-vis" {
		t.Errorf("expected ini values for unoverridden flags, got %+v", cfg)
	}
	if cfg.MaxDist != 0.20 || cfg.Alpha != 0.5 {
		t.Errorf("expected ini values for unoverridden numeric flags, got %+v", cfg)
	}
	if cfg.MaxAge != 3 {
		t.Errorf("expected the explicit --max-age flag to override the ini value, got %d", cfg.MaxAge)
	}
}
