package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}
	if cfg.Generation.Dim != 2 {
		t.Errorf("default dim = %d, want 2", cfg.Generation.Dim)
	}
	if cfg.Generation.Runs != 1 {
		t.Errorf("default runs = %d, want 1", cfg.Generation.Runs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults fail validation: %v", err)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	data := []byte("generation:\n  dim: 3\n  periodic: true\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading user config: %v", err)
	}
	if cfg.Generation.Dim != 3 {
		t.Errorf("dim = %d, want 3 from user file", cfg.Generation.Dim)
	}
	if !cfg.Generation.Periodic {
		t.Error("periodic flag not merged from user file")
	}
	// Fields absent from the user file keep their defaults.
	if cfg.Generation.Seed != 42 {
		t.Errorf("seed = %d, want default 42", cfg.Generation.Seed)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing config file accepted")
	}
}

func TestValidateRejectsBadPresets(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		return cfg
	}

	cfg := base()
	cfg.Generation.Dim = 5
	if err := cfg.Validate(); err == nil {
		t.Error("dim 5 accepted")
	}

	cfg = base()
	cfg.Generation.Radius = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero radius accepted")
	}

	cfg = base()
	cfg.Generation.Radius = 0.8
	if err := cfg.Validate(); err == nil {
		t.Error("absolute radius 0.8 accepted")
	}
	cfg.Generation.Relative = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("relative radius 0.8 rejected: %v", err)
	}

	cfg = base()
	cfg.Generation.Runs = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero runs accepted")
	}
}
