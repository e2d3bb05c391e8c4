package config

import (
	"path/filepath"
	"testing"

	"github.com/menta2k/resfit/pkg/constraint"
	"github.com/menta2k/resfit/pkg/cropper"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}

	cs, err := cfg.Constraints()
	if err != nil {
		t.Fatalf("Constraints() failed: %v", err)
	}
	if cs != constraint.Default() {
		t.Errorf("Expected library defaults, got %+v", cs)
	}

	pos, err := cfg.Position()
	if err != nil {
		t.Fatalf("Position() failed: %v", err)
	}
	if pos != cropper.Center {
		t.Errorf("Expected center position, got %v", pos)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"max below min", func(c *Config) { c.Fit.MaxRes = c.Fit.MinRes - 1 }},
		{"zero multiple", func(c *Config) { c.Fit.MultipleOf = 0 }},
		{"bad mode", func(c *Config) { c.Fit.Mode = "balanced" }},
		{"bad position", func(c *Config) { c.Crop.Position = "middle" }},
		{"quality too high", func(c *Config) { c.Output.Quality = 101 }},
		{"quality zero", func(c *Config) { c.Output.Quality = 0 }},
		{"bad format", func(c *Config) { c.Output.Format = "bmp" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Fit.MinRes = 512
	cfg.Fit.Mode = constraint.PrioritizeMax.String()
	cfg.Crop.Enabled = true
	cfg.Crop.Position = cropper.Bottom.String()

	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("Round-trip changed config:\n got %+v\nwant %+v", *loaded, *cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Expected error for missing config file")
	}
}
