package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Tolerances.Discharge != 0.01 || cfg.Tolerances.Head != 0.01 {
		t.Errorf("default tolerances: got %+v", cfg.Tolerances)
	}
	if cfg.Binning.Resolution != 250 {
		t.Errorf("default resolution: got %d", cfg.Binning.Resolution)
	}
	if cfg.Store.Path == "" {
		t.Error("default store path should not be empty")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("empty path should return defaults, got %+v", cfg)
	}
}

func TestLoad_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zzdplot.yaml")
	data := []byte("tolerances:\n  discharge: 0.05\nbinning:\n  resolution: 100\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tolerances.Discharge != 0.05 {
		t.Errorf("discharge: got %v, want 0.05", cfg.Tolerances.Discharge)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Tolerances.Head != 0.01 {
		t.Errorf("head: got %v, want default 0.01", cfg.Tolerances.Head)
	}
	if cfg.Binning.Resolution != 100 {
		t.Errorf("resolution: got %d, want 100", cfg.Binning.Resolution)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("level: got %q, want default info", cfg.Logging.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("tolerances: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("want parse error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"negative discharge", func(c *Config) { c.Tolerances.Discharge = -1 }, "tolerances.discharge"},
		{"negative head", func(c *Config) { c.Tolerances.Head = -0.5 }, "tolerances.head"},
		{"zero resolution", func(c *Config) { c.Binning.Resolution = 0 }, "binning.resolution"},
		{"negative chunk", func(c *Config) { c.Scan.ChunkSize = -1 }, "scan.chunk_size"},
		{"negative workers", func(c *Config) { c.Scan.Workers = -2 }, "scan.workers"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate: got %v, want error containing %q", err, tc.wantErr)
			}
		})
	}

	// Zero tolerance is legal: it means every sample is a violation.
	cfg := Default()
	cfg.Tolerances.Discharge = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero tolerance should validate: %v", err)
	}
}
