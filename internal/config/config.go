// Package config resolves the zzdplot configuration: built-in defaults
// overlaid by an optional YAML file, then by command-line flags.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds everything the analysis pipeline is parameterised by.
type Config struct {
	Tolerances TolerancesConfig `yaml:"tolerances"`
	Binning    BinningConfig    `yaml:"binning"`
	Scan       ScanConfig       `yaml:"scan"`
	Store      StoreConfig      `yaml:"store"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// TolerancesConfig sets the convergence thresholds, in the native units
// of the solver (m³/s for discharge, m for head).
type TolerancesConfig struct {
	Discharge float64 `yaml:"discharge"`
	Head      float64 `yaml:"head"`
}

// BinningConfig controls the warning histogram.
type BinningConfig struct {
	Resolution int `yaml:"resolution"`
}

// ScanConfig controls the parallel source scan. Zero values mean auto:
// the scanner picks its default chunk size and one worker per CPU.
type ScanConfig struct {
	ChunkSize int64 `yaml:"chunk_size"`
	Workers   int   `yaml:"workers"`
}

// StoreConfig locates the run-history database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig sets the log level and output format ("text" or "json").
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration: the stock convergence
// tolerances and histogram resolution.
func Default() Config {
	return Config{
		Tolerances: TolerancesConfig{Discharge: 0.01, Head: 0.01},
		Binning:    BinningConfig{Resolution: 250},
		Store:      StoreConfig{Path: filepath.Join(".zzdplot", "zzdplot.db")},
		Logging:    LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load returns Default overlaid with values from the YAML file at path.
// An empty path returns the defaults unchanged; fields absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field, if any.
func (c Config) Validate() error {
	if c.Tolerances.Discharge < 0 || math.IsNaN(c.Tolerances.Discharge) {
		return fmt.Errorf("tolerances.discharge must be >= 0, got %v", c.Tolerances.Discharge)
	}
	if c.Tolerances.Head < 0 || math.IsNaN(c.Tolerances.Head) {
		return fmt.Errorf("tolerances.head must be >= 0, got %v", c.Tolerances.Head)
	}
	if c.Binning.Resolution < 1 {
		return fmt.Errorf("binning.resolution must be >= 1, got %d", c.Binning.Resolution)
	}
	if c.Scan.ChunkSize < 0 {
		return fmt.Errorf("scan.chunk_size must be >= 0, got %d", c.Scan.ChunkSize)
	}
	if c.Scan.Workers < 0 {
		return fmt.Errorf("scan.workers must be >= 0, got %d", c.Scan.Workers)
	}
	return nil
}
