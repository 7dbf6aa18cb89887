// Package config loads and validates the pipeline configuration from a
// YAML file: data locations, annotation tables, contact parameters and
// external tool paths.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level pipeline configuration.
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Contact  ContactConfig  `yaml:"contact"`
	Disorder DisorderConfig `yaml:"disorder"`
	Tools    ToolsConfig    `yaml:"tools"`
	Logging  LoggingConfig  `yaml:"logging"`
	Workers  int            `yaml:"workers"`
}

// DataConfig holds input and output locations.
type DataConfig struct {
	Dir          string `yaml:"dir"`          // cache directory for fetched PDB and UniProt entries
	ComplexesCSV string `yaml:"complexesCsv"` // input table of binary complexes to process
	OutDir       string `yaml:"outDir"`       // directory for per-complex outputs
}

// ContactConfig holds contact map parameters.
type ContactConfig struct {
	Threshold float64 `yaml:"threshold"` // CA-CA contact distance in angstroms
}

// DisorderConfig holds the disorder annotation tables and filters.
type DisorderConfig struct {
	DisProtCSV string `yaml:"disprotCsv"`
	IdealCSV   string `yaml:"idealCsv"`
	MobiDBCSV  string `yaml:"mobidbCsv"`
	MinLength  int64  `yaml:"minLength"` // minimum disorder region length kept
}

// ToolsConfig holds paths for the external binaries.
type ToolsConfig struct {
	MMseqsBin  string `yaml:"mmseqsBin"`
	USalignBin string `yaml:"usalignBin"`
	TmpDir     string `yaml:"tmpDir"`
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %v", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %v", err)
	}
	return cfg, nil
}

// Default returns a configuration with sane defaults for everything that
// has one.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir:    "data",
			OutDir: "out",
		},
		Contact: ContactConfig{
			Threshold: 8.0,
		},
		Disorder: DisorderConfig{
			MinLength: 1,
		},
		Tools: ToolsConfig{
			MMseqsBin:  "mmseqs",
			USalignBin: "USalign",
			TmpDir:     "tmp",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Workers: 4,
	}
}

// Validate checks the configuration for values that would break the run.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Contact.Threshold <= 0 {
		return fmt.Errorf("contact threshold must be positive, got %g", c.Contact.Threshold)
	}
	if c.Disorder.MinLength < 1 {
		return fmt.Errorf("disorder minimum length must be at least 1, got %d", c.Disorder.MinLength)
	}
	if c.Data.ComplexesCSV == "" {
		return fmt.Errorf("data.complexesCsv is required")
	}
	return nil
}
