// Package config loads run configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultMaxFileSize = 1_000_000 // 1 MB

// Config holds the tunable parts of a run. Composite-score weights,
// triviality thresholds, and PageRank parameters are deliberately absent:
// they are fixed constants of the algorithm.
type Config struct {
	// Vocabulary replaces the built-in domain keyword set when non-empty.
	Vocabulary []string `yaml:"vocabulary"`

	// Exclude lists glob patterns for repo-relative paths to skip.
	Exclude []string `yaml:"exclude"`

	// Workers bounds the extraction and enrichment pools. 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// MaxFileSize skips source files larger than this many bytes.
	MaxFileSize int `yaml:"max_file_size"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		MaxFileSize: defaultMaxFileSize,
	}
}

// Load reads a YAML config file, applying defaults for absent fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("config %s: workers must be >= 0", path)
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = defaultMaxFileSize
	}
	return cfg, nil
}
