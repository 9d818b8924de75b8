// Package config loads run configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/semcat/pkg/semcat/internalerr"
)

// Tokenizer holds options for the built-in lemmatizer.
type Tokenizer struct {
	// Language is the ISO 639-1 code used for stopword filtering.
	Language string `yaml:"language"`
	// StripStopwords drops stopwords before counting. Off by default
	// because it changes token totals.
	StripStopwords bool `yaml:"strip_stopwords"`
}

// Config describes one categorization run.
type Config struct {
	Dictionary string    `yaml:"dictionary"`
	Input      string    `yaml:"input"`
	OutputDir  string    `yaml:"output_dir"`
	RunLabel   string    `yaml:"run_label"`
	Workers    int       `yaml:"workers"`
	Tokenizer  Tokenizer `yaml:"tokenizer"`
}

// Default returns a config with the documented defaults filled in.
func Default() *Config {
	return &Config{
		OutputDir: ".",
		RunLabel:  "run",
		Workers:   1,
		Tokenizer: Tokenizer{Language: "en"},
	}
}

// Load reads a YAML config file. Fields absent from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the config describes a runnable pipeline.
func (c *Config) Validate() error {
	if c.Dictionary == "" {
		return fmt.Errorf("dictionary path is required: %w", internalerr.ErrInvalidConfig)
	}
	if c.Input == "" {
		return fmt.Errorf("input path is required: %w", internalerr.ErrInvalidConfig)
	}
	if c.RunLabel == "" {
		return fmt.Errorf("run label is required: %w", internalerr.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d: %w", c.Workers, internalerr.ErrInvalidConfig)
	}
	return nil
}
