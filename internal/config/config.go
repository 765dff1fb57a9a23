package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "stmt.yaml"

// Config represents the top-level stmt.yaml configuration.
type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	Cleanup CleanupConfig `yaml:"cleanup"`
	Arrange ArrangeConfig `yaml:"arrange"`
	Log     LogConfig     `yaml:"log"`
	Git     GitConfig     `yaml:"git"`
}

// PathsConfig names the directories of the three pipeline stages.
type PathsConfig struct {
	Raw      string `yaml:"raw"`      // raw bank exports
	Clean    string `yaml:"clean"`    // cleanup output, arrange input
	Arranged string `yaml:"arranged"` // monthly files
	RunLog   string `yaml:"run_log"`  // CSV audit of processed files
}

// CleanupConfig controls cleanup runs.
type CleanupConfig struct {
	Prefix string `yaml:"prefix"` // account prefix, e.g. "chk"
	Keep   bool   `yaml:"keep"`   // keep existing output instead of clearing it
}

// ArrangeConfig controls arrange runs.
type ArrangeConfig struct {
	Group string `yaml:"group"`
	Keep  bool   `yaml:"keep"`
}

// LogConfig controls diagnostics output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

// GitConfig controls snapshot commits of the arranged tree.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a stmt.yaml file from disk. Fields absent from the file keep
// their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, but a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Raw:      "raw",
			Clean:    "clean",
			Arranged: "arranged",
			RunLog:   "logs/run-log.csv",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Git: GitConfig{
			AuthorName:  "stmt",
			AuthorEmail: "stmt@localhost",
		},
	}
}
