// Package config reads and writes kharchpani.yaml, the per-data-directory
// settings file created by `kharchpani init`.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the settings file kept beside expenses.json.
const FileName = "kharchpani.yaml"

// EnvDir selects the data directory when no --dir flag is given.
const EnvDir = "KHARCHPANI_DIR"

// Config represents the top-level kharchpani.yaml configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Git     GitConfig     `yaml:"git"`
}

// DisplayConfig controls presentation-only formatting.
type DisplayConfig struct {
	Currency string `yaml:"currency"`
}

// GitConfig controls the optional git history of the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Default returns the configuration written by init.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{Currency: "INR"},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "KharchPani",
			AuthorEmail: "noreply@kharchpani.dev",
		},
	}
}

// Load reads kharchpani.yaml from a data directory. A directory without a
// settings file gets the defaults, so pointing the CLI at a bare
// expenses.json still works.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to kharchpani.yaml in the data directory.
func Save(dir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ResolveDir picks the data directory: an explicit flag value wins, then
// KHARCHPANI_DIR (with any .env file in the working directory honored),
// then the working directory itself.
func ResolveDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	_ = godotenv.Load()
	if v := os.Getenv(EnvDir); v != "" {
		return v
	}
	return "."
}
