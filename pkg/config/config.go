// Package config defines configuration for the typesetting pipeline.
// The Config types are pure data; reading files is left to Discover and
// to Load in yaml.go, so the core packages stay free of file-system
// concerns.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// OutputFormat specifies how results are written.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true for a known output format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// FontConfig selects the width oracle. An empty Path means monospace
// terminal columns; otherwise Path names an OpenType font measured at
// Size points.
type FontConfig struct {
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
}

// Config is the root configuration.
type Config struct {
	// Width is the target line width: columns for the monospace oracle,
	// points for a font face. Zero means detect the terminal width.
	Width float64 `yaml:"width"`

	// Threshold is the maximum acceptable adjustment ratio.
	Threshold float64 `yaml:"threshold"`

	// FlaggedPenalty is the extra demerit for consecutive hyphen breaks.
	FlaggedPenalty float64 `yaml:"flagged_penalty"`

	// FitnessPenalty is the extra demerit for fitness-class jumps.
	FitnessPenalty float64 `yaml:"fitness_penalty"`

	// SentenceFactor scales inter-word space after sentence-ending
	// punctuation.
	SentenceFactor float64 `yaml:"sentence_factor"`

	// Indent is the width of the first-line indent box.
	Indent float64 `yaml:"indent"`

	// Hyphenate enables automatic hyphenation.
	Hyphenate bool `yaml:"hyphenate"`

	// Patterns is the path to a TeX-format hyphenation pattern file,
	// one pattern per line.
	Patterns string `yaml:"patterns"`

	// Exceptions are hyphenated words overriding the patterns ("ta-ble").
	Exceptions []string `yaml:"exceptions"`

	// Font selects the width oracle.
	Font FontConfig `yaml:"font"`

	// CLI-level options, not persisted to config files.

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs is the number of parallel workers (0 = auto).
	Jobs int `yaml:"-"`

	// InPlace rewrites input files instead of writing to stdout.
	InPlace bool `yaml:"-"`
}

// Default returns the default configuration: 72-column monospace lines,
// the classical penalty weights, no hyphenation.
func Default() *Config {
	return &Config{
		Width:          72,
		Threshold:      5,
		FlaggedPenalty: 3000,
		FitnessPenalty: 100,
		SentenceFactor: 1.5,
		Format:         FormatText,
	}
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("width must be non-negative, got %g", c.Width)
	}
	if c.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %g", c.Threshold)
	}
	if c.FlaggedPenalty < 0 {
		return fmt.Errorf("flagged_penalty must be non-negative, got %g", c.FlaggedPenalty)
	}
	if c.FitnessPenalty < 0 {
		return fmt.Errorf("fitness_penalty must be non-negative, got %g", c.FitnessPenalty)
	}
	if c.SentenceFactor < 1 {
		return fmt.Errorf("sentence_factor must be at least 1, got %g", c.SentenceFactor)
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must be non-negative, got %g", c.Indent)
	}
	if c.Font.Path != "" && c.Font.Size <= 0 {
		return fmt.Errorf("font.size must be positive when font.path is set")
	}
	if c.Format != "" && !c.Format.IsValid() {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}
	return nil
}

// ConfigFileName is the name discovered in the working directory.
const ConfigFileName = ".gotypeset.yaml"

// Discover looks for a config file in dir. Returns the path and whether
// one exists.
func Discover(dir string) (string, bool) {
	path := filepath.Join(dir, ConfigFileName)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}
