// Package config loads the optional md2printer YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2printer/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Bounds for validated fields.
const (
	MinMargin = 0.25 // inches
	MaxMargin = 3.0
	MaxCopies = 99
)

// Config holds every setting the CLI reads from a file.
// The zero value reproduces the built-in defaults.
type Config struct {
	Timeout string      `yaml:"timeout"` // Go duration, e.g. "45s" (default: 30s)
	Style   string      `yaml:"style"`   // embedded style used without a stylesheet (default: "markdown")
	Page    PageConfig  `yaml:"page"`
	Print   PrintConfig `yaml:"print"`
	Log     LogConfig   `yaml:"log"`
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "a4", "letter", "legal", "a3", "a5"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches, all sides
}

// PrintConfig defines options forwarded to the print dispatcher.
type PrintConfig struct {
	Copies  int      `yaml:"copies"`  // 0 = printer default
	Options []string `yaml:"options"` // CUPS "-o" options, e.g. "sides=two-sided-long-edge"
}

// LogConfig defines diagnostic logging.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	File       string `yaml:"file"`  // optional rotating log file
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
}

// DefaultConfig returns an empty configuration; empty fields mean "use the default".
func DefaultConfig() *Config {
	return &Config{}
}

// TimeoutDuration returns the parsed timeout, or 0 when unset.
// Call Validate first; an unparsable value also yields 0.
func (c *Config) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Validate checks value ranges. LoadConfig calls it; callers building a
// Config by hand should too.
func (c *Config) Validate() error {
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: timeout: %q is not a positive duration", ErrInvalidConfig, c.Timeout)
		}
	}

	if c.Style != "" && strings.ContainsAny(c.Style, "/\\.") {
		return fmt.Errorf("%w: style: %q must be a style name, not a path", ErrInvalidConfig, c.Style)
	}

	switch strings.ToLower(c.Page.Size) {
	case "", "a3", "a4", "a5", "letter", "legal":
	default:
		return fmt.Errorf("%w: page.size: unknown size %q", ErrInvalidConfig, c.Page.Size)
	}
	switch strings.ToLower(c.Page.Orientation) {
	case "", "portrait", "landscape":
	default:
		return fmt.Errorf("%w: page.orientation: %q (must be portrait or landscape)", ErrInvalidConfig, c.Page.Orientation)
	}
	if c.Page.Margin != 0 && (c.Page.Margin < MinMargin || c.Page.Margin > MaxMargin) {
		return fmt.Errorf("%w: page.margin: %.2f (must be between %.2f and %.2f)", ErrInvalidConfig, c.Page.Margin, MinMargin, MaxMargin)
	}

	if c.Print.Copies < 0 || c.Print.Copies > MaxCopies {
		return fmt.Errorf("%w: print.copies: %d (must be between 0 and %d)", ErrInvalidConfig, c.Print.Copies, MaxCopies)
	}
	for i, opt := range c.Print.Options {
		if opt == "" || strings.HasPrefix(opt, "-") {
			return fmt.Errorf("%w: print.options[%d]: %q", ErrInvalidConfig, i, opt)
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level: %q", ErrInvalidConfig, c.Log.Level)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("%w: log rotation values cannot be negative", ErrInvalidConfig)
	}

	return nil
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is read as-is; a bare name is looked up
// as <name>.yaml / <name>.yml in the current directory, then in the user
// config directory under md2printer/.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		var err error
		path, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.DecodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	var tried []string

	for _, ext := range extensions {
		p := name + ext
		if isFile(p) {
			return p, nil
		}
		tried = append(tried, p)
	}

	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			p := filepath.Join(dir, "md2printer", name+ext)
			if isFile(p) {
				return p, nil
			}
			tried = append(tried, p)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
