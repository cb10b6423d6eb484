package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	md2printer "github.com/alnah/go-md2printer"
	"github.com/alnah/go-md2printer/internal/config"
)

// Output formats for list-printers.
const (
	formatJSON  = "json"
	formatTable = "table"
)

var (
	errInvalidTimeout = errors.New("invalid timeout")
	errInvalidFormat  = errors.New("invalid format")
)

// settings is the resolved configuration for one invocation.
// Precedence: flags > environment > config file > defaults.
type settings struct {
	timeout time.Duration
	page    md2printer.PageSettings
	style   string
	copies  int
	options []string
	format  string
	log     loggingOptions
}

// resolveSettings merges flags, environment and the optional config file.
func resolveSettings(flags *cliFlags, env *envConfig) (*settings, error) {
	cfg := config.DefaultConfig()
	if name := firstNonEmpty(flags.common.config, env.ConfigPath); name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	s := &settings{
		style:   firstNonEmpty(flags.style, cfg.Style),
		copies:  cfg.Print.Copies,
		options: append(append([]string{}, cfg.Print.Options...), flags.print.options...),
		page: md2printer.PageSettings{
			Size:        flags.page.size,
			Orientation: flags.page.orientation,
			Margin:      flags.page.margin,
		}.Merge(md2printer.PageSettings{
			Size:        cfg.Page.Size,
			Orientation: cfg.Page.Orientation,
			Margin:      cfg.Page.Margin,
		}),
		log: loggingOptions{
			Level:      firstNonEmpty(env.LogLevel, cfg.Log.Level),
			File:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.Compress,
		},
	}

	if flags.print.copies != 0 {
		if flags.print.copies < 0 || flags.print.copies > config.MaxCopies {
			return nil, fmt.Errorf("%w: copies: %d (must be between 1 and %d)", config.ErrInvalidConfig, flags.print.copies, config.MaxCopies)
		}
		s.copies = flags.print.copies
	}

	switch {
	case flags.common.verbose:
		s.log.Level = "debug"
	case flags.common.quiet:
		s.log.Level = "error"
	}

	timeout, err := resolveTimeout(flags.common.timeout, env.Timeout, cfg.TimeoutDuration())
	if err != nil {
		return nil, err
	}
	s.timeout = timeout

	if err := s.page.Validate(); err != nil {
		return nil, err
	}

	s.format = strings.ToLower(flags.format)
	if s.format != formatJSON && s.format != formatTable {
		return nil, fmt.Errorf("%w: %q (must be json or table)", errInvalidFormat, flags.format)
	}
	return s, nil
}

// resolveTimeout picks the first set value among flag, env and config.
func resolveTimeout(flagValue string, envValue, cfgValue time.Duration) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", errInvalidTimeout, flagValue, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: %q must be positive", errInvalidTimeout, flagValue)
		}
		return d, nil
	}
	if envValue > 0 {
		return envValue, nil
	}
	if cfgValue > 0 {
		return cfgValue, nil
	}
	return md2printer.DefaultTimeout, nil
}

// converterOptions maps settings to the default renderer's options.
func (s *settings) converterOptions() []md2printer.Option {
	return []md2printer.Option{
		md2printer.WithTimeout(s.timeout),
		md2printer.WithPage(s.page),
		md2printer.WithStyle(s.style),
	}
}

// printOptions builds the dispatch options for printerName.
func (s *settings) printOptions(printerName string) md2printer.PrintOptions {
	return md2printer.PrintOptions{
		PrinterName: printerName,
		Copies:      s.copies,
		Options:     s.options,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
