package main

import (
	"strings"
	"time"

	"github.com/alnah/go-md2printer/internal/logging"
)

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string        // MD2PRINTER_CONFIG: config file name or path
	Timeout    time.Duration // MD2PRINTER_TIMEOUT: page load timeout
	LogLevel   string        // MD2PRINTER_LOG_LEVEL: debug, info, warn, error

	badTimeout string // rejected MD2PRINTER_TIMEOUT, reported by warn
}

// knownEnvVars lists valid MD2PRINTER_* environment variables.
var knownEnvVars = map[string]bool{
	"MD2PRINTER_CONFIG":    true,
	"MD2PRINTER_TIMEOUT":   true,
	"MD2PRINTER_LOG_LEVEL": true,
}

// loadEnvConfig reads MD2PRINTER_* variables through getenv.
// An unparsable or non-positive timeout is ignored; warn reports it once
// logging is set up.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MD2PRINTER_CONFIG"),
		LogLevel:   getenv("MD2PRINTER_LOG_LEVEL"),
	}
	if timeout := getenv("MD2PRINTER_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		} else {
			cfg.badTimeout = timeout
		}
	}
	return cfg
}

// warn logs values loadEnvConfig ignored.
func (c *envConfig) warn() {
	if c.badTimeout != "" {
		logging.Warn("ignoring invalid MD2PRINTER_TIMEOUT", "value", c.badTimeout)
	}
}

// warnUnknownEnvVars logs unrecognized MD2PRINTER_* variables, which are
// usually typos.
func warnUnknownEnvVars(environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, "MD2PRINTER_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logging.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}
