package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	md2printer "github.com/alnah/go-md2printer"
	"github.com/alnah/go-md2printer/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "md2printer.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveSettings_Defaults(t *testing.T) {
	t.Parallel()

	s, err := resolveSettings(&cliFlags{format: "json"}, &envConfig{})
	if err != nil {
		t.Fatalf("resolveSettings() error = %v", err)
	}
	if s.timeout != md2printer.DefaultTimeout {
		t.Errorf("timeout = %v, want default", s.timeout)
	}
	if s.page != (md2printer.PageSettings{}) {
		t.Errorf("page = %+v, want zero (converter defaults)", s.page)
	}
	if s.log.Level != "" || s.copies != 0 || len(s.options) != 0 {
		t.Errorf("unexpected non-default settings: %+v", s)
	}
}

func TestResolveSettings_Precedence(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t, `
timeout: 45s
style: plain
page:
  size: letter
  orientation: landscape
  margin: 1
print:
  copies: 3
  options: [sides=two-sided-long-edge]
log:
  level: info
`)

	t.Run("config file over defaults", func(t *testing.T) {
		t.Parallel()

		s, err := resolveSettings(&cliFlags{format: "json", common: commonFlags{config: cfgPath}}, &envConfig{})
		if err != nil {
			t.Fatalf("resolveSettings() error = %v", err)
		}
		if s.timeout != 45*time.Second || s.style != "plain" || s.copies != 3 || s.log.Level != "info" {
			t.Errorf("settings = %+v", s)
		}
		want := md2printer.PageSettings{Size: "letter", Orientation: "landscape", Margin: 1}
		if s.page != want {
			t.Errorf("page = %+v, want %+v", s.page, want)
		}
	})

	t.Run("env over config", func(t *testing.T) {
		t.Parallel()

		s, err := resolveSettings(&cliFlags{format: "json"}, &envConfig{ConfigPath: cfgPath, Timeout: time.Minute, LogLevel: "error"})
		if err != nil {
			t.Fatalf("resolveSettings() error = %v", err)
		}
		if s.timeout != time.Minute || s.log.Level != "error" {
			t.Errorf("timeout = %v level = %q", s.timeout, s.log.Level)
		}
	})

	t.Run("flags over env and config", func(t *testing.T) {
		t.Parallel()

		flags := &cliFlags{
			format: "table",
			style:  "markdown",
			common: commonFlags{config: cfgPath, timeout: "5s", verbose: true},
			page:   pageFlags{size: "a5"},
			print:  printFlags{copies: 1, options: []string{"media=A5"}},
		}
		s, err := resolveSettings(flags, &envConfig{Timeout: time.Minute})
		if err != nil {
			t.Fatalf("resolveSettings() error = %v", err)
		}
		if s.timeout != 5*time.Second || s.style != "markdown" || s.copies != 1 || s.log.Level != "debug" {
			t.Errorf("settings = %+v", s)
		}
		if s.page.Size != "a5" || s.page.Orientation != "landscape" {
			t.Errorf("page = %+v, want flag size over config orientation", s.page)
		}
		if len(s.options) != 2 || s.options[1] != "media=A5" {
			t.Errorf("options = %v, want config then flag options", s.options)
		}
	})
}

func TestResolveSettings_Errors(t *testing.T) {
	t.Parallel()

	badCfg := writeConfig(t, "page:\n  size: huge\n")

	tests := []struct {
		name    string
		flags   *cliFlags
		wantErr error
	}{
		{"bad timeout", &cliFlags{format: "json", common: commonFlags{timeout: "fast"}}, errInvalidTimeout},
		{"zero timeout", &cliFlags{format: "json", common: commonFlags{timeout: "0s"}}, errInvalidTimeout},
		{"bad format", &cliFlags{format: "yaml"}, errInvalidFormat},
		{"bad copies", &cliFlags{format: "json", print: printFlags{copies: 500}}, config.ErrInvalidConfig},
		{"bad margin", &cliFlags{format: "json", page: pageFlags{margin: 9}}, md2printer.ErrInvalidMargin},
		{"missing config", &cliFlags{format: "json", common: commonFlags{config: "/nonexistent/x.yaml"}}, config.ErrConfigNotFound},
		{"invalid config", &cliFlags{format: "json", common: commonFlags{config: badCfg}}, config.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := resolveSettings(tt.flags, &envConfig{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("resolveSettings() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSettings_ConverterAndPrintOptions(t *testing.T) {
	t.Parallel()

	s := &settings{timeout: time.Second, style: "plain", copies: 2, options: []string{"a=b"}}
	if got := len(s.converterOptions()); got != 3 {
		t.Errorf("converterOptions() returned %d options, want 3", got)
	}
	opts := s.printOptions("Office")
	if opts.PrinterName != "Office" || opts.Copies != 2 || opts.Options[0] != "a=b" {
		t.Errorf("printOptions() = %+v", opts)
	}
}
