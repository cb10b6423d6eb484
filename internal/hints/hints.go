// Package hints builds actionable suffixes for error messages.
// Every hint is rendered as "\n  hint: <text>" so the CLI can append it to the
// error line unchanged.
package hints

import (
	"os"
	"runtime"
	"strings"

	"github.com/alnah/go-md2printer/internal/fileutil"
)

// IsInContainer reports whether we run inside Docker. Replaced in tests.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect suggests the environment variables that usually fix a
// failed Chromium launch.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use an installed Chrome")
	}

	return formatAll(hints)
}

// ForTimeout suggests raising the render timeout.
func ForTimeout() string {
	return format("for large documents, raise --timeout (e.g. --timeout 2m)")
}

// ForPrinterNotFound points at the command that lists valid printer names.
func ForPrinterNotFound() string {
	return format("run 'md2printer list-printers' to see available printers")
}

// ForMissingPrintTool explains how to get the system print tools for goos.
func ForMissingPrintTool(goos string) string {
	switch goos {
	case "windows":
		return format("PowerShell is required to reach Windows printers")
	case "darwin":
		return format("enable printing in System Settings; lp and lpstat ship with macOS")
	default:
		return format("install the CUPS client tools (cups-client or cups) so lp and lpstat are on PATH")
	}
}

// ForCurrentPrintTool is ForMissingPrintTool for the running platform.
func ForCurrentPrintTool() string {
	return ForMissingPrintTool(runtime.GOOS)
}

// ForConfigNotFound suggests how to point at a config file.
func ForConfigNotFound() string {
	return format("pass --config /path/to/md2printer.yaml or set MD2PRINTER_CONFIG")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatAll(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
