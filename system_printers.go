package md2printer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// execCommandContext builds every print tool invocation. Replaced in tests.
var execCommandContext = exec.CommandContext

// SystemPrinters talks to the operating system's print spooler: CUPS (lp and
// lpstat) on Unix, PowerShell and WMI on Windows.
type SystemPrinters struct{}

var _ PrinterService = (*SystemPrinters)(nil)

// NewSystemPrinters returns the PrinterService for the running platform.
func NewSystemPrinters() *SystemPrinters {
	return &SystemPrinters{}
}

// toolOutput holds what a finished print tool wrote.
type toolOutput struct {
	Stdout string
	Stderr string
}

// runTool runs name with args under the C locale so output can be parsed.
// A missing binary yields ErrPrintTool.
func runTool(ctx context.Context, name string, args ...string) (toolOutput, error) {
	cmd := execCommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), "LC_ALL=C", "LANG=C")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := toolOutput{Stdout: stdout.String(), Stderr: strings.TrimSpace(stderr.String())}
	if err == nil {
		return out, nil
	}

	if errors.Is(err, exec.ErrNotFound) {
		return out, fmt.Errorf("%w: %s: %v", ErrPrintTool, name, err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return out, ctxErr
	}
	reason := out.Stderr
	if reason == "" {
		reason = err.Error()
	}
	return out, fmt.Errorf("%s: %s", name, reason)
}
