//go:build windows

package md2printer

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2printer/internal/logging"
)

var powershellArgs = []string{"-NoProfile", "-NonInteractive", "-Command"}

// ListPrinters queries WMI through PowerShell.
func (s *SystemPrinters) ListPrinters(ctx context.Context) ([]Printer, error) {
	out, err := runTool(ctx, "powershell", append(powershellArgs, listPrintersScript)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListPrinters, err)
	}
	printers, err := parseWin32Printers(out.Stdout)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListPrinters, err)
	}
	return printers, nil
}

// Print hands filePath to the registered PDF handler's PrintTo verb.
// Copies and options are not supported by the shell verb.
func (s *SystemPrinters) Print(ctx context.Context, filePath string, opts PrintOptions) error {
	if opts.Copies > 1 || len(opts.Options) > 0 {
		logging.Warn("copies and print options are ignored on Windows")
	}
	if _, err := runTool(ctx, "powershell", append(powershellArgs, printScript(filePath, opts.PrinterName))...); err != nil {
		return fmt.Errorf("%w: %w", ErrPrintDispatch, err)
	}
	logging.Info("print job submitted", "printer", opts.PrinterName)
	return nil
}
