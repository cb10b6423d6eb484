//go:build !windows

package md2printer

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-md2printer/internal/logging"
)

// ListPrinters queries CUPS. A system without any queue yields an empty list.
func (s *SystemPrinters) ListPrinters(ctx context.Context) ([]Printer, error) {
	out, err := runTool(ctx, "lpstat", "-l", "-p")
	if strings.Contains(out.Stdout+out.Stderr, noDestinations) {
		return []Printer{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListPrinters, err)
	}
	printers := parseLpstatPrinters(out.Stdout)

	devices := map[string]string{}
	if dev, err := runTool(ctx, "lpstat", "-v"); err == nil {
		devices = parseLpstatDevices(dev.Stdout)
	} else {
		logging.Debug("lpstat -v failed", "error", err)
	}

	// lpstat -d exits non-zero when no default is set on some systems.
	def, _ := runTool(ctx, "lpstat", "-d")

	if printers == nil {
		printers = []Printer{}
	}
	return mergeCUPS(printers, devices, parseLpstatDefault(def.Stdout)), nil
}

// Print submits filePath to the named CUPS queue with lp.
func (s *SystemPrinters) Print(ctx context.Context, filePath string, opts PrintOptions) error {
	out, err := runTool(ctx, "lp", lpArgs(filePath, opts)...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPrintDispatch, err)
	}
	logging.Info("print job submitted", "printer", opts.PrinterName, "job", parseRequestID(out.Stdout))
	return nil
}
