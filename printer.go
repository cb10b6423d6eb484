package md2printer

import (
	"context"
	"fmt"
)

// Printer describes one destination known to the print system.
// Only Name is guaranteed; the rest depends on the platform.
type Printer struct {
	Name        string `json:"name"`
	DeviceID    string `json:"deviceId,omitempty"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Default     bool   `json:"isDefault"`
}

// PrintOptions configures a print job.
type PrintOptions struct {
	PrinterName string
	Copies      int      // 0 = printer default
	Options     []string // passed to lp as -o values; ignored on Windows
}

// PrinterService enumerates printers and dispatches files to them.
type PrinterService interface {
	ListPrinters(ctx context.Context) ([]Printer, error)
	Print(ctx context.Context, filePath string, opts PrintOptions) error
}

// PrinterNotFoundError reports a printer name absent from the enumerated list.
// It matches ErrPrinterNotFound with errors.Is.
type PrinterNotFoundError struct {
	Name string
}

func (e *PrinterNotFoundError) Error() string {
	return fmt.Sprintf("Printer %s does not exist", e.Name)
}

func (e *PrinterNotFoundError) Is(target error) bool {
	return target == ErrPrinterNotFound
}

// RequirePrinter returns the printer whose name equals name exactly.
// Callers must not convert or print when it returns an error.
func RequirePrinter(printers []Printer, name string) (Printer, error) {
	for _, p := range printers {
		if p.Name == name {
			return p, nil
		}
	}
	return Printer{}, &PrinterNotFoundError{Name: name}
}
