package md2printer

import "errors"

// Sentinel errors for the command flow.
var (
	// ErrUsage means the invocation was incomplete or unknown. It is not a
	// failure: callers show usage text and exit successfully.
	ErrUsage = errors.New("usage")

	ErrPathNotFound    = errors.New("path does not exist")
	ErrNotADirectory   = errors.New("path is not a directory")
	ErrPrinterNotFound = errors.New("printer does not exist")
)

// Sentinel errors for the default renderer.
var (
	ErrReadMarkdown   = errors.New("failed to read markdown")
	ErrReadStylesheet = errors.New("failed to read stylesheet")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrWritePDF       = errors.New("failed to write PDF")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")
)

// Sentinel errors for the default printer service.
var (
	ErrListPrinters  = errors.New("failed to list printers")
	ErrPrintDispatch = errors.New("failed to send file to printer")
	ErrPrintTool     = errors.New("print tool not available")
)
