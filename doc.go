// Package md2printer converts a Markdown document to PDF and sends it to a
// printer.
//
// The command surface lives in cmd/md2printer. This package holds the pieces
// it composes: path validation, the two collaborator interfaces, and default
// implementations of both.
//
// # Collaborators
//
// Rendering and printing are reached through interfaces so callers can swap
// them out:
//
//	type Renderer interface {
//	    Render(ctx context.Context, sourcePath string, opts RenderOptions) error
//	}
//
//	type PrinterService interface {
//	    ListPrinters(ctx context.Context) ([]Printer, error)
//	    Print(ctx context.Context, filePath string, opts PrintOptions) error
//	}
//
// [Converter] implements Renderer with Goldmark and headless Chrome (go-rod).
// [NewSystemPrinters] implements PrinterService with the CUPS tools lp and
// lpstat, or PowerShell on Windows.
//
// # Quick Start
//
//	paths := md2printer.PathSet{Input: "notes.md", TmpDir: os.TempDir()}
//	out, err := paths.Validate()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	conv, err := md2printer.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	if err := conv.Render(ctx, paths.Input, md2printer.RenderOptions{DestinationPath: out}); err != nil {
//	    log.Fatal(err)
//	}
//
//	printers := md2printer.NewSystemPrinters()
//	list, err := printers.ListPrinters(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := md2printer.RequirePrinter(list, "Office"); err != nil {
//	    log.Fatal(err)
//	}
//	err = printers.Print(ctx, out, md2printer.PrintOptions{PrinterName: "Office"})
//
// # Output Path
//
// The PDF destination is always derived from the temp directory and the input
// name, see [OutputPath]: "notes.md" in "/tmp" becomes "/tmp/notes.md.pdf".
//
// # Errors
//
// Failures are reported with sentinel errors checked via errors.Is:
//
//	if errors.Is(err, md2printer.ErrPathNotFound) {
//	    // input file, temp directory or stylesheet is missing
//	}
//	if errors.Is(err, md2printer.ErrPrinterNotFound) {
//	    // no printer with that exact name
//	}
//	if errors.Is(err, md2printer.ErrBrowserConnect) {
//	    // Chrome could not be launched
//	}
//
// # Browser Requirements
//
// Converter launches Chromium through go-rod, which downloads a browser on
// first use. Set ROD_BROWSER_BIN to use an installed Chrome and ROD_NO_SANDBOX=1
// inside containers.
package md2printer
