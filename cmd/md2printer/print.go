package main

import (
	"context"
	"fmt"

	md2printer "github.com/alnah/go-md2printer"
	"github.com/alnah/go-md2printer/internal/logging"
)

// runPrint handles: print <printerName> <filepath> <tmpDirpath> [<stylesheetFilepath>].
//
// Steps run in order and each one gates the next: validate paths, require a
// printer name, look the printer up, convert, dispatch.
func runPrint(ctx context.Context, args []string, s *settings, env *Environment) error {
	printerName := arg(args, 0)
	paths := md2printer.PathSet{Input: arg(args, 1), TmpDir: arg(args, 2), Stylesheet: arg(args, 3)}

	output, err := paths.Validate()
	if err != nil {
		return err
	}
	if printerName == "" {
		return fmt.Errorf("%w: missing printer name", md2printer.ErrUsage)
	}

	printers, err := env.Printers.ListPrinters(ctx)
	if err != nil {
		return err
	}
	printer, err := md2printer.RequirePrinter(printers, printerName)
	if err != nil {
		return err
	}
	logging.Debug("printer found", "name", printer.Name, "status", printer.Status)

	if err := convert(ctx, paths, output, s, env); err != nil {
		return err
	}

	if err := env.Printers.Print(ctx, output, s.printOptions(printerName)); err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "Sent \"%s\" to printer \"%s\"\n", output, printerName)
	return nil
}
