package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	md2printer "github.com/alnah/go-md2printer"
	"github.com/alnah/go-md2printer/internal/config"
	"github.com/alnah/go-md2printer/internal/hints"
)

// Exit codes for md2printer. Usage is not a failure.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// exitCodeFor returns the exit code for an error returned by run.
// It uses errors.Is, so callers must wrap with fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil || errors.Is(err, md2printer.ErrUsage) {
		return ExitSuccess
	}
	return ExitFailure
}

// hintFor returns an actionable suffix for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, md2printer.ErrPrinterNotFound):
		return hints.ForPrinterNotFound()
	case errors.Is(err, md2printer.ErrPrintTool):
		return hints.ForCurrentPrintTool()
	case errors.Is(err, md2printer.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, md2printer.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound()
	case errors.Is(err, errUnknownFlag):
		return "\n  hint: run 'md2printer help' to see available flags"
	}
	return ""
}

// report writes the outcome of run and returns the process exit code.
// Usage goes to stdout; failures go to stderr with a hint when one applies.
func report(err error, stdout, stderr io.Writer) int {
	switch {
	case err == nil:
	case errors.Is(err, md2printer.ErrUsage):
		printUsage(stdout)
	default:
		fmt.Fprintln(stderr, err.Error()+hintFor(err))
	}
	return exitCodeFor(err)
}
