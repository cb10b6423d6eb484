package main

import (
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	md2printer "github.com/alnah/go-md2printer"
)

// renderer is a Renderer that holds resources until closed.
type renderer interface {
	md2printer.Renderer
	io.Closer
}

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Getenv   func(string) string
	Environ  func() []string
	Printers md2printer.PrinterService
	// NewRenderer is called only once a command has passed every
	// precondition, so the browser never starts for a failed invocation.
	NewRenderer func(opts ...md2printer.Option) (renderer, error)
	// InitLogging installs the diagnostic logger; nil leaves it untouched.
	InitLogging func(opts loggingOptions) (io.Closer, error)
	// SetMaxProcs tunes GOMAXPROCS once logging is ready; nil skips it.
	SetMaxProcs func(logf func(format string, args ...any))
}

// DefaultEnv returns the production environment: real stdio, the system
// print spooler and the headless Chrome converter.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Getenv:   os.Getenv,
		Environ:  os.Environ,
		Printers: md2printer.NewSystemPrinters(),
		NewRenderer: func(opts ...md2printer.Option) (renderer, error) {
			return md2printer.NewConverter(opts...)
		},
		InitLogging: initLogging,
		SetMaxProcs: func(logf func(string, ...any)) {
			// Set only fails on an invalid GOMAXPROCS; the runtime default applies then.
			_, _ = maxprocs.Set(maxprocs.Logger(logf))
		},
	}
}
