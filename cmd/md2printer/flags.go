package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	md2printer "github.com/alnah/go-md2printer"
)

// errUnknownFlag marks a flag parsing failure.
var errUnknownFlag = errors.New("invalid flag")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	timeout string
	quiet   bool
	verbose bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// printFlags holds print dispatch flags.
type printFlags struct {
	copies  int
	options []string
}

// cliFlags holds every flag; they may appear anywhere on the command line.
type cliFlags struct {
	common commonFlags
	page   pageFlags
	print  printFlags
	format string
	style  string
	help   bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "page load timeout (e.g., 30s, 2m)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only log errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log debug details")
}

func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: a3, a4, a5, letter, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

func addPrintFlags(fs *flag.FlagSet, f *printFlags) {
	fs.IntVarP(&f.copies, "copies", "n", 0, "copies to print")
	fs.StringArrayVar(&f.options, "option", nil, "printer option passed to lp -o (repeatable)")
}

// parseFlags parses args (without the program name) and returns the
// positional arguments. -h/--help yields ErrUsage.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2printer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	f := &cliFlags{}

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addPrintFlags(fs, &f.print)
	fs.StringVar(&f.format, "format", "json", "list-printers output: json, table")
	fs.StringVar(&f.style, "style", "", "embedded style used without a stylesheet")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, md2printer.ErrUsage
		}
		return nil, nil, fmt.Errorf("%w: %v", errUnknownFlag, err)
	}
	if f.help {
		return nil, nil, md2printer.ErrUsage
	}
	return f, fs.Args(), nil
}
