package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2printer <command> <...args> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Commands:")
	fmt.Fprintln(w, "    list-printers")
	fmt.Fprintln(w, "      Lists available printer information.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    preview <filepath> <tmpDirpath> [<stylesheetFilepath>]")
	fmt.Fprintln(w, "      Converts markdown file at <filepath> to pdf file at <tmpDirpath>/<filepath>.pdf")
	fmt.Fprintln(w, "      Pdf file can be styled with an optional CSS stylesheet located at <stylesheetFilepath>.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    print <printerName> <filepath> <tmpDirpath> [<stylesheetFilepath>]")
	fmt.Fprintln(w, "      Converts markdown file at <filepath> to pdf file at <tmpDirpath>/<filepath>.pdf")
	fmt.Fprintln(w, "      and sends that pdf file to the specified printer. Use list-printers to see available printers.")
	fmt.Fprintln(w, "      Pdf file can be styled with an optional CSS stylesheet located at <stylesheetFilepath>.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    version")
	fmt.Fprintln(w, "      Shows version information.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Flags:")
	fmt.Fprintln(w, "    -c, --config <path>       Config file name or path (env: MD2PRINTER_CONFIG)")
	fmt.Fprintln(w, "    -t, --timeout <dur>       Page load timeout, e.g. 30s, 2m (env: MD2PRINTER_TIMEOUT)")
	fmt.Fprintln(w, "        --format <s>          list-printers output: json, table (default: json)")
	fmt.Fprintln(w, "        --style <name>        Embedded style used without a stylesheet: markdown, plain")
	fmt.Fprintln(w, "    -p, --page-size <s>       Page size: a3, a4, a5, letter, legal (default: a4)")
	fmt.Fprintln(w, "        --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "        --margin <f>          Margin in inches on all sides (0.25-3.0)")
	fmt.Fprintln(w, "    -n, --copies <n>          Copies to print (print only)")
	fmt.Fprintln(w, "        --option <k=v>        Printer option passed to lp -o, repeatable (print only)")
	fmt.Fprintln(w, "    -q, --quiet               Only log errors")
	fmt.Fprintln(w, "    -v, --verbose             Log debug details")
	fmt.Fprintln(w, "    -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Arguments after -- are never read as flags, e.g. md2printer preview -- -notes.md ./tmp")
}
