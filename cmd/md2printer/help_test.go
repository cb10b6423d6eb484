package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	out := buf.String()

	for _, want := range []string{
		"Usage: md2printer <command> <...args>",
		"list-printers",
		"preview <filepath> <tmpDirpath> [<stylesheetFilepath>]",
		"print <printerName> <filepath> <tmpDirpath> [<stylesheetFilepath>]",
		"--config",
		"--format",
		"preview -- -notes.md",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q", want)
		}
	}
}
