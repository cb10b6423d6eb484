package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	md2printer "github.com/alnah/go-md2printer"
)

// runListPrinters prints every printer the print system knows about.
func runListPrinters(ctx context.Context, s *settings, env *Environment) error {
	printers, err := env.Printers.ListPrinters(ctx)
	if err != nil {
		return err
	}
	if s.format == formatTable {
		return writePrinterTable(env.Stdout, printers)
	}
	return writePrinterJSON(env.Stdout, printers)
}

// writePrinterJSON writes printers as an indented JSON array, "name" first.
func writePrinterJSON(w io.Writer, printers []md2printer.Printer) error {
	if printers == nil {
		printers = []md2printer.Printer{}
	}
	data, err := json.MarshalIndent(printers, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding printers: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writePrinterTable writes aligned NAME, STATUS, DEFAULT and DEVICE columns.
// Widths count display cells so CJK printer names line up.
func writePrinterTable(w io.Writer, printers []md2printer.Printer) error {
	rows := [][]string{{"NAME", "STATUS", "DEFAULT", "DEVICE"}}
	for _, p := range printers {
		def := ""
		if p.Default {
			def = "*"
		}
		rows = append(rows, []string{p.Name, p.Status, def, p.DeviceID})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			if i == len(row)-1 {
				line.WriteString(cell)
				break
			}
			line.WriteString(runewidth.FillRight(cell, widths[i]))
			line.WriteString("  ")
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
