package md2printer

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// listPrintersScript asks WMI for every printer as JSON.
const listPrintersScript = `Get-CimInstance -ClassName Win32_Printer | ` +
	`Select-Object Name,DeviceID,PrinterStatus,Default,Location,Comment | ` +
	`ConvertTo-Json -Compress`

// win32Printer mirrors the selected Win32_Printer properties.
type win32Printer struct {
	Name          string `json:"Name"`
	DeviceID      string `json:"DeviceID"`
	PrinterStatus int    `json:"PrinterStatus"`
	Default       bool   `json:"Default"`
	Location      string `json:"Location"`
	Comment       string `json:"Comment"`
}

// parseWin32Printers decodes ConvertTo-Json output, which is an object for a
// single printer and an array otherwise.
func parseWin32Printers(out string) ([]Printer, error) {
	out = strings.TrimSpace(out)
	if out == "" {
		return []Printer{}, nil
	}

	var raw []win32Printer
	if strings.HasPrefix(out, "{") {
		var one win32Printer
		if err := json.Unmarshal([]byte(out), &one); err != nil {
			return nil, fmt.Errorf("decoding printer list: %w", err)
		}
		raw = []win32Printer{one}
	} else if err := json.Unmarshal([]byte(out), &raw); err != nil {
		return nil, fmt.Errorf("decoding printer list: %w", err)
	}

	printers := make([]Printer, 0, len(raw))
	for _, p := range raw {
		if p.Name == "" {
			continue
		}
		printers = append(printers, Printer{
			Name:        p.Name,
			DeviceID:    p.DeviceID,
			Status:      win32Status(p.PrinterStatus),
			Description: p.Comment,
			Location:    p.Location,
			Default:     p.Default,
		})
	}
	sort.Slice(printers, func(i, j int) bool { return printers[i].Name < printers[j].Name })
	return printers, nil
}

// win32Status maps Win32_Printer.PrinterStatus codes.
func win32Status(code int) string {
	switch code {
	case 3:
		return "idle"
	case 4:
		return "printing"
	case 5:
		return "warmup"
	case 6:
		return "stopped"
	case 7:
		return "offline"
	default:
		return "unknown"
	}
}

// psQuote returns s as a single-quoted PowerShell literal.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// printScript sends filePath to printerName through the shell's PrintTo verb.
func printScript(filePath, printerName string) string {
	return fmt.Sprintf(`Start-Process -FilePath %s -Verb PrintTo -ArgumentList %s -WindowStyle Hidden -Wait`,
		psQuote(filePath), psQuote(`"`+printerName+`"`))
}
