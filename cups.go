package md2printer

import (
	"bufio"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// noDestinations is what lpstat reports when no queue is configured.
const noDestinations = "No destinations added"

var requestID = regexp.MustCompile(`request id is (\S+)`)

// parseLpstatPrinters reads `lpstat -l -p` output.
//
//	printer Office is idle.  enabled since Mon 01 Jan 2024 10:00:00
//		Description: Office laser
//		Location: 2nd floor
func parseLpstatPrinters(out string) []Printer {
	var printers []Printer
	var current *Printer

	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if rest, ok := strings.CutPrefix(line, "printer "); ok {
			name, state, _ := strings.Cut(rest, " ")
			if name == "" {
				current = nil
				continue
			}
			printers = append(printers, Printer{Name: name, Status: lpstatStatus(state)})
			current = &printers[len(printers)-1]
			continue
		}
		if current == nil {
			continue
		}
		key, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		switch key {
		case "Description":
			current.Description = strings.TrimSpace(value)
		case "Location":
			current.Location = strings.TrimSpace(value)
		}
	}
	return printers
}

func lpstatStatus(state string) string {
	switch {
	case strings.HasPrefix(state, "is idle"):
		return "idle"
	case strings.HasPrefix(state, "now printing"):
		return "printing"
	case strings.Contains(state, "disabled"):
		return "disabled"
	default:
		return "unknown"
	}
}

// parseLpstatDevices reads `lpstat -v` output into a name to URI map.
//
//	device for Office: ipp://10.0.0.5/ipp/print
func parseLpstatDevices(out string) map[string]string {
	devices := make(map[string]string)
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		rest, ok := strings.CutPrefix(strings.TrimSpace(sc.Text()), "device for ")
		if !ok {
			continue
		}
		name, uri, ok := strings.Cut(rest, ":")
		if !ok {
			continue
		}
		devices[name] = strings.TrimSpace(uri)
	}
	return devices
}

// parseLpstatDefault reads `lpstat -d` output. It returns "" when no
// default destination is set.
func parseLpstatDefault(out string) string {
	const prefix = "system default destination:"
	for _, line := range strings.Split(out, "\n") {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(line), prefix); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

// mergeCUPS combines the three lpstat views, sorted by name.
func mergeCUPS(printers []Printer, devices map[string]string, defaultName string) []Printer {
	for i := range printers {
		printers[i].DeviceID = devices[printers[i].Name]
		printers[i].Default = printers[i].Name == defaultName
	}
	sort.Slice(printers, func(i, j int) bool { return printers[i].Name < printers[j].Name })
	return printers
}

// lpArgs builds the lp command line. "--" keeps file names starting with a
// dash from being read as options.
func lpArgs(filePath string, opts PrintOptions) []string {
	args := []string{"-d", opts.PrinterName}
	if opts.Copies > 1 {
		args = append(args, "-n", strconv.Itoa(opts.Copies))
	}
	for _, o := range opts.Options {
		args = append(args, "-o", o)
	}
	return append(args, "--", filePath)
}

// parseRequestID extracts the job id from lp output, or "".
func parseRequestID(out string) string {
	if m := requestID.FindStringSubmatch(out); m != nil {
		return m[1]
	}
	return ""
}
