package pipeline

import "strings"

// InjectCSS adds one <style> element per non-empty sheet, in order, just
// before </head>. Without a head it goes after <body ...>, else it is prepended.
func InjectCSS(htmlContent string, sheets ...string) string {
	var block strings.Builder
	for _, css := range sheets {
		if strings.TrimSpace(css) == "" {
			continue
		}
		block.WriteString("<style>")
		block.WriteString(escapeStyle(css))
		block.WriteString("</style>\n")
	}
	if block.Len() == 0 {
		return htmlContent
	}
	styles := block.String()
	lower := strings.ToLower(htmlContent)

	if idx := strings.Index(lower, "</head>"); idx != -1 {
		return htmlContent[:idx] + styles + htmlContent[idx:]
	}
	if idx := strings.Index(lower, "<body"); idx != -1 {
		if end := strings.Index(htmlContent[idx:], ">"); end != -1 {
			pos := idx + end + 1
			return htmlContent[:pos] + styles + htmlContent[pos:]
		}
	}
	return styles + htmlContent
}

// escapeStyle keeps a stylesheet from closing its <style> element early.
func escapeStyle(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
