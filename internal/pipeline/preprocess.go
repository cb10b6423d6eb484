package pipeline

import (
	"regexp"
	"strings"
)

// Private Use Area runes survive goldmark untouched and are swapped for
// <mark> tags after rendering, so a highlight never opens an HTML block.
const (
	markOpen  = "\uE000"
	markClose = "\uE001"
)

var (
	lineEndings = regexp.MustCompile(`\r\n?`)
	highlights  = regexp.MustCompile(`==([^=\n]+?)==`)
)

// Preprocess normalizes line endings to \n, collapses runs of blank lines and
// marks ==highlighted== spans. Fenced code blocks and inline code spans are
// left as written.
func Preprocess(content string) string {
	content = lineEndings.ReplaceAllString(content, "\n")

	lines := strings.Split(content, "\n")
	out := lines[:0]
	inFence := false
	blank := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			blank = false
			out = append(out, line)
			continue
		}
		if inFence {
			out = append(out, line)
			continue
		}
		if line == "" {
			if blank {
				continue
			}
			blank = true
			out = append(out, line)
			continue
		}
		blank = false
		out = append(out, markLine(line))
	}
	return strings.Join(out, "\n")
}

// markLine marks highlights in line, skipping `code spans`.
func markLine(line string) string {
	var b strings.Builder
	for {
		start := strings.IndexByte(line, '`')
		if start < 0 {
			break
		}
		n := tickRun(line[start:])
		end := closingTicks(line[start+n:], n)
		if end < 0 {
			break
		}
		stop := start + n + end + n
		b.WriteString(highlights.ReplaceAllString(line[:start], markOpen+"$1"+markClose))
		b.WriteString(line[start:stop])
		line = line[stop:]
	}
	b.WriteString(highlights.ReplaceAllString(line, markOpen+"$1"+markClose))
	return b.String()
}

// tickRun counts the backticks at the start of s.
func tickRun(s string) int {
	n := 0
	for n < len(s) && s[n] == '`' {
		n++
	}
	return n
}

// closingTicks returns the offset of the first run of exactly n backticks in
// s, or -1.
func closingTicks(s string, n int) int {
	for i := 0; i < len(s); {
		if s[i] != '`' {
			i++
			continue
		}
		run := tickRun(s[i:])
		if run == n {
			return i
		}
		i += run
	}
	return -1
}

// FinalizeMarks turns highlight placeholders into <mark> elements.
func FinalizeMarks(htmlContent string) string {
	return strings.NewReplacer(markOpen, "<mark>", markClose, "</mark>").Replace(htmlContent)
}
