package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-md2printer/internal/yamlutil"
)

// ErrFrontMatter indicates a malformed YAML front matter block.
var ErrFrontMatter = errors.New("invalid front matter")

// FrontMatter holds the per-document settings read from the YAML header.
// Keys other than these are ignored.
type FrontMatter struct {
	Title      string     `yaml:"title"`
	Stylesheet any        `yaml:"stylesheet"` // string or list of strings
	BodyClass  string     `yaml:"body_class"`
	Page       PageMatter `yaml:"page"`
}

// PageMatter overrides page layout for one document.
type PageMatter struct {
	Size        string  `yaml:"size"`
	Orientation string  `yaml:"orientation"`
	Margin      float64 `yaml:"margin"`
}

// Stylesheets returns the stylesheet paths declared in the header, in order.
func (f FrontMatter) Stylesheets() ([]string, error) {
	switch v := f.Stylesheet.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		return []string{v}, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok || s == "" {
				return nil, fmt.Errorf("%w: stylesheet[%d] must be a non-empty string", ErrFrontMatter, i)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: stylesheet must be a string or a list", ErrFrontMatter)
	}
}

// SplitFrontMatter separates a leading "---" YAML block from the markdown body.
// Content without a header is returned unchanged with a zero FrontMatter.
// The block ends at the first line that is exactly "---" or "...".
func SplitFrontMatter(content string) (FrontMatter, string, error) {
	var fm FrontMatter

	normalized := strings.TrimPrefix(content, "\uFEFF")
	first, rest, ok := strings.Cut(normalized, "\n")
	if !ok || strings.TrimRight(first, "\r ") != "---" {
		return fm, content, nil
	}

	var header []string
	lines := strings.SplitAfter(rest, "\n")
	for i, line := range lines {
		trimmed := strings.TrimRight(line, "\r\n ")
		if trimmed == "---" || trimmed == "..." {
			body := strings.Join(lines[i+1:], "")
			block := strings.Join(header, "")
			if strings.TrimSpace(block) == "" {
				return fm, body, nil
			}
			if err := yamlutil.Decode([]byte(block), &fm); err != nil {
				return FrontMatter{}, content, fmt.Errorf("%w: %v", ErrFrontMatter, err)
			}
			return fm, body, nil
		}
		header = append(header, line)
	}

	// No closing delimiter: a leading thematic break, not a header.
	return fm, content, nil
}
