package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates goldmark failed to render the document.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultHighlightStyle is the chroma style used for fenced code.
const DefaultHighlightStyle = "github"

// DefaultBodyClass is the class the embedded styles target.
const DefaultBodyClass = "markdown-body"

const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body class="%s">
%s
</body>
</html>`

// Document describes the HTML page wrapped around the rendered markdown.
type Document struct {
	Title     string
	BodyClass string // empty = DefaultBodyClass
}

// GoldmarkConverter renders markdown to a standalone HTML5 document.
type GoldmarkConverter struct {
	md             goldmark.Markdown
	highlightStyle string
}

// NewGoldmarkConverter builds a converter with GFM, footnotes, heading IDs and
// class-based chroma highlighting. An empty style selects DefaultHighlightStyle.
func NewGoldmarkConverter(highlightStyle string) *GoldmarkConverter {
	if highlightStyle == "" {
		highlightStyle = DefaultHighlightStyle
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(),
			// Documents are local files; inline HTML such as page breaks passes through.
			gmhtml.WithUnsafe(),
		),
	)
	return &GoldmarkConverter{md: md, highlightStyle: highlightStyle}
}

// ToHTML renders markdown into a full HTML document.
// Goldmark has no context support, so rendering runs in a goroutine and the
// call returns early when ctx is done.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, markdown string, doc Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	bodyClass := doc.BodyClass
	if bodyClass == "" {
		bodyClass = DefaultBodyClass
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(markdown), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: fmt.Sprintf(documentTemplate,
			html.EscapeString(doc.Title), html.EscapeString(bodyClass), buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// HighlightCSS returns the chroma stylesheet matching the classes emitted for
// fenced code blocks.
func (c *GoldmarkConverter) HighlightCSS() (string, error) {
	var buf strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(c.highlightStyle)); err != nil {
		return "", fmt.Errorf("writing highlight CSS: %w", err)
	}
	return buf.String(), nil
}
