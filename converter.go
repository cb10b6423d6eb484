package md2printer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-md2printer/internal/assets"
	"github.com/alnah/go-md2printer/internal/fileutil"
	"github.com/alnah/go-md2printer/internal/logging"
	"github.com/alnah/go-md2printer/internal/pipeline"
)

// DefaultTimeout bounds page loading when no context deadline is set.
const DefaultTimeout = 30 * time.Second

// Converter renders Markdown files to PDF with Goldmark and headless Chrome.
// Create with NewConverter and Close when done; the browser starts on first use.
type Converter struct {
	timeout      time.Duration
	page         PageSettings
	styleName    string
	style        string // resolved CSS for styleName
	highlightCSS string
	html         *pipeline.GoldmarkConverter
	pdf          pdfRenderer
}

// Option configures a Converter.
type Option func(*Converter)

// WithTimeout sets the page load timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Converter) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithPage sets default page layout; front matter can override it per document.
func WithPage(p PageSettings) Option {
	return func(c *Converter) {
		c.page = p
	}
}

// WithStyle selects the embedded style used when no stylesheet is given.
func WithStyle(name string) Option {
	return func(c *Converter) {
		if name != "" {
			c.styleName = name
		}
	}
}

// withPDFRenderer replaces the browser backend. Used by tests.
func withPDFRenderer(r pdfRenderer) Option {
	return func(c *Converter) {
		c.pdf = r
	}
}

// NewConverter creates a Converter. It fails on invalid page settings or an
// unknown style name.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		timeout:   DefaultTimeout,
		styleName: assets.DefaultStyle,
		html:      pipeline.NewGoldmarkConverter(""),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.page.Validate(); err != nil {
		return nil, err
	}

	style, err := assets.LoadStyle(c.styleName)
	if err != nil {
		return nil, fmt.Errorf("loading style %q: %w", c.styleName, err)
	}
	c.style = style

	c.highlightCSS, err = c.html.HighlightCSS()
	if err != nil {
		return nil, err
	}

	if c.pdf == nil {
		c.pdf = newRodRenderer(c.timeout)
	}
	return c, nil
}

// Render converts the Markdown file at sourcePath and writes the PDF to
// opts.DestinationPath. Stylesheets given in opts or in the document's front
// matter replace the embedded style. Recovers from internal panics.
func (c *Converter) Render(ctx context.Context, sourcePath string, opts RenderOptions) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("render panicked", "source", sourcePath, "panic", fmt.Sprint(r))
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	if opts.DestinationPath == "" {
		return fmt.Errorf("%w: destination path is empty", ErrWritePDF)
	}

	htmlContent, page, err := c.buildHTML(ctx, sourcePath, opts.StylesheetPaths)
	if err != nil {
		return err
	}

	pdf, err := c.toPDF(ctx, htmlContent, page.box())
	if err != nil {
		return err
	}

	// #nosec G306 -- PDF output files are intended to be readable
	if err := os.WriteFile(opts.DestinationPath, pdf, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	logging.Debug("pdf written", "path", opts.DestinationPath, "bytes", len(pdf))
	return nil
}

// buildHTML runs the Markdown pipeline and returns the styled document along
// with the page layout after front matter overrides.
func (c *Converter) buildHTML(ctx context.Context, sourcePath string, stylesheets []string) (string, PageSettings, error) {
	content, err := os.ReadFile(sourcePath) // #nosec G304 -- user-provided path
	if err != nil {
		return "", PageSettings{}, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	fm, body, err := pipeline.SplitFrontMatter(string(content))
	if err != nil {
		return "", PageSettings{}, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	sourceDir := filepath.Dir(sourcePath)
	sheets, err := c.collectStylesheets(fm, sourceDir, stylesheets)
	if err != nil {
		return "", PageSettings{}, err
	}

	page := PageSettings{Size: fm.Page.Size, Orientation: fm.Page.Orientation, Margin: fm.Page.Margin}.Merge(c.page)
	if err := page.Validate(); err != nil {
		return "", PageSettings{}, fmt.Errorf("front matter page: %w", err)
	}

	title := fm.Title
	if title == "" {
		title = filepath.Base(sourcePath)
	}

	htmlContent, err := c.html.ToHTML(ctx, pipeline.Preprocess(body), pipeline.Document{Title: title, BodyClass: fm.BodyClass})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", PageSettings{}, ctxErr
		}
		return "", PageSettings{}, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	htmlContent, err = pipeline.RewriteRelativePaths(htmlContent, sourceDir)
	if err != nil {
		return "", PageSettings{}, fmt.Errorf("%w: rewriting relative paths: %v", ErrHTMLConversion, err)
	}
	htmlContent = pipeline.FinalizeMarks(htmlContent)
	htmlContent = pipeline.InjectCSS(htmlContent, append([]string{c.highlightCSS}, sheets...)...)

	logging.Debug("html ready", "source", sourcePath, "bytes", len(htmlContent), "stylesheets", len(sheets))
	return htmlContent, page, nil
}

// collectStylesheets returns the CSS to inject after the highlight rules:
// front matter sheets (relative to the document), then explicit ones. With
// neither, the embedded style is used.
func (c *Converter) collectStylesheets(fm pipeline.FrontMatter, sourceDir string, explicit []string) ([]string, error) {
	declared, err := fm.Stylesheets()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	paths := make([]string, 0, len(declared)+len(explicit))
	for _, p := range declared {
		if !filepath.IsAbs(p) {
			p = filepath.Join(sourceDir, p)
		}
		paths = append(paths, p)
	}
	paths = append(paths, explicit...)

	if len(paths) == 0 {
		return []string{c.style}, nil
	}

	sheets := make([]string, 0, len(paths))
	for _, p := range paths {
		css, err := os.ReadFile(p) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadStylesheet, err)
		}
		sheets = append(sheets, string(css))
	}
	return sheets, nil
}

// toPDF hands the HTML to the browser through a temp file so relative
// file:// URLs resolve.
func (c *Converter) toPDF(ctx context.Context, htmlContent string, box pageBox) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	defer cleanup()

	pdf, err := c.pdf.RenderFromFile(ctx, tmpPath, box)
	if err != nil {
		return nil, err
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("%w: empty output", ErrPDFGeneration)
	}
	return pdf, nil
}

// Close releases the browser.
func (c *Converter) Close() error {
	if c.pdf == nil {
		return nil
	}
	if err := c.pdf.Close(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
