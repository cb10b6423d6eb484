package md2printer

import "context"

// Renderer turns a Markdown file into a PDF written to opts.DestinationPath.
type Renderer interface {
	Render(ctx context.Context, sourcePath string, opts RenderOptions) error
}

// RenderOptions configures one Render call.
type RenderOptions struct {
	DestinationPath string
	// StylesheetPaths replace the default style when non-empty.
	StylesheetPaths []string
}

var _ Renderer = (*Converter)(nil)
