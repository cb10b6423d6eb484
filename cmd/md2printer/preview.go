package main

import (
	"context"
	"fmt"

	md2printer "github.com/alnah/go-md2printer"
	"github.com/alnah/go-md2printer/internal/logging"
)

// runPreview handles: preview <filepath> <tmpDirpath> [<stylesheetFilepath>].
func runPreview(ctx context.Context, args []string, s *settings, env *Environment) error {
	paths := md2printer.PathSet{Input: arg(args, 0), TmpDir: arg(args, 1), Stylesheet: arg(args, 2)}

	output, err := paths.Validate()
	if err != nil {
		return err
	}
	return convert(ctx, paths, output, s, env)
}

// convert renders paths.Input to output and reports it on stdout.
func convert(ctx context.Context, paths md2printer.PathSet, output string, s *settings, env *Environment) error {
	r, err := env.NewRenderer(s.converterOptions()...)
	if err != nil {
		return err
	}
	defer func() {
		if err := r.Close(); err != nil {
			logging.Warn("closing renderer", "error", err)
		}
	}()

	opts := md2printer.RenderOptions{DestinationPath: output, StylesheetPaths: paths.Stylesheets()}
	if err := r.Render(ctx, paths.Input, opts); err != nil {
		return fmt.Errorf("converting %s: %w", paths.Input, err)
	}

	fmt.Fprintf(env.Stdout, "Wrote %s to %s\n", paths.Input, output)
	return nil
}
