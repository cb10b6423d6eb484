package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	md2printer "github.com/alnah/go-md2printer"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Collaborator doubles
// ---------------------------------------------------------------------------

// fakeRenderer records Render calls and writes a stub PDF on success.
type fakeRenderer struct {
	mu       sync.Mutex
	err      error
	calls    []renderCall
	closed   bool
	options  int
	newCalls int
}

type renderCall struct {
	source string
	opts   md2printer.RenderOptions
}

func (f *fakeRenderer) Render(_ context.Context, source string, opts md2printer.RenderOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, renderCall{source: source, opts: opts})
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(opts.DestinationPath, []byte("%PDF-1.7 stub"), 0o644)
}

func (f *fakeRenderer) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeRenderer) factory(opts ...md2printer.Option) (renderer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.newCalls++
	f.options = len(opts)
	return f, nil
}

// fakePrinters is an in-memory PrinterService.
type fakePrinters struct {
	mu        sync.Mutex
	printers  []md2printer.Printer
	listErr   error
	printErr  error
	listCalls int
	printed   []printCall
}

type printCall struct {
	file string
	opts md2printer.PrintOptions
}

func (f *fakePrinters) ListPrinters(context.Context) ([]md2printer.Printer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return f.printers, f.listErr
}

func (f *fakePrinters) Print(_ context.Context, file string, opts md2printer.PrintOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.printed = append(f.printed, printCall{file: file, opts: opts})
	return f.printErr
}

// testEnv bundles an Environment wired to doubles and captured output.
type testEnv struct {
	*Environment
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	renderer *fakeRenderer
	printers *fakePrinters
	vars     map[string]string
}

func newTestEnv() *testEnv {
	te := &testEnv{
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
		renderer: &fakeRenderer{},
		printers: &fakePrinters{},
		vars:     map[string]string{},
	}
	te.Environment = &Environment{
		Stdout:      te.stdout,
		Stderr:      te.stderr,
		Getenv:      func(k string) string { return te.vars[k] },
		Environ:     func() []string { return nil },
		Printers:    te.printers,
		NewRenderer: te.renderer.factory,
	}
	return te
}

func (te *testEnv) run(args ...string) int {
	return runMain(context.Background(), append([]string{"md2printer"}, args...), te.Environment)
}

// setupTestDir creates a temp directory with the given files.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for path, content := range files {
		full := filepath.Join(dir, path)
		if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
			t.Fatalf("creating dir for %s: %v", path, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
	return dir
}

var errBoom = errors.New("boom")

var _ io.Closer = (*fakeRenderer)(nil)
