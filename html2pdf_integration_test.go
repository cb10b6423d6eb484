//go:build integration

package md2printer

// Notes:
// - Launches a real Chromium through go-rod; run with -tags integration.
// - Rod downloads Chromium on first run if ROD_BROWSER_BIN is unset.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testTimeout = 60 * time.Second

func assertValidPDFFile(t *testing.T, path string) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read PDF file: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("data does not have PDF magic bytes, got prefix: %q", data[:min(10, len(data))])
	}
	if len(data) < 100 {
		t.Errorf("PDF data suspiciously small: %d bytes", len(data))
	}
}

func TestConverter_Render_Integration(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.md")
	content := "---\ntitle: Integration\npage:\n  size: letter\n---\n# Hello\n\n```go\nfunc main() {}\n```\n\n==done==\n"
	if err := os.WriteFile(src, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	conv, err := NewConverter(WithTimeout(testTimeout))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	defer conv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	out := OutputPath(dir, src)
	if err := conv.Render(ctx, src, RenderOptions{DestinationPath: out}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	assertValidPDFFile(t, out)

	// A second render reuses the browser.
	out2 := filepath.Join(dir, "again.pdf")
	if err := conv.Render(ctx, src, RenderOptions{DestinationPath: out2}); err != nil {
		t.Fatalf("second Render() error = %v", err)
	}
	assertValidPDFFile(t, out2)
}

func TestRodRenderer_Close_Idempotent(t *testing.T) {
	r := newRodRenderer(testTimeout)
	if err := r.Close(); err != nil {
		t.Fatalf("Close() on unused renderer error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}
