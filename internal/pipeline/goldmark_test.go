package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter("")

	tests := []struct {
		name     string
		markdown string
		doc      Document
		contains []string
		excludes []string
	}{
		{
			name:     "document shell",
			markdown: "# Hello",
			doc:      Document{Title: "doc.md"},
			contains: []string{"<!DOCTYPE html>", "<title>doc.md</title>", `<body class="markdown-body">`, `<h1 id="hello">Hello</h1>`},
		},
		{
			name:     "custom body class and escaped title",
			markdown: "text",
			doc:      Document{Title: "<T&C>", BodyClass: "letter"},
			contains: []string{"<title>&lt;T&amp;C&gt;</title>", `<body class="letter">`},
		},
		{
			name:     "gfm table and strikethrough",
			markdown: "| a | b |\n|---|---|\n| 1 | 2 |\n\n~~old~~",
			contains: []string{"<table>", "<del>old</del>"},
		},
		{
			name:     "task list and footnote",
			markdown: "- [x] done\n\nNote[^1]\n\n[^1]: detail",
			contains: []string{`type="checkbox"`, "footnote"},
		},
		{
			name:     "code highlighted with classes",
			markdown: "```go\nfunc main() {}\n```",
			contains: []string{`class="chroma"`},
			excludes: []string{"style=\"color"},
		},
		{
			name:     "raw html kept",
			markdown: "Intro\n\n<div class=\"page-break\"></div>\n\nNext <kbd>Ctrl</kbd>",
			contains: []string{`<div class="page-break"></div>`, "<kbd>Ctrl</kbd>"},
			excludes: []string{"raw HTML omitted"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.markdown, tt.doc)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\n%s", want, got)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("output should not contain %q\n%s", bad, got)
				}
			}
		})
	}
}

func TestGoldmarkConverter_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter("").ToHTML(ctx, "# x", Document{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestGoldmarkConverter_HighlightCSS(t *testing.T) {
	t.Parallel()

	css, err := NewGoldmarkConverter("monokai").HighlightCSS()
	if err != nil {
		t.Fatalf("HighlightCSS() error = %v", err)
	}
	if !strings.Contains(css, ".chroma") {
		t.Errorf("highlight CSS should target .chroma, got %q", css)
	}
}
