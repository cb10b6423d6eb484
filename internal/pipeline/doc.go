// Package pipeline turns a markdown file's contents into a standalone HTML
// document ready for printing:
//
//  1. SplitFrontMatter strips and decodes the optional YAML header.
//  2. Preprocess normalizes line endings and ==highlight== syntax.
//  3. GoldmarkConverter renders GFM with chroma syntax highlighting.
//  4. RewriteRelativePaths makes image and link paths absolute file:// URLs,
//     since the page is loaded from a temp file, not from the source directory.
//  5. FinalizeMarks and InjectCSS complete the document.
//
// PDF layout and printing live in the root package.
package pipeline
