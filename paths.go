package md2printer

import (
	"fmt"
	"path/filepath"

	"github.com/alnah/go-md2printer/internal/fileutil"
)

// PathKind names what a validated path was expected to be.
type PathKind string

// Path kinds, as they appear at the start of error messages.
const (
	KindFile       PathKind = "File"
	KindDirectory  PathKind = "Directory"
	KindStylesheet PathKind = "Stylesheet"
)

// PathError reports a missing path or one of the wrong kind.
// It matches ErrPathNotFound or ErrNotADirectory with errors.Is.
type PathError struct {
	Kind PathKind
	Path string
	Err  error
}

func (e *PathError) Error() string {
	if e.Err == ErrNotADirectory {
		return fmt.Sprintf("%s \"%s\" is not a directory", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s \"%s\" does not exist", e.Kind, e.Path)
}

func (e *PathError) Unwrap() error { return e.Err }

// PathSet groups the paths a preview or print invocation works with.
// An empty Stylesheet means none.
type PathSet struct {
	Input      string
	TmpDir     string
	Stylesheet string
}

// Validate checks the input file, then the temp directory, then the
// stylesheet, and stops at the first failure. On success it returns the PDF
// destination from OutputPath.
//
// A missing Input or TmpDir is a usage problem, not a path error: the returned
// error wraps ErrUsage and no filesystem check runs.
func (p PathSet) Validate() (string, error) {
	if p.Input == "" || p.TmpDir == "" {
		return "", fmt.Errorf("%w: missing file or temp directory argument", ErrUsage)
	}

	if !fileutil.Exists(p.Input) {
		return "", &PathError{Kind: KindFile, Path: p.Input, Err: ErrPathNotFound}
	}

	exists, isDir := fileutil.DirState(p.TmpDir)
	if !exists {
		return "", &PathError{Kind: KindDirectory, Path: p.TmpDir, Err: ErrPathNotFound}
	}
	if !isDir {
		return "", &PathError{Kind: KindDirectory, Path: p.TmpDir, Err: ErrNotADirectory}
	}

	if p.Stylesheet != "" && !fileutil.Exists(p.Stylesheet) {
		return "", &PathError{Kind: KindStylesheet, Path: p.Stylesheet, Err: ErrPathNotFound}
	}

	return OutputPath(p.TmpDir, p.Input), nil
}

// Stylesheets returns the stylesheet as a one-element list, or nil when unset.
func (p PathSet) Stylesheets() []string {
	if p.Stylesheet == "" {
		return nil
	}
	return []string{p.Stylesheet}
}

// OutputPath returns tmpDir + "/" + basename(input) + ".pdf".
// tmpDir is used as given, so "./tmp" yields "./tmp/doc.md.pdf".
func OutputPath(tmpDir, input string) string {
	return tmpDir + "/" + filepath.Base(input) + ".pdf"
}
