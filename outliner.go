// Package outliner provides a fluent API for deriving document
// outlines - the title and the H1/H2/H3 heading hierarchy - from the
// typography and layout of a document's text.
//
// Basic usage:
//
//	outline, warnings, err := outliner.Open("report.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", outliner.FormatWarnings(warnings))
//	}
//
// With options:
//
//	outline, _, err := outliner.Open("report.pdf").
//	    TitleSizeRatio(1.5).
//	    MaxHeadingWords(10).
//	    Outline()
//
// Callers with their own layout analysis can feed runs directly:
//
//	outline, _, err := outliner.FromRuns(runs).Outline()
//
// For advanced use cases the lower-level baseline and headings
// packages are also available.
package outliner

import (
	"io"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/stext"
)

// Open opens a PDF file and returns an Extractor for fluent
// configuration. The file is read lazily on the first terminal
// operation, and closed when that operation finishes.
//
// Example:
//
//	outline, warnings, err := outliner.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromRuns creates an Extractor over text runs produced by the
// caller's own layout analysis.
//
// Example:
//
//	outline, warnings, err := outliner.FromRuns(runs).Outline()
func FromRuns(runs []model.TextRun) *Extractor {
	return &Extractor{
		runs:    runs,
		options: defaultOptions(),
	}
}

// FromStructuredText creates an Extractor over MuPDF structured-text
// JSON, read eagerly from r.
//
// Example:
//
//	outline, warnings, err := outliner.FromStructuredText(f).Outline()
func FromStructuredText(r io.Reader) *Extractor {
	runs, err := stext.Decode(r)
	if runs == nil {
		runs = []model.TextRun{}
	}
	return &Extractor{
		runs:    runs,
		options: defaultOptions(),
		err:     err,
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	profile := outliner.Must(outliner.Open("document.pdf").Baseline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustOutline is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It
// discards warnings and returns just the value. It is intended for use
// in scripts or tests where error handling would be cumbersome.
//
// Example:
//
//	outline := outliner.MustOutline(outliner.Open("document.pdf").Outline())
func MustOutline[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
