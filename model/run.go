package model

import (
	"fmt"
	"strings"
	"unicode"
)

// TextRun represents one visually contiguous line of text on a page,
// as reported by an upstream extraction collaborator.
type TextRun struct {
	// Text is the assembled text content of the run.
	Text string

	// FontSize is the dominant font size of the run in points.
	FontSize float64

	// FontName is the reported font name (e.g. "Helvetica-Bold").
	// Weight markers embedded in the name are recognized by IsBold.
	FontName string

	// Bold marks runs whose source reports weight separately from the
	// font name (e.g. MuPDF structured text). IsBold honors it.
	Bold bool

	// Page is the 1-based page number the run appears on.
	Page int

	// BBox is the bounding box of the run on the page.
	BBox BBox

	// PageWidth is the width of the page the run appears on.
	PageWidth float64
}

// boldMarkers are font-name substrings that indicate a bold or heavier weight.
var boldMarkers = []string{"bold", "black", "heavy", "semibold", "demibold"}

// IsBold reports whether the run uses a bold or heavier font weight,
// either via the explicit flag or via weight markers in the font name.
func (r TextRun) IsBold() bool {
	if r.Bold {
		return true
	}
	fontLower := strings.ToLower(r.FontName)
	for _, marker := range boldMarkers {
		if strings.Contains(fontLower, marker) {
			return true
		}
	}
	return false
}

// IsEmpty returns true if the run has no text content after trimming.
func (r TextRun) IsEmpty() bool {
	return strings.TrimSpace(r.Text) == ""
}

// WordCount returns the number of whitespace-separated words in the run.
func (r TextRun) WordCount() int {
	return len(strings.Fields(r.Text))
}

// LetterCount returns the number of letter runes in the run's text.
func (r TextRun) LetterCount() int {
	count := 0
	for _, ch := range r.Text {
		if unicode.IsLetter(ch) {
			count++
		}
	}
	return count
}

// InvalidRunError describes a text run missing required geometry or font
// information. Invalid runs are skipped during analysis; they never abort
// the document.
type InvalidRunError struct {
	// Index is the run's position in the input sequence.
	Index int

	// Reason describes the missing or unusable field.
	Reason string
}

func (e *InvalidRunError) Error() string {
	return fmt.Sprintf("invalid text run %d: %s", e.Index, e.Reason)
}

// Validate checks that the run carries the geometry and font metadata
// classification depends on. The index is only used for error reporting.
func (r TextRun) Validate(index int) error {
	if r.Page < 1 {
		return &InvalidRunError{Index: index, Reason: fmt.Sprintf("page %d out of range", r.Page)}
	}
	if r.FontSize <= 0 {
		return &InvalidRunError{Index: index, Reason: "nonpositive font size"}
	}
	if !r.BBox.IsValid() {
		return &InvalidRunError{Index: index, Reason: "degenerate bounding box"}
	}
	if r.PageWidth <= 0 {
		return &InvalidRunError{Index: index, Reason: "nonpositive page width"}
	}
	return nil
}
