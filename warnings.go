package outliner

import (
	"fmt"
	"strings"
)

// WarningCode identifies a class of non-fatal problem encountered while
// deriving an outline.
type WarningCode string

const (
	// WarnSkippedRun indicates an input run was dropped for missing
	// geometry or font metadata.
	WarnSkippedRun WarningCode = "skipped-run"

	// WarnNoTitle indicates no run on the first page qualified as a
	// title.
	WarnNoTitle WarningCode = "no-title"

	// WarnDefaultBaseline indicates the body font size could not be
	// estimated from the document and a conventional default was used.
	WarnDefaultBaseline WarningCode = "default-baseline"
)

// Warning describes a non-fatal problem encountered during extraction.
// Warnings never stop processing; they explain why the result may be
// thinner than expected.
type Warning struct {
	// Code identifies the class of problem.
	Code WarningCode

	// Message is a human-readable description.
	Message string
}

// String returns a human-readable representation of the warning.
func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Code, w.Message)
}

// FormatWarnings joins warnings into a single human-readable string,
// suitable for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
