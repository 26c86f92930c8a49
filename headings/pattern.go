package headings

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/outliner/model"
)

var (
	// numericMarker matches section numbers like "1.", "2.3" or "10.1.2"
	// at the start of a line, followed by the heading text.
	numericMarker = regexp.MustCompile(`^(\d+(?:\.\d+)*)\.?\s+\S`)

	// letterMarker matches lettered sections like "A." or "B.2" used by
	// appendices. The dot is mandatory so a bare pronoun like "I" never
	// reads as a marker.
	letterMarker = regexp.MustCompile(`^([A-Z](?:\.\d+)*)(\.)?\s+\S`)
)

// normalizeText prepares run text for pattern matching: Unicode
// compatibility normalization folds fullwidth digits and ornamental
// dots into their ASCII forms, and surrounding space is trimmed.
func normalizeText(text string) string {
	return strings.TrimSpace(norm.NFKC.String(text))
}

// matchMarker reports whether text opens with a structural section
// marker and, if so, the marker's segment depth. "1." has depth 1,
// "2.3" depth 2, "1.2.3" depth 3.
func matchMarker(text string) (depth int, ok bool) {
	if m := numericMarker.FindStringSubmatch(text); m != nil {
		return strings.Count(m[1], ".") + 1, true
	}
	if m := letterMarker.FindStringSubmatch(text); m != nil {
		if !strings.Contains(m[1], ".") && m[2] != "." {
			return 0, false
		}
		return strings.Count(m[1], ".") + 1, true
	}
	return 0, false
}

// matchKeyword reports whether text is a conventional section name such
// as "Abstract" or "References", possibly followed by a subtitle.
func (c *Classifier) matchKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range c.config.Keywords {
		if lower == kw {
			return true
		}
		if strings.HasPrefix(lower, kw) {
			rest := lower[len(kw):]
			if strings.HasPrefix(rest, " ") || strings.HasPrefix(rest, ":") {
				return true
			}
		}
	}
	return false
}

// markerLevel converts a marker depth to a heading level: one segment
// is a chapter-level heading, two a section, three or more a
// subsection.
func markerLevel(depth int) model.Level {
	switch {
	case depth <= 1:
		return model.LevelH1
	case depth == 2:
		return model.LevelH2
	default:
		return model.LevelH3
	}
}
