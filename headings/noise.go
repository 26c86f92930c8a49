package headings

import (
	"strings"
	"unicode"
)

// passesNoiseFilter reports whether trimmed text is plausible heading
// text at all: long enough, carrying letters, starting with a capital,
// and not looking like a fragment of a running sentence.
func (c *Classifier) passesNoiseFilter(text string) bool {
	text = strings.TrimSpace(text)

	if len([]rune(text)) < c.config.MinHeadingChars {
		return false
	}

	if len(strings.Fields(text)) > c.config.MaxHeadingWords {
		return false
	}

	// Pure punctuation, digits or symbols never form a heading. The
	// first letter found must be uppercase: headings are set in title
	// or sentence case, while mid-sentence fragments start lowercase.
	firstLetterUpper := false
	hasLetter := false
	for _, ch := range text {
		if unicode.IsLetter(ch) {
			hasLetter = true
			firstLetterUpper = unicode.IsUpper(ch)
			break
		}
	}
	if !hasLetter || !firstLetterUpper {
		return false
	}

	return !looksLikeProseFragment(text)
}

// looksLikeProseFragment rejects text that trails off the way a wrapped
// sentence does: a trailing comma, semicolon, colon or dash means the
// thought continues on the next line, and a trailing period after a
// lowercase word means the line is the tail of a sentence.
func looksLikeProseFragment(text string) bool {
	runes := []rune(text)
	last := runes[len(runes)-1]

	switch last {
	case ',', ';', ':', '—', '–':
		return true
	case '.':
		words := strings.Fields(strings.TrimSuffix(text, "."))
		if len(words) == 0 {
			return true
		}
		final := []rune(words[len(words)-1])
		return unicode.IsLower(final[0])
	}

	return false
}
