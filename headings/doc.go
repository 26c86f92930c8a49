// Package headings classifies text runs as document titles and headings.
//
// Classification is purely typographic and positional: a run qualifies
// as a heading when its font size or weight stands out against the
// document's body font, or when its text opens with a structural marker
// such as "1.", "2.3" or a section keyword. Each run is judged on its
// own; no run's classification depends on any other run, which makes
// the results deterministic and order-independent.
//
// The package also detects the document title: the most prominent
// horizontally centered run on the first page.
package headings
