// Package pdfdoc reads text runs from PDF files.
//
// It wraps a pure-Go PDF reader and assembles its per-glyph text
// fragments into line-level runs carrying the font name, size and
// geometry that classification needs. Layout reconstruction is
// deliberately simple: fragments sharing a baseline become one run,
// and horizontal gaps wider than a fraction of the font size become
// spaces.
package pdfdoc
