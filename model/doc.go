// Package model defines the core data types shared across the outliner
// library: text runs with font and position metadata, heading levels,
// and the outline structure produced by classification.
//
// A [TextRun] is one visually contiguous line of text as reported by an
// upstream extraction collaborator. An [Outline] is the derived result:
// an ordered sequence of [Entry] values, at most one of which is a title.
package model
