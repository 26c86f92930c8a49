// Package baseline estimates the dominant body font size of a document.
//
// The body font size anchors every relative size comparison in heading
// detection: a run is only heading-sized in relation to the surrounding
// prose. The analyzer buckets the font sizes of all runs and picks the
// bucket covering the most characters, so long paragraphs dominate even
// when a document carries many short decorated runs.
package baseline
