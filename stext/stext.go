// Package stext decodes MuPDF structured-text JSON into text runs.
//
// MuPDF's "stext" JSON output carries per-line font and geometry
// information in a top-down coordinate system. The decoder flips the
// Y axis into the bottom-up page coordinates the rest of the module
// uses, so a line near the top of the page gets the largest Top().
package stext

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/outliner/model"
)

type document struct {
	Pages []page `json:"pages"`
}

type page struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Blocks []block `json:"blocks"`
}

type block struct {
	Type  string `json:"type"`
	BBox  bbox   `json:"bbox"`
	Lines []line `json:"lines"`
}

type bbox struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type line struct {
	WMode int     `json:"wmode"`
	BBox  bbox    `json:"bbox"`
	Font  font    `json:"font"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Text  string  `json:"text"`
}

type font struct {
	Name   string  `json:"name"`
	Family string  `json:"family"`
	Weight string  `json:"weight"`
	Style  string  `json:"style"`
	Size   float64 `json:"size"`
}

// defaultPageSize stands in when a page omits its dimensions:
// US Letter in points.
var defaultPageSize = bbox{W: 612, H: 792}

// Decode reads structured-text JSON and returns the document's text
// runs in the order the pages list them.
func Decode(r io.Reader) ([]model.TextRun, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("stext: decoding document: %w", err)
	}
	return convert(doc), nil
}

// DecodeBytes is a convenience wrapper around Decode.
func DecodeBytes(data []byte) ([]model.TextRun, error) {
	return Decode(bytes.NewReader(data))
}

func convert(doc document) []model.TextRun {
	var runs []model.TextRun

	for pageIdx, pg := range doc.Pages {
		width := pg.Width
		height := pg.Height
		if width <= 0 {
			width = defaultPageSize.W
		}
		if height <= 0 {
			height = defaultPageSize.H
		}

		for _, blk := range pg.Blocks {
			if blk.Type != "" && blk.Type != "text" {
				continue
			}
			for _, ln := range blk.Lines {
				if strings.TrimSpace(ln.Text) == "" {
					continue
				}

				size := ln.Font.Size
				if size <= 0 {
					size = ln.BBox.H
				}

				runs = append(runs, model.TextRun{
					Text:     ln.Text,
					FontSize: size,
					FontName: ln.Font.Name,
					Bold:     strings.EqualFold(ln.Font.Weight, "bold"),
					Page:     pageIdx + 1,
					// MuPDF reports top-down coordinates; flip to
					// bottom-up.
					BBox: model.NewBBox(
						ln.BBox.X,
						height-(ln.BBox.Y+ln.BBox.H),
						ln.BBox.W,
						ln.BBox.H,
					),
					PageWidth: width,
				})
			}
		}
	}

	return runs
}
