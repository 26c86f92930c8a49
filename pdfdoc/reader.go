package pdfdoc

import (
	"fmt"
	"os"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/tsawler/outliner/model"
)

const (
	// lineTolerance is the fraction of the font size two fragments'
	// baselines may differ by and still share a line.
	lineTolerance = 0.5

	// spaceGap is the fraction of the font size a horizontal gap must
	// exceed before a space is inserted between fragments.
	spaceGap = 0.3

	// defaultPageWidth is US Letter width in points, used when a page
	// carries no readable MediaBox.
	defaultPageWidth = 612.0
)

// Reader extracts text runs from a PDF file.
type Reader struct {
	f      *os.File
	reader *pdflib.Reader
}

// Open opens a PDF file for reading. The caller must Close the reader
// when done.
func Open(path string) (*Reader, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	return &Reader{f: f, reader: reader}, nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	if r == nil || r.f == nil {
		return nil
	}
	return r.f.Close()
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() int {
	if r == nil || r.reader == nil {
		return 0
	}
	return r.reader.NumPage()
}

// Runs extracts the text runs of every page in document order.
// Unreadable pages are skipped rather than failing the document.
func (r *Reader) Runs() ([]model.TextRun, error) {
	if r == nil || r.reader == nil {
		return nil, fmt.Errorf("pdfdoc: reader is not open")
	}

	var runs []model.TextRun
	numPages := r.reader.NumPage()
	for i := 1; i <= numPages; i++ {
		pageRuns, err := r.PageRuns(i)
		if err != nil {
			continue
		}
		runs = append(runs, pageRuns...)
	}

	return runs, nil
}

// PageRuns extracts the text runs of a single 1-based page.
func (r *Reader) PageRuns(pageNum int) ([]model.TextRun, error) {
	if r == nil || r.reader == nil {
		return nil, fmt.Errorf("pdfdoc: reader is not open")
	}
	if pageNum < 1 || pageNum > r.reader.NumPage() {
		return nil, fmt.Errorf("pdfdoc: page %d out of range", pageNum)
	}

	page := r.reader.Page(pageNum)
	if page.V.IsNull() {
		return nil, fmt.Errorf("pdfdoc: page %d has no content", pageNum)
	}

	width := pageWidth(page)
	content := page.Content()

	return assembleRuns(content.Text, pageNum, width), nil
}

// pageWidth reads the page width from the MediaBox, which may be
// inherited from an ancestor node in the page tree.
func pageWidth(page pdflib.Page) float64 {
	box := page.V.Key("MediaBox")
	if box.IsNull() || box.Len() < 4 {
		return defaultPageWidth
	}

	width := box.Index(2).Float64() - box.Index(0).Float64()
	if width <= 0 {
		return defaultPageWidth
	}
	return width
}

// assembleRuns groups raw text fragments into line-level runs. The
// fragments arrive in content-stream order, which rarely matches
// reading order, so they are sorted top-to-bottom then left-to-right
// first.
func assembleRuns(texts []pdflib.Text, page int, width float64) []model.TextRun {
	fragments := make([]pdflib.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" || t.FontSize <= 0 {
			continue
		}
		fragments = append(fragments, t)
	}
	if len(fragments) == 0 {
		return nil
	}

	sort.SliceStable(fragments, func(a, b int) bool {
		if fragments[a].Y != fragments[b].Y {
			return fragments[a].Y > fragments[b].Y
		}
		return fragments[a].X < fragments[b].X
	})

	var runs []model.TextRun
	line := []pdflib.Text{fragments[0]}
	for _, frag := range fragments[1:] {
		anchor := line[0]
		if sameBaseline(anchor, frag) {
			line = append(line, frag)
			continue
		}
		runs = append(runs, buildRun(line, page, width))
		line = []pdflib.Text{frag}
	}
	runs = append(runs, buildRun(line, page, width))

	return runs
}

func sameBaseline(a, b pdflib.Text) bool {
	tolerance := a.FontSize * lineTolerance
	diff := a.Y - b.Y
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}

// buildRun assembles one line's fragments into a run. The dominant
// font of the line, by character count, supplies the run's font name
// and size.
func buildRun(line []pdflib.Text, page int, width float64) model.TextRun {
	sort.SliceStable(line, func(a, b int) bool {
		return line[a].X < line[b].X
	})

	var sb strings.Builder
	fontChars := make(map[string]int)
	fontSize := make(map[string]float64)

	prevEnd := line[0].X
	for i, frag := range line {
		if i > 0 {
			gap := frag.X - prevEnd
			if gap > frag.FontSize*spaceGap && !strings.HasSuffix(sb.String(), " ") {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(frag.S)
		prevEnd = frag.X + frag.W

		fontChars[frag.Font] += len([]rune(frag.S))
		if frag.FontSize > fontSize[frag.Font] {
			fontSize[frag.Font] = frag.FontSize
		}
	}

	dominant := line[0].Font
	bestChars := 0
	for font, chars := range fontChars {
		if chars > bestChars || (chars == bestChars && font < dominant) {
			dominant = font
			bestChars = chars
		}
	}
	size := fontSize[dominant]

	left := line[0].X
	right := prevEnd
	if right <= left {
		right = left + size
	}

	return model.TextRun{
		Text:      strings.TrimSpace(sb.String()),
		FontSize:  size,
		FontName:  dominant,
		Page:      page,
		BBox:      model.NewBBox(left, line[0].Y, right-left, size*1.2),
		PageWidth: width,
	}
}
