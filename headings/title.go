package headings

import (
	"math"

	"github.com/tsawler/outliner/baseline"
	"github.com/tsawler/outliner/model"
)

// TitleDetector finds the document title: the most prominent
// horizontally centered run on the first page.
type TitleDetector struct {
	config Config
}

// NewTitleDetector creates a title detector with default configuration.
func NewTitleDetector() *TitleDetector {
	return NewTitleDetectorWithConfig(DefaultConfig())
}

// NewTitleDetectorWithConfig creates a title detector with custom
// configuration.
func NewTitleDetectorWithConfig(config Config) *TitleDetector {
	return &TitleDetector{config: config}
}

// Detect returns the title run and its index within runs, or ok=false
// when no run qualifies. A run qualifies when it sits on page one, its
// font size is at least TitleSizeRatio times the body size, and its
// horizontal center falls within CenterTolerance of the page center.
// Among qualifying runs the largest wins; ties resolve to the run
// nearest the top of the page, then to the leftmost.
func (d *TitleDetector) Detect(runs []model.TextRun, profile baseline.Profile) (model.TextRun, int, bool) {
	minSize := profile.BodyFontSize * d.config.TitleSizeRatio

	best := -1
	for i, run := range runs {
		if run.Page != 1 || run.IsEmpty() {
			continue
		}
		if run.Validate(i) != nil {
			continue
		}
		if run.FontSize < minSize {
			continue
		}

		offset := math.Abs(run.BBox.Center().X - run.PageWidth/2)
		if offset > d.config.CenterTolerance*run.PageWidth {
			continue
		}

		if best < 0 || titleWins(run, runs[best]) {
			best = i
		}
	}

	if best < 0 {
		return model.TextRun{}, -1, false
	}
	return runs[best], best, true
}

// titleWins reports whether candidate a beats the current best b:
// larger font first, then higher on the page, then further left.
func titleWins(a, b model.TextRun) bool {
	if a.FontSize != b.FontSize {
		return a.FontSize > b.FontSize
	}
	if a.BBox.Top() != b.BBox.Top() {
		return a.BBox.Top() > b.BBox.Top()
	}
	return a.BBox.X < b.BBox.X
}
