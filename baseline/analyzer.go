package baseline

import (
	"errors"
	"math"

	"github.com/tsawler/outliner/model"
)

// ErrEmptyDocument is returned by Analyze when the input contains no runs.
var ErrEmptyDocument = errors.New("baseline: document contains no text runs")

// DefaultBodyFontSize is used when no run carries usable text, so that
// classification can still proceed with a conventional prose size.
const DefaultBodyFontSize = 12.0

// Config holds the tunable parameters for baseline analysis.
type Config struct {
	// BucketSize is the granularity font sizes are rounded to before
	// counting. 0.5 merges the near-identical sizes PDF generators emit
	// for the same nominal style.
	BucketSize float64

	// MinFontSize excludes runs below this size from the estimate.
	// Footnotes, captions and page furniture would otherwise drag the
	// baseline down in footnote-heavy documents.
	MinFontSize float64
}

// DefaultConfig returns the default baseline analysis configuration.
func DefaultConfig() Config {
	return Config{
		BucketSize:  0.5,
		MinFontSize: 7.0,
	}
}

// Profile describes the document-wide font statistics produced by Analyze.
type Profile struct {
	// BodyFontSize is the estimated dominant prose font size in points.
	BodyFontSize float64

	// RunCount is the number of runs that contributed to the estimate.
	RunCount int

	// CharCount is the total number of characters those runs carried.
	CharCount int
}

// Analyzer computes a document's baseline profile from its text runs.
type Analyzer struct {
	config Config
}

// NewAnalyzer creates an analyzer with default configuration.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(DefaultConfig())
}

// NewAnalyzerWithConfig creates an analyzer with custom configuration.
func NewAnalyzerWithConfig(config Config) *Analyzer {
	if config.BucketSize <= 0 {
		config.BucketSize = 0.5
	}
	return &Analyzer{config: config}
}

// Analyze estimates the body font size of a document from its runs.
//
// Each run votes for its rounded font size with a weight equal to its
// character count, so the size of the document's prose wins over the
// size of its decorations. Runs below the minimum font size are
// excluded; if that excludes everything, the floor is lifted and the
// estimate is retried so an all-small document still gets a baseline.
// Two buckets with the same character weight resolve to the larger
// size. It returns ErrEmptyDocument when runs is empty.
func (a *Analyzer) Analyze(runs []model.TextRun) (Profile, error) {
	if len(runs) == 0 {
		return Profile{}, ErrEmptyDocument
	}

	profile, ok := a.analyze(runs, a.config.MinFontSize)
	if !ok {
		profile, ok = a.analyze(runs, 0)
	}
	if !ok {
		// Every run is empty of text. Fall back to a conventional size.
		return Profile{BodyFontSize: DefaultBodyFontSize}, nil
	}

	return profile, nil
}

func (a *Analyzer) analyze(runs []model.TextRun, minSize float64) (Profile, bool) {
	weights := make(map[float64]int)
	runCount := 0
	charCount := 0

	for _, run := range runs {
		if run.FontSize <= minSize || run.IsEmpty() {
			continue
		}

		chars := len([]rune(run.Text))
		bucket := math.Round(run.FontSize/a.config.BucketSize) * a.config.BucketSize
		weights[bucket] += chars
		runCount++
		charCount += chars
	}

	if len(weights) == 0 {
		return Profile{}, false
	}

	bestSize := 0.0
	bestWeight := 0
	for size, weight := range weights {
		if weight > bestWeight || (weight == bestWeight && size > bestSize) {
			bestSize = size
			bestWeight = weight
		}
	}

	return Profile{
		BodyFontSize: bestSize,
		RunCount:     runCount,
		CharCount:    charCount,
	}, true
}
