package headings

import (
	"fmt"

	"github.com/tsawler/outliner/model"
)

// Band maps a font-size ratio threshold to a heading level. A run whose
// size is at least Ratio times the body font size earns Level.
type Band struct {
	Ratio float64
	Level model.Level
}

// Config holds the tunable parameters for title and heading detection.
type Config struct {
	// TitleSizeRatio is the minimum ratio of a run's font size to the
	// body font size for the run to qualify as a title candidate.
	TitleSizeRatio float64

	// CenterTolerance is how far a title candidate's horizontal center
	// may sit from the page center, as a fraction of page width.
	CenterTolerance float64

	// MinSizeRatio is the minimum size ratio for a non-bold run to
	// qualify as heading-sized. Bold runs qualify at any size above
	// the body size.
	MinSizeRatio float64

	// Bands assign heading levels by size ratio, checked in order.
	// Ratios must be strictly decreasing. A heading-sized run matching
	// no band falls back to its structural marker depth, or to the
	// deepest level.
	Bands []Band

	// MinHeadingChars is the minimum trimmed length of heading text.
	MinHeadingChars int

	// MaxHeadingWords is the maximum word count of heading text; longer
	// runs are treated as prose.
	MaxHeadingWords int

	// Keywords are section names that mark a run as a top-level heading
	// regardless of typography, matched case-insensitively against the
	// start of the run's text.
	Keywords []string
}

// DefaultConfig returns the default detection configuration.
func DefaultConfig() Config {
	return Config{
		TitleSizeRatio:  1.4,
		CenterTolerance: 0.05,
		MinSizeRatio:    1.15,
		Bands: []Band{
			{Ratio: 1.45, Level: model.LevelH1},
			{Ratio: 1.25, Level: model.LevelH2},
		},
		MinHeadingChars: 3,
		MaxHeadingWords: 8,
		Keywords: []string{
			"abstract",
			"introduction",
			"conclusion",
			"references",
			"appendix",
			"acknowledgements",
			"bibliography",
		},
	}
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.TitleSizeRatio <= 1.0 {
		return fmt.Errorf("headings: title size ratio %v must exceed 1.0", c.TitleSizeRatio)
	}
	if c.CenterTolerance < 0 {
		return fmt.Errorf("headings: center tolerance %v must not be negative", c.CenterTolerance)
	}
	if c.MinSizeRatio <= 1.0 {
		return fmt.Errorf("headings: minimum size ratio %v must exceed 1.0", c.MinSizeRatio)
	}
	if c.MinHeadingChars < 1 {
		return fmt.Errorf("headings: minimum heading length %d must be positive", c.MinHeadingChars)
	}
	if c.MaxHeadingWords < 1 {
		return fmt.Errorf("headings: maximum heading words %d must be positive", c.MaxHeadingWords)
	}

	prev := 0.0
	for i, band := range c.Bands {
		if band.Ratio <= 1.0 {
			return fmt.Errorf("headings: band %d ratio %v must exceed 1.0", i, band.Ratio)
		}
		if !band.Level.IsHeading() {
			return fmt.Errorf("headings: band %d level %v is not a heading level", i, band.Level)
		}
		if i > 0 && band.Ratio >= prev {
			return fmt.Errorf("headings: band ratios must be strictly decreasing, got %v after %v", band.Ratio, prev)
		}
		prev = band.Ratio
	}

	return nil
}
