package headings

import (
	"errors"
	"sort"

	"github.com/tsawler/outliner/baseline"
	"github.com/tsawler/outliner/model"
)

// Signal names recorded on candidates, for callers that want to know
// why a run was classified.
const (
	SignalSizeWeight = "size-weight"
	SignalBold       = "bold"
	SignalPattern    = "pattern"
	SignalKeyword    = "keyword"
)

// Candidate is a run that passed the noise filter and earned a heading
// level, together with the signals that fired for it.
type Candidate struct {
	// Run is the source text run.
	Run model.TextRun

	// Index is the run's position in the original input slice.
	Index int

	// Level is the assigned heading level.
	Level model.Level

	// Signals names the rules that contributed to the classification.
	Signals []string
}

// SkippedRun records a run dropped for missing geometry or font
// metadata. Skipped runs never abort classification of the rest.
type SkippedRun struct {
	Index  int
	Reason string
}

// Result holds the outcome of classifying a document's runs.
type Result struct {
	// Candidates are the classified headings in reading order.
	Candidates []Candidate

	// Skipped records invalid runs that were excluded.
	Skipped []SkippedRun
}

// Classifier assigns heading levels to text runs.
type Classifier struct {
	config Config
}

// NewClassifier creates a classifier with default configuration.
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultConfig())
}

// NewClassifierWithConfig creates a classifier with custom
// configuration. Invalid configurations fall back to the defaults.
func NewClassifierWithConfig(config Config) *Classifier {
	if config.Validate() != nil {
		config = DefaultConfig()
	}
	return &Classifier{config: config}
}

// ClassifyRun judges a single run against the baseline profile. It
// returns the candidate and true when the run earns a heading level.
// The decision depends only on the run and the profile, never on other
// runs, so classifying the same run twice always agrees.
func (c *Classifier) ClassifyRun(run model.TextRun, profile baseline.Profile) (Candidate, bool) {
	text := normalizeText(run.Text)
	if !c.passesNoiseFilter(text) {
		return Candidate{}, false
	}

	body := profile.BodyFontSize
	if body <= 0 {
		body = baseline.DefaultBodyFontSize
	}
	ratio := run.FontSize / body
	bold := run.IsBold()

	markerDepth, hasMarker := matchMarker(text)
	hasKeyword := c.matchKeyword(text)

	sizeQualified := ratio > 1.0 && (bold || ratio >= c.config.MinSizeRatio)

	if sizeQualified {
		cand := Candidate{Run: run, Signals: []string{SignalSizeWeight}}
		if bold {
			cand.Signals = append(cand.Signals, SignalBold)
		}

		var bandHit model.Level
		for _, band := range c.config.Bands {
			if ratio >= band.Ratio {
				bandHit = band.Level
				break
			}
		}

		var patternHit model.Level
		switch {
		case hasMarker:
			patternHit = markerLevel(markerDepth)
			cand.Signals = append(cand.Signals, SignalPattern)
		case hasKeyword:
			patternHit = model.LevelH1
			cand.Signals = append(cand.Signals, SignalKeyword)
		}

		// When both typography and a structural marker speak, the more
		// prominent of the two levels wins: a 2x-body run numbered
		// "1.1.1" reads as a chapter opener, and a barely-enlarged
		// "1." chapter number still opens a chapter.
		switch {
		case bandHit != model.LevelNone && patternHit != model.LevelNone:
			cand.Level = bandHit
			if patternHit < bandHit {
				cand.Level = patternHit
			}
		case bandHit != model.LevelNone:
			cand.Level = bandHit
		case patternHit != model.LevelNone:
			cand.Level = patternHit
		default:
			cand.Level = model.LevelH3
		}
		return cand, true
	}

	// Typography alone didn't qualify the run, but structural markers
	// still do: numbered and keyword sections are headings even when a
	// generator sets them at body size.
	if hasMarker {
		return Candidate{
			Run:     run,
			Level:   markerLevel(markerDepth),
			Signals: []string{SignalPattern},
		}, true
	}
	if hasKeyword {
		return Candidate{
			Run:     run,
			Level:   model.LevelH1,
			Signals: []string{SignalKeyword},
		}, true
	}

	return Candidate{}, false
}

// Classify judges every run and returns the candidates in reading
// order: ascending page, then top-to-bottom, then left-to-right.
// Invalid runs are recorded in the result and skipped. The input slice
// is never modified.
func (c *Classifier) Classify(runs []model.TextRun, profile baseline.Profile) (Result, error) {
	if len(runs) == 0 {
		return Result{}, errors.New("headings: no runs to classify")
	}

	var result Result

	indexed := make([]int, 0, len(runs))
	for i, run := range runs {
		if err := run.Validate(i); err != nil {
			var ire *model.InvalidRunError
			reason := err.Error()
			if errors.As(err, &ire) {
				reason = ire.Reason
			}
			result.Skipped = append(result.Skipped, SkippedRun{Index: i, Reason: reason})
			continue
		}
		indexed = append(indexed, i)
	}

	sort.SliceStable(indexed, func(a, b int) bool {
		ra, rb := runs[indexed[a]], runs[indexed[b]]
		if ra.Page != rb.Page {
			return ra.Page < rb.Page
		}
		if ra.BBox.Top() != rb.BBox.Top() {
			return ra.BBox.Top() > rb.BBox.Top()
		}
		return ra.BBox.X < rb.BBox.X
	})

	for _, i := range indexed {
		cand, ok := c.ClassifyRun(runs[i], profile)
		if !ok {
			continue
		}
		cand.Index = i
		result.Candidates = append(result.Candidates, cand)
	}

	return result, nil
}
