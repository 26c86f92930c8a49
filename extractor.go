package outliner

import (
	"fmt"

	"github.com/tsawler/outliner/baseline"
	"github.com/tsawler/outliner/headings"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/pdfdoc"
)

// Extractor provides a fluent interface for deriving outlines from
// documents. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method
// chaining.
type Extractor struct {
	// Source
	filename string
	runs     []model.TextRun

	// Reader lifecycle
	reader       *pdfdoc.Reader
	ownsReader   bool
	readerOpened bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of
// options. This ensures immutability - each chain method returns a new
// instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		runs:         e.runs,
		reader:       e.reader,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.ownsReader = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// TitleSizeRatio sets the minimum ratio of a title candidate's font
// size to the body font size.
//
// Example:
//
//	outline, _, err := outliner.Open("doc.pdf").TitleSizeRatio(1.5).Outline()
func (e *Extractor) TitleSizeRatio(ratio float64) *Extractor {
	newExt := e.clone()
	newExt.options.headings.TitleSizeRatio = ratio
	return newExt
}

// CenterTolerance sets how far a title candidate's center may sit from
// the page center, as a fraction of page width.
func (e *Extractor) CenterTolerance(tolerance float64) *Extractor {
	newExt := e.clone()
	newExt.options.headings.CenterTolerance = tolerance
	return newExt
}

// MinHeadingChars sets the minimum trimmed length of heading text.
func (e *Extractor) MinHeadingChars(chars int) *Extractor {
	newExt := e.clone()
	newExt.options.headings.MinHeadingChars = chars
	return newExt
}

// MaxHeadingWords sets the maximum word count of heading text.
func (e *Extractor) MaxHeadingWords(words int) *Extractor {
	newExt := e.clone()
	newExt.options.headings.MaxHeadingWords = words
	return newExt
}

// Bands replaces the size-ratio bands used to assign heading levels.
// Ratios must be strictly decreasing.
func (e *Extractor) Bands(bands ...headings.Band) *Extractor {
	newExt := e.clone()
	newExt.options.headings.Bands = append([]headings.Band(nil), bands...)
	return newExt
}

// Keywords replaces the section keywords recognized by the pattern
// rule.
func (e *Extractor) Keywords(keywords ...string) *Extractor {
	newExt := e.clone()
	newExt.options.headings.Keywords = append([]string(nil), keywords...)
	return newExt
}

// WithConfig replaces the full heading detection configuration.
func (e *Extractor) WithConfig(config headings.Config) *Extractor {
	newExt := e.clone()
	newExt.options.headings = config
	return newExt
}

// WithBaselineConfig replaces the baseline estimation configuration.
func (e *Extractor) WithBaselineConfig(config baseline.Config) *Extractor {
	newExt := e.clone()
	newExt.options.baseline = config
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Outline runs the full pipeline and returns the document outline:
// the title, if one was found, followed by the headings in reading
// order. The extractor is closed afterward if it owns its reader.
func (e *Extractor) Outline() (*model.Outline, []Warning, error) {
	result, err := e.run()
	if err != nil {
		return nil, nil, err
	}
	return result.outline, result.warnings, nil
}

// Title returns just the title entry, or nil when the document has
// none.
func (e *Extractor) Title() (*model.Entry, []Warning, error) {
	result, err := e.run()
	if err != nil {
		return nil, nil, err
	}
	return result.outline.Title(), result.warnings, nil
}

// Headings returns just the heading entries, excluding any title.
func (e *Extractor) Headings() ([]model.Entry, []Warning, error) {
	result, err := e.run()
	if err != nil {
		return nil, nil, err
	}
	return result.outline.Headings(), result.warnings, nil
}

// Candidates returns the classified heading candidates with the
// signals that fired for each, for callers inspecting the
// classification itself.
func (e *Extractor) Candidates() ([]headings.Candidate, []Warning, error) {
	result, err := e.run()
	if err != nil {
		return nil, nil, err
	}
	return result.candidates, result.warnings, nil
}

// Baseline estimates the document's body font size without running
// heading classification.
func (e *Extractor) Baseline() (baseline.Profile, error) {
	if e.err != nil {
		return baseline.Profile{}, e.err
	}
	defer e.Close()

	runs, err := e.sourceRuns()
	if err != nil {
		return baseline.Profile{}, err
	}
	return baseline.NewAnalyzerWithConfig(e.options.baseline).Analyze(runs)
}

// ============================================================================
// Pipeline
// ============================================================================

type extractResult struct {
	outline    *model.Outline
	candidates []headings.Candidate
	warnings   []Warning
}

func (e *Extractor) run() (extractResult, error) {
	if e.err != nil {
		return extractResult{}, e.err
	}
	defer e.Close()

	if err := e.options.headings.Validate(); err != nil {
		return extractResult{}, err
	}

	runs, err := e.sourceRuns()
	if err != nil {
		return extractResult{}, err
	}

	var warnings []Warning

	profile, err := baseline.NewAnalyzerWithConfig(e.options.baseline).Analyze(runs)
	if err != nil {
		return extractResult{}, err
	}
	if profile.RunCount == 0 {
		warnings = append(warnings, Warning{
			Code:    WarnDefaultBaseline,
			Message: fmt.Sprintf("no usable text; assuming %.1fpt body font", profile.BodyFontSize),
		})
	}

	titleRun, titleIdx, hasTitle := headings.NewTitleDetectorWithConfig(e.options.headings).Detect(runs, profile)
	if !hasTitle {
		warnings = append(warnings, Warning{
			Code:    WarnNoTitle,
			Message: "no centered prominent run found on the first page",
		})
	}

	classified, err := headings.NewClassifierWithConfig(e.options.headings).Classify(runs, profile)
	if err != nil {
		return extractResult{}, err
	}

	for _, skipped := range classified.Skipped {
		warnings = append(warnings, Warning{
			Code:    WarnSkippedRun,
			Message: fmt.Sprintf("run %d: %s", skipped.Index, skipped.Reason),
		})
	}

	var entries []model.Entry
	if hasTitle {
		entries = append(entries, model.Entry{
			Level: model.LevelTitle,
			Text:  titleRun.Text,
			Page:  titleRun.Page,
		})
	}

	candidates := make([]headings.Candidate, 0, len(classified.Candidates))
	for _, cand := range classified.Candidates {
		// The title run never doubles as a heading.
		if hasTitle && cand.Index == titleIdx {
			continue
		}
		candidates = append(candidates, cand)
		entries = append(entries, model.Entry{
			Level: cand.Level,
			Text:  cand.Run.Text,
			Page:  cand.Run.Page,
		})
	}

	return extractResult{
		outline:    &model.Outline{Entries: entries},
		candidates: candidates,
		warnings:   warnings,
	}, nil
}

// sourceRuns resolves the extractor's input to a slice of text runs,
// opening the PDF reader lazily when a filename was given.
func (e *Extractor) sourceRuns() ([]model.TextRun, error) {
	if e.runs != nil {
		return e.runs, nil
	}

	if !e.readerOpened {
		if e.filename == "" {
			return nil, fmt.Errorf("no input specified")
		}
		r, err := pdfdoc.Open(e.filename)
		if err != nil {
			return nil, err
		}
		e.reader = r
		e.ownsReader = true
		e.readerOpened = true
	}

	return e.reader.Runs()
}
