// Package batch derives outlines for many documents concurrently.
//
// Documents are independent, so they fan out across a bounded pool of
// workers. Results come back in input order regardless of completion
// order, and one document's failure never affects another's.
package batch

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/model"
)

// Document is one unit of batch work: a named set of text runs.
type Document struct {
	// Name identifies the document in results, typically a filename.
	Name string

	// Runs are the document's text runs.
	Runs []model.TextRun
}

// Result is the outcome of processing one document.
type Result struct {
	// ID is a unique identifier assigned to this processing result.
	ID string

	// Name echoes the document's name.
	Name string

	// Outline is the derived outline, nil when Err is set.
	Outline *model.Outline

	// Warnings are the non-fatal problems encountered.
	Warnings []outliner.Warning

	// Err is the fatal error for this document, if any.
	Err error
}

// Config holds the tunable parameters for batch processing.
type Config struct {
	// Workers is the maximum number of documents processed at once.
	Workers int
}

// DefaultConfig returns the default batch configuration.
func DefaultConfig() Config {
	return Config{Workers: 4}
}

// Runner processes batches of documents.
type Runner struct {
	config    Config
	configure func(*outliner.Extractor) *outliner.Extractor
}

// NewRunner creates a runner with default configuration.
func NewRunner() *Runner {
	return NewRunnerWithConfig(DefaultConfig())
}

// NewRunnerWithConfig creates a runner with custom configuration.
func NewRunnerWithConfig(config Config) *Runner {
	if config.Workers < 1 {
		config.Workers = 1
	}
	return &Runner{config: config}
}

// Configure sets a function applied to each document's extractor
// before it runs, for batch-wide detection options.
//
// Example:
//
//	runner.Configure(func(e *outliner.Extractor) *outliner.Extractor {
//	    return e.MaxHeadingWords(12)
//	})
func (r *Runner) Configure(fn func(*outliner.Extractor) *outliner.Extractor) *Runner {
	r.configure = fn
	return r
}

// Process derives an outline for every document and returns the
// results in input order. Processing stops early when ctx is
// cancelled; unstarted documents report the context error.
func (r *Runner) Process(ctx context.Context, docs []Document) []Result {
	results := make([]Result, len(docs))

	sem := make(chan struct{}, r.config.Workers)
	var wg sync.WaitGroup

	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			results[i] = Result{ID: uuid.NewString(), Name: doc.Name, Err: err}
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, doc Document) {
			defer wg.Done()
			defer func() { <-sem }()

			results[i] = r.processOne(doc)
		}(i, doc)
	}

	wg.Wait()
	return results
}

func (r *Runner) processOne(doc Document) Result {
	result := Result{
		ID:   uuid.NewString(),
		Name: doc.Name,
	}

	extractor := outliner.FromRuns(doc.Runs)
	if r.configure != nil {
		extractor = r.configure(extractor)
	}

	outline, warnings, err := extractor.Outline()
	result.Outline = outline
	result.Warnings = warnings
	result.Err = err

	return result
}
