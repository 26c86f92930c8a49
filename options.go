package outliner

import (
	"github.com/tsawler/outliner/baseline"
	"github.com/tsawler/outliner/headings"
)

// ExtractOptions holds configuration for outline extraction.
type ExtractOptions struct {
	// Heading and title detection parameters
	headings headings.Config

	// Baseline estimation parameters
	baseline baseline.Config
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		headings: headings.DefaultConfig(),
		baseline: baseline.DefaultConfig(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		headings: o.headings,
		baseline: o.baseline,
	}

	// Deep copy the slices shared through the config structs
	if o.headings.Bands != nil {
		newOpts.headings.Bands = make([]headings.Band, len(o.headings.Bands))
		copy(newOpts.headings.Bands, o.headings.Bands)
	}
	if o.headings.Keywords != nil {
		newOpts.headings.Keywords = make([]string, len(o.headings.Keywords))
		copy(newOpts.headings.Keywords, o.headings.Keywords)
	}

	return newOpts
}
