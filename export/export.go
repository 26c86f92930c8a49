// Package export serializes outlines to JSON, JSON Lines and CSV.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/outliner/model"
)

// Format defines the available export formats
type Format int

const (
	// FormatJSON exports a single JSON document with the title and the
	// outline entries
	FormatJSON Format = iota
	// FormatJSONL exports one JSON object per outline entry
	FormatJSONL
	// FormatCSV exports as comma-separated values
	FormatCSV
)

// String returns a human-readable representation of the export format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatJSONL:
		return "jsonl"
	case FormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (f Format) FileExtension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatJSONL:
		return ".jsonl"
	case FormatCSV:
		return ".csv"
	default:
		return ".txt"
	}
}

// Config holds configuration options for export
type Config struct {
	// Format specifies the export format
	Format Format

	// PrettyPrint enables indented output for JSON
	PrettyPrint bool

	// CSVDelimiter specifies the delimiter for CSV export (default: comma)
	CSVDelimiter rune

	// IncludeHeader includes a header row in CSV export
	IncludeHeader bool
}

// DefaultConfig returns sensible defaults for export configuration
func DefaultConfig() Config {
	return Config{
		Format:        FormatJSON,
		PrettyPrint:   false,
		CSVDelimiter:  ',',
		IncludeHeader: true,
	}
}

// JSONLConfig returns config for JSON Lines export
func JSONLConfig() Config {
	config := DefaultConfig()
	config.Format = FormatJSONL
	return config
}

// CSVConfig returns config for CSV export
func CSVConfig() Config {
	config := DefaultConfig()
	config.Format = FormatCSV
	return config
}

// Exporter serializes outlines to the configured format
type Exporter struct {
	config Config
}

// NewExporter creates a new exporter with default configuration
func NewExporter() *Exporter {
	return &Exporter{
		config: DefaultConfig(),
	}
}

// NewExporterWithConfig creates an exporter with custom configuration
func NewExporterWithConfig(config Config) *Exporter {
	if config.CSVDelimiter == 0 {
		config.CSVDelimiter = ','
	}
	return &Exporter{
		config: config,
	}
}

// document is the JSON shape of an exported outline: the title as a
// plain string and the heading entries as an array. A document with no
// title exports an empty title string.
type document struct {
	Title   string        `json:"title"`
	Outline []model.Entry `json:"outline"`
}

func buildDocument(o *model.Outline) document {
	doc := document{Outline: []model.Entry{}}

	if title := o.Title(); title != nil {
		doc.Title = title.Text
	}
	doc.Outline = append(doc.Outline, o.Headings()...)

	return doc
}

// Export writes the outline to w in the configured format. A nil
// outline exports as empty.
func (e *Exporter) Export(o *model.Outline, w io.Writer) error {
	if o == nil {
		o = &model.Outline{}
	}
	switch e.config.Format {
	case FormatJSON:
		return e.exportJSON(o, w)
	case FormatJSONL:
		return e.exportJSONL(o, w)
	case FormatCSV:
		return e.exportCSV(o, w)
	default:
		return fmt.Errorf("unsupported export format: %v", e.config.Format)
	}
}

// ExportToFile writes the outline to a file
func (e *Exporter) ExportToFile(o *model.Outline, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	return e.Export(o, f)
}

// ExportToString renders the outline to a string
func (e *Exporter) ExportToString(o *model.Outline) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(o, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (e *Exporter) exportJSON(o *model.Outline, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if e.config.PrettyPrint {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(buildDocument(o))
}

func (e *Exporter) exportJSONL(o *model.Outline, w io.Writer) error {
	encoder := json.NewEncoder(w)

	for i, entry := range o.Entries {
		if err := encoder.Encode(entry); err != nil {
			return fmt.Errorf("encoding entry %d: %w", i, err)
		}
	}

	return nil
}

func (e *Exporter) exportCSV(o *model.Outline, w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = e.config.CSVDelimiter

	if e.config.IncludeHeader {
		if err := csvWriter.Write([]string{"level", "text", "page"}); err != nil {
			return fmt.Errorf("writing CSV header: %w", err)
		}
	}

	for i, entry := range o.Entries {
		row := []string{entry.Level.String(), entry.Text, fmt.Sprintf("%d", entry.Page)}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
