// Package mddoc derives outlines from Markdown documents.
//
// Markdown headings carry their levels explicitly, so the outline is
// read straight off the parsed AST: levels one through three map to
// H1 through H3 and deeper headings are ignored. Markdown has no page
// geometry, so every entry reports page 1.
package mddoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/tsawler/outliner/model"
)

// Parse reads a Markdown document and returns its outline.
func Parse(r io.Reader) (*model.Outline, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("mddoc: reading document: %w", err)
	}
	return ParseBytes(src)
}

// ParseBytes parses Markdown source and returns its outline.
func ParseBytes(src []byte) (*model.Outline, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var entries []model.Entry
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level > 3 {
			continue
		}

		title := strings.TrimSpace(string(heading.Text(src)))
		if title == "" {
			continue
		}

		var level model.Level
		switch heading.Level {
		case 1:
			level = model.LevelH1
		case 2:
			level = model.LevelH2
		default:
			level = model.LevelH3
		}

		entries = append(entries, model.Entry{
			Level: level,
			Text:  title,
			Page:  1,
		})
	}

	return &model.Outline{Entries: entries}, nil
}

// ParseFile reads a Markdown file and returns its outline.
func ParseFile(path string) (*model.Outline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mddoc: opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
