// Package htmldoc derives outlines from HTML documents.
//
// HTML declares its structure outright, so no typographic heuristics
// are needed: the document title comes from the <title> element and
// the headings from h1 through h3. Everything is reported as page 1
// because HTML has no page geometry.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/outliner/model"
)

var headingLevels = map[string]model.Level{
	"h1": model.LevelH1,
	"h2": model.LevelH2,
	"h3": model.LevelH3,
}

// Parse reads an HTML document and returns its outline.
func Parse(r io.Reader) (*model.Outline, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmldoc: parsing document: %w", err)
	}

	var entries []model.Entry
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "title":
				if text := nodeText(n); text != "" && len(entries) == 0 {
					entries = append(entries, model.Entry{
						Level: model.LevelTitle,
						Text:  text,
						Page:  1,
					})
				}
				return
			case headingLevels[n.Data] != model.LevelNone:
				if text := nodeText(n); text != "" {
					entries = append(entries, model.Entry{
						Level: headingLevels[n.Data],
						Text:  text,
						Page:  1,
					})
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return &model.Outline{Entries: entries}, nil
}

// ParseFile reads an HTML file and returns its outline.
func ParseFile(path string) (*model.Outline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("htmldoc: opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// nodeText collects the concatenated text content of a node's subtree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)

	return strings.Join(strings.Fields(sb.String()), " ")
}
