package model

import "strings"

// Entry is a single outline entry: a classified heading or title with the
// page it appears on.
type Entry struct {
	// Level is "title", "H1", "H2" or "H3" on the wire.
	Level Level `json:"level"`

	// Text is the text of the source run.
	Text string `json:"text"`

	// Page is the 1-based page number of the source run.
	Page int `json:"page"`
}

// Outline is the derived document structure: entries in reading order,
// with at most one title entry, first in the sequence if present.
// An Outline is never mutated after construction.
type Outline struct {
	Entries []Entry
}

// EntryCount returns the number of entries in the outline.
func (o *Outline) EntryCount() int {
	if o == nil {
		return 0
	}
	return len(o.Entries)
}

// Title returns the title entry, or nil if the document has none.
func (o *Outline) Title() *Entry {
	if o == nil || len(o.Entries) == 0 {
		return nil
	}
	if o.Entries[0].Level == LevelTitle {
		return &o.Entries[0]
	}
	return nil
}

// Headings returns the heading entries (H1-H3), excluding any title.
func (o *Outline) Headings() []Entry {
	if o == nil {
		return nil
	}

	var result []Entry
	for _, e := range o.Entries {
		if e.Level.IsHeading() {
			result = append(result, e)
		}
	}
	return result
}

// HeadingsAtLevel returns all heading entries at a specific level.
func (o *Outline) HeadingsAtLevel(level Level) []Entry {
	if o == nil {
		return nil
	}

	var result []Entry
	for _, e := range o.Entries {
		if e.Level == level {
			result = append(result, e)
		}
	}
	return result
}

// TreeNode is an entry with its nested children, produced by Tree.
type TreeNode struct {
	// Entry is the outline entry for this node.
	Entry Entry

	// Children are the entries nested under this one.
	Children []TreeNode

	// Depth is the nesting depth (0 = top level).
	Depth int
}

// Tree returns a hierarchical view of the outline. Headings nest under
// the closest preceding heading with a shallower level; the title, if
// present, is a top-level node of its own.
func (o *Outline) Tree() []TreeNode {
	if o == nil || len(o.Entries) == 0 {
		return nil
	}

	var tree []TreeNode
	var stack []*TreeNode

	for _, e := range o.Entries {
		node := TreeNode{
			Entry: e,
			Depth: e.Level.Depth(),
		}

		if e.Level == LevelTitle {
			// The title never adopts children; a document's H1s are
			// siblings of the title, not descendants.
			tree = append(tree, node)
			continue
		}

		for len(stack) > 0 && stack[len(stack)-1].Entry.Level >= e.Level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			tree = append(tree, node)
			stack = append(stack, &tree[len(tree)-1])
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
			stack = append(stack, &parent.Children[len(parent.Children)-1])
		}
	}

	return tree
}

// TableOfContents returns a plain-text table of contents with two-space
// indentation per heading level.
func (o *Outline) TableOfContents() string {
	if o == nil || len(o.Entries) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, e := range o.Entries {
		indent := e.Level.Depth() - 1
		if indent < 0 {
			indent = 0
		}
		sb.WriteString(strings.Repeat("  ", indent))
		sb.WriteString(e.Text)
		sb.WriteString("\n")
	}

	return sb.String()
}

// MarkdownTOC returns a markdown-formatted table of contents.
func (o *Outline) MarkdownTOC() string {
	if o == nil || len(o.Entries) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, e := range o.Entries {
		indent := e.Level.Depth() - 1
		if indent < 0 {
			indent = 0
		}
		sb.WriteString(strings.Repeat("  ", indent))
		sb.WriteString("- ")
		sb.WriteString(e.Text)
		sb.WriteString("\n")
	}

	return sb.String()
}
