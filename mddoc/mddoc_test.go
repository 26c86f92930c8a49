package mddoc

import (
	"strings"
	"testing"

	"github.com/tsawler/outliner/model"
)

const sampleMarkdown = `# Field Notes

Some introductory prose.

## Observations

### Day One

#### Too deep to appear

## Conclusions

Setext headings also count.

Alternate Heading
=================
`

func TestParse(t *testing.T) {
	outline, err := Parse(strings.NewReader(sampleMarkdown))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []struct {
		level model.Level
		text  string
	}{
		{model.LevelH1, "Field Notes"},
		{model.LevelH2, "Observations"},
		{model.LevelH3, "Day One"},
		{model.LevelH2, "Conclusions"},
		{model.LevelH1, "Alternate Heading"},
	}

	entries := outline.Entries
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for i, w := range want {
		if entries[i].Level != w.level || entries[i].Text != w.text {
			t.Errorf("entry %d = %v %q, want %v %q",
				i, entries[i].Level, entries[i].Text, w.level, w.text)
		}
		if entries[i].Page != 1 {
			t.Errorf("entry %d page = %d, want 1", i, entries[i].Page)
		}
	}
}

func TestParseInlineFormattingStripped(t *testing.T) {
	outline, err := ParseBytes([]byte("## Heading with *emphasis* and `code`\n"))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}

	entries := outline.Entries
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Text != "Heading with emphasis and code" {
		t.Errorf("text = %q", entries[0].Text)
	}
}

func TestParseNoHeadings(t *testing.T) {
	outline, err := ParseBytes([]byte("Just a paragraph of text.\n\nAnd another one.\n"))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if outline.EntryCount() != 0 {
		t.Errorf("EntryCount() = %d, want 0", outline.EntryCount())
	}
}

func TestParseTreeNesting(t *testing.T) {
	outline, err := ParseBytes([]byte("# Top\n\n## Nested\n"))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}

	tree := outline.Tree()
	if len(tree) != 1 {
		t.Fatalf("got %d roots, want 1", len(tree))
	}
	if len(tree[0].Children) != 1 || tree[0].Children[0].Entry.Text != "Nested" {
		t.Errorf("tree = %+v", tree)
	}
}
