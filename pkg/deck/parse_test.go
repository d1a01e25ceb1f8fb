package deck

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseWorkedExample(t *testing.T) {
	src := "## Slide 2: **Architecture** Overview\n\n- **Pipeline**: four stages\n- Simple stage\n---\n## Slide 3: CFG Generation\n\nSome text."

	d := Parse([]byte(src))

	if len(d.Slides) != 2 {
		t.Fatalf("len(Slides) = %d, want 2", len(d.Slides))
	}

	s2 := d.Slides[0]
	if s2.Number != 2 {
		t.Errorf("slide[0].Number = %d, want 2", s2.Number)
	}
	if s2.Title != "**Architecture** Overview" {
		t.Errorf("slide[0].Title = %q, want %q", s2.Title, "**Architecture** Overview")
	}
	wantContent := []ContentItem{
		{Kind: KindBullet, Text: "**Pipeline**: four stages"},
		{Kind: KindBullet, Text: "Simple stage"},
	}
	if !reflect.DeepEqual(s2.Content, wantContent) {
		t.Errorf("slide[0].Content = %+v, want %+v", s2.Content, wantContent)
	}

	// First bullet must split into an emphasized run followed by plain text.
	spans := SplitSpans(s2.Content[0].Text)
	wantSpans := []Span{
		{Text: "Pipeline", Bold: true},
		{Text: ": four stages"},
	}
	if !reflect.DeepEqual(spans, wantSpans) {
		t.Errorf("SplitSpans(bullet) = %+v, want %+v", spans, wantSpans)
	}

	s3 := d.Slides[1]
	if s3.Number != 3 {
		t.Errorf("slide[1].Number = %d, want 3", s3.Number)
	}
	if s3.Title != "CFG Generation" {
		t.Errorf("slide[1].Title = %q, want %q", s3.Title, "CFG Generation")
	}
	if want := []ContentItem{{Kind: KindText, Text: "Some text."}}; !reflect.DeepEqual(s3.Content, want) {
		t.Errorf("slide[1].Content = %+v, want %+v", s3.Content, want)
	}

	if len(d.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", d.Warnings)
	}
}

func TestParseClassification(t *testing.T) {
	// One line per rule of the tokenization table.
	src := strings.Join([]string{
		"## Slide 1: Kinds",
		"",
		"### **Stage One**",
		"- **bold** bullet",
		"* **bold** star bullet",
		"- plain bullet",
		"* plain star bullet",
		"```go",
		"fmt.Println(\"ignored\")",
		"```",
		"#### sub heading dropped",
		"free standing line",
	}, "\n")

	d := Parse([]byte(src))

	if len(d.Slides) != 1 {
		t.Fatalf("len(Slides) = %d, want 1", len(d.Slides))
	}
	want := []ContentItem{
		{Kind: KindSection, Text: "Stage One"},
		{Kind: KindBullet, Text: "**bold** bullet"},
		{Kind: KindBullet, Text: "**bold** star bullet"},
		{Kind: KindBullet, Text: "plain bullet"},
		{Kind: KindBullet, Text: "plain star bullet"},
		{Kind: KindText, Text: "free standing line"},
	}
	if got := d.Slides[0].Content; !reflect.DeepEqual(got, want) {
		t.Errorf("Content = %+v, want %+v", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		numbers    []int
		items      [][]ContentItem
		warnings   int
		titleCheck map[int]string
	}{
		{
			name:    "empty document",
			src:     "",
			numbers: nil,
		},
		{
			name:    "no headings",
			src:     "just some markdown\n\n- a list\n",
			numbers: nil,
		},
		{
			name:    "content before first heading ignored",
			src:     "intro prose\n\n## Slide 1: Start\n\nbody line\n",
			numbers: []int{1},
			items:   [][]ContentItem{{{Kind: KindText, Text: "body line"}}},
		},
		{
			name:    "content after separator ignored",
			src:     "## Slide 1: Start\n\nkept\n---\ndropped between regions\n## Slide 2: Next\n\nalso kept\n",
			numbers: []int{1, 2},
			items: [][]ContentItem{
				{{Kind: KindText, Text: "kept"}},
				{{Kind: KindText, Text: "also kept"}},
			},
		},
		{
			name:    "source order preserved over numbering",
			src:     "## Slide 5: E\n\na\n## Slide 2: B\n\nb\n## Slide 9: I\n\nc\n",
			numbers: []int{5, 2, 9},
		},
		{
			name:    "duplicate numbers kept",
			src:     "## Slide 4: First\n\nx\n## Slide 4: Second\n\ny\n",
			numbers: []int{4, 4},
		},
		{
			name:    "heading without blank line",
			src:     "## Slide 1: Tight\nfirst body line\n",
			numbers: []int{1},
			items:   [][]ContentItem{{{Kind: KindText, Text: "first body line"}}},
		},
		{
			name:    "four dashes is body text not separator",
			src:     "## Slide 1: Dashes\n\n----\nstill here\n",
			numbers: []int{1},
			items: [][]ContentItem{{
				{Kind: KindText, Text: "----"},
				{Kind: KindText, Text: "still here"},
			}},
		},
		{
			name:    "bare dash is text",
			src:     "## Slide 1: Dash\n\n-\n",
			numbers: []int{1},
			items:   [][]ContentItem{{{Kind: KindText, Text: "-"}}},
		},
		{
			name:    "fenced block fully discarded",
			src:     "## Slide 1: Code\n\nbefore\n```\n- looks like a bullet\n### **looks like a section**\n```\nafter\n",
			numbers: []int{1},
			items: [][]ContentItem{{
				{Kind: KindText, Text: "before"},
				{Kind: KindText, Text: "after"},
			}},
		},
		{
			name:     "unterminated fence discards to end",
			src:      "## Slide 1: Code\n\nkept\n```\nnever closed\n",
			numbers:  []int{1},
			items:    [][]ContentItem{{{Kind: KindText, Text: "kept"}}},
			warnings: 1,
		},
		{
			name:     "heading closes an open fence",
			src:      "## Slide 1: Code\n\n```\nstill open\n## Slide 2: Rescue\n\nvisible\n",
			numbers:  []int{1, 2},
			items:    [][]ContentItem{nil, {{Kind: KindText, Text: "visible"}}},
			warnings: 1,
		},
		{
			name:     "slide number overflow warns and skips",
			src:      "## Slide 99999999999999999999: Too Big\n\nlost\n## Slide 1: Fine\n\nok\n",
			numbers:  []int{1},
			warnings: 1,
		},
		{
			name:       "indented heading and title trimmed",
			src:        "   ## Slide 7: Padded Title   \n\nbody\n",
			numbers:    []int{7},
			titleCheck: map[int]string{0: "Padded Title"},
		},
		{
			name:       "emphasis markers kept in title",
			src:        "## Slide 1: **Bold** title\n\nx\n",
			numbers:    []int{1},
			titleCheck: map[int]string{0: "**Bold** title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Parse([]byte(tt.src))

			var numbers []int
			for _, s := range d.Slides {
				numbers = append(numbers, s.Number)
			}
			if !reflect.DeepEqual(numbers, tt.numbers) {
				t.Errorf("numbers = %v, want %v", numbers, tt.numbers)
			}

			if tt.items != nil {
				for i, want := range tt.items {
					if i >= len(d.Slides) {
						t.Fatalf("missing slide %d", i)
					}
					if got := d.Slides[i].Content; !reflect.DeepEqual(got, want) {
						t.Errorf("slide[%d].Content = %+v, want %+v", i, got, want)
					}
				}
			}

			for idx, want := range tt.titleCheck {
				if got := d.Slides[idx].Title; got != want {
					t.Errorf("slide[%d].Title = %q, want %q", idx, got, want)
				}
			}

			if len(d.Warnings) != tt.warnings {
				t.Errorf("len(Warnings) = %d (%v), want %d", len(d.Warnings), d.Warnings, tt.warnings)
			}
		})
	}
}

func TestParseIdempotence(t *testing.T) {
	src := []byte("## Slide 1: One\n\n- a\n- b\n---\n## Slide 2: Two\n\n### **S**\ntext\n")

	first := Parse(src)
	second := Parse(src)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Parse is not idempotent:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestParseFrontmatter(t *testing.T) {
	src := strings.Join([]string{
		"---",
		"title: Dataflow Deck",
		"author: Jane Doe",
		"date: 2025-11-02",
		"subject: static analysis",
		"---",
		"## Slide 1: Intro",
		"",
		"hello",
	}, "\n")

	d := Parse([]byte(src))

	want := Meta{Title: "Dataflow Deck", Author: "Jane Doe", Date: "2025-11-02", Subject: "static analysis"}
	if d.Meta != want {
		t.Errorf("Meta = %+v, want %+v", d.Meta, want)
	}
	if len(d.Slides) != 1 || d.Slides[0].Number != 1 {
		t.Fatalf("Slides = %+v, want one slide numbered 1", d.Slides)
	}
	if got := d.DisplayTitle(); got != "Dataflow Deck" {
		t.Errorf("DisplayTitle() = %q, want %q", got, "Dataflow Deck")
	}
}

func TestParseFrontmatterWarningLines(t *testing.T) {
	// The unterminated fence sits on source line 8; frontmatter consumption
	// must not shift warning line numbers.
	src := strings.Join([]string{
		"---",
		"title: Lines",
		"---",
		"## Slide 1: A",
		"",
		"x",
		"",
		"```",
		"open",
	}, "\n")

	d := Parse([]byte(src))

	if len(d.Warnings) != 1 {
		t.Fatalf("Warnings = %v, want exactly one", d.Warnings)
	}
	if d.Warnings[0].Line != 8 {
		t.Errorf("Warning.Line = %d, want 8", d.Warnings[0].Line)
	}
}

func TestParseMalformedFrontmatter(t *testing.T) {
	src := "---\ntitle: [\n---\n## Slide 1: Still Works\n\nbody\n"

	d := Parse([]byte(src))

	if len(d.Warnings) == 0 {
		t.Error("want a warning for malformed frontmatter")
	}
	if !d.Meta.IsZero() {
		t.Errorf("Meta = %+v, want zero", d.Meta)
	}
	if len(d.Slides) != 1 || d.Slides[0].Number != 1 {
		t.Fatalf("Slides = %+v, want one slide numbered 1", d.Slides)
	}
}

func TestParseFile(t *testing.T) {
	if _, err := ParseFile("testdata/does-not-exist.md"); err == nil {
		t.Error("ParseFile on a missing file: want error, got nil")
	}
}

func TestDeckLookups(t *testing.T) {
	d := Parse([]byte("## Slide 3: A\n\nx\ny\n## Slide 3: Dup\n\nz\n## Slide 8: B\n\nw\n"))

	if s, ok := d.Slide(3); !ok || s.Title != "A" {
		t.Errorf("Slide(3) = %+v, %v; want first occurrence titled A", s, ok)
	}
	if _, ok := d.Slide(99); ok {
		t.Error("Slide(99) = ok, want missing")
	}
	if got := d.ItemCount(); got != 4 {
		t.Errorf("ItemCount() = %d, want 4", got)
	}
}
