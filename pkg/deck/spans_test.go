package deck

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitSpans(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "plain only",
			input: "no markers here",
			want:  []Span{{Text: "no markers here"}},
		},
		{
			name:  "single bold",
			input: "**bold**",
			want:  []Span{{Text: "bold", Bold: true}},
		},
		{
			name:  "bold prefix",
			input: "**Pipeline**: four stages",
			want: []Span{
				{Text: "Pipeline", Bold: true},
				{Text: ": four stages"},
			},
		},
		{
			name:  "bold suffix",
			input: "stages: **four**",
			want: []Span{
				{Text: "stages: "},
				{Text: "four", Bold: true},
			},
		},
		{
			name:  "bold in the middle",
			input: "a **b** c",
			want: []Span{
				{Text: "a "},
				{Text: "b", Bold: true},
				{Text: " c"},
			},
		},
		{
			name:  "adjacent bolds keep separating space",
			input: "**a** **b**",
			want: []Span{
				{Text: "a", Bold: true},
				{Text: " "},
				{Text: "b", Bold: true},
			},
		},
		{
			name:  "multiple bolds",
			input: "**a**b**c**",
			want: []Span{
				{Text: "a", Bold: true},
				{Text: "b"},
				{Text: "c", Bold: true},
			},
		},
		{
			name:  "unpaired marker stays literal",
			input: "**unclosed bold",
			want:  []Span{{Text: "**unclosed bold"}},
		},
		{
			name:  "odd marker count leaves tail literal",
			input: "**a** and **tail",
			want: []Span{
				{Text: "a", Bold: true},
				{Text: " and **tail"},
			},
		},
		{
			name:  "empty bold dropped",
			input: "a****b",
			want: []Span{
				{Text: "a"},
				{Text: "b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSpans(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSpans(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitSpansRoundTrip(t *testing.T) {
	// For balanced input, concatenating run texts reproduces the source with
	// paired markers removed.
	inputs := []string{
		"plain",
		"**bold**",
		"**a**: rest",
		"lead **mid** tail",
		"**a** **b** **c**",
		"a****b",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			var b strings.Builder
			for _, sp := range SplitSpans(input) {
				b.WriteString(sp.Text)
			}
			want := strings.ReplaceAll(input, "**", "")
			if got := b.String(); got != want {
				t.Errorf("round trip = %q, want %q", got, want)
			}
		})
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"plain", "plain"},
		{"**Architecture** Overview", "Architecture Overview"},
		{"**unclosed", "**unclosed"},
		{"**a**b**c**", "abc"},
	}

	for _, tt := range tests {
		if got := PlainText(tt.input); got != tt.want {
			t.Errorf("PlainText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
