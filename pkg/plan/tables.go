package plan

import (
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/errors"
)

// Tables is the injected planner configuration: which slide numbers get a
// diagram, which are screenshot candidates, the title keywords that gate the
// screenshot split, and the canned placeholder instruction strings.
//
// Keywords are stored lower-case so mixed-case entries still match
// lower-cased titles. Construct with [DefaultTables] or [LoadTables], both
// of which normalize; a zero Tables plans every slide as full-text.
type Tables struct {
	DiagramSlides    map[int]bool
	ScreenshotSlides map[int]bool
	Keywords         []string

	DiagramInstructions    map[int]string
	ScreenshotInstructions map[int]string

	// Fallback instructions for slide numbers with no specific entry.
	// The token {title} is replaced with the slide title on lookup.
	DiagramFallback    string
	ScreenshotFallback string
}

// Numbers builds a slide-number set from a list of numbers.
func Numbers(ns ...int) map[int]bool {
	set := make(map[int]bool, len(ns))
	for _, n := range ns {
		set[n] = true
	}
	return set
}

// DefaultTables returns the stock planner configuration.
func DefaultTables() Tables {
	return Tables{
		DiagramSlides:    Numbers(2, 7, 34, 35),
		ScreenshotSlides: Numbers(3, 32, 33, 37),
		Keywords: normalizeKeywords([]string{
			"visualization",
			"CFG",
			"graph",
			"interconnected",
			"call graph",
			"taint analysis",
			"visualizer",
		}),
		DiagramInstructions: map[int]string{
			2:  "[ARCHITECTURE DIAGRAM PLACEHOLDER]\n\nAdd diagram showing:\n- Analysis Pipeline (4 stages)\n- Key Components (5 components)\n- Data flow between components\n- CFG → Analysis → Visualization flow",
			7:  "[ANALYSIS PIPELINE DIAGRAM PLACEHOLDER]\n\nAdd diagram showing:\n- 6-step pipeline\n- File parsing → Intra-procedural → Call graph\n- Inter-procedural → Visualization → State\n- Component interactions",
			34: "[IPA FRAMEWORK DIAGRAM PLACEHOLDER]\n\nAdd diagram showing:\n- Phase 1: Call Graph Construction\n- Phase 2: Advanced Call Graph Analysis\n- Component relationships\n- Data flow",
			35: "[IPA FRAMEWORK DIAGRAM PLACEHOLDER]\n\nAdd diagram showing:\n- Phase 3: Inter-Procedural Reaching Definitions\n- Phase 4: Parameter & Return Value Analysis\n- Component relationships\n- Data flow",
		},
		ScreenshotInstructions: map[int]string{
			3:  "CFG Generation Pipeline\n\nTake screenshot of:\n- cfg-exporter tool\n- CMake build output\n- JSON CFG output",
			32: "CFGVisualizer Overview\n\nTake screenshot of:\n- VS Code extension panel\n- Visualization tabs\n- CFG graph display",
			33: "CFGVisualizer Implementation\n\nTake screenshot of:\n- Interconnected CFG view\n- Edge type toggles\n- Multiple visualization tabs",
			37: "Visualization Features\n\nTake screenshot of:\n- Interactive CFG\n- Color-coded nodes\n- Edge type visualization",
		},
		DiagramFallback:    "[DIAGRAM PLACEHOLDER]\n\nAdd diagram showing:\n- Component relationships\n- Data flow\n- Analysis pipeline",
		ScreenshotFallback: "[SCREENSHOT PLACEHOLDER]\n\n{title}\n\nTake screenshot of:\n- Visualization panel\n- Relevant tabs\n- Analysis results",
	}
}

// KeywordMatch reports whether the lower-cased title contains any keyword
// as a substring.
func (t Tables) KeywordMatch(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range t.Keywords {
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// DiagramInstruction resolves the placeholder text for a diagram slide.
// Numbers with no specific entry take the fallback; lookup never fails.
func (t Tables) DiagramInstruction(number int, title string) string {
	s, ok := t.DiagramInstructions[number]
	if !ok {
		s = t.DiagramFallback
	}
	return strings.ReplaceAll(s, "{title}", title)
}

// ScreenshotInstruction resolves the placeholder text for a screenshot
// slide. Numbers with no specific entry take the fallback; lookup never
// fails.
func (t Tables) ScreenshotInstruction(number int, title string) string {
	s, ok := t.ScreenshotInstructions[number]
	if !ok {
		s = t.ScreenshotFallback
	}
	return strings.ReplaceAll(s, "{title}", title)
}

func normalizeKeywords(kws []string) []string {
	out := make([]string, 0, len(kws))
	for _, kw := range kws {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// tablesFile is the TOML schema for [LoadTables]. Instruction maps are
// keyed by strings because TOML table keys are always strings; keys are
// parsed back to slide numbers after decoding.
type tablesFile struct {
	DiagramSlides          []int             `toml:"diagram_slides"`
	ScreenshotSlides       []int             `toml:"screenshot_slides"`
	Keywords               []string          `toml:"keywords"`
	DiagramInstructions    map[string]string `toml:"diagram_instructions"`
	ScreenshotInstructions map[string]string `toml:"screenshot_instructions"`
	DiagramFallback        string            `toml:"diagram_fallback"`
	ScreenshotFallback     string            `toml:"screenshot_fallback"`
}

// LoadTables reads a TOML tables file and overlays it on [DefaultTables].
// Only keys present in the file override; absent keys keep their default,
// so a file can adjust a single table without restating the rest.
func LoadTables(path string) (Tables, error) {
	var file tablesFile
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return Tables{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load tables %s", path)
	}

	t := DefaultTables()

	if md.IsDefined("diagram_slides") {
		if t.DiagramSlides, err = numberSet(file.DiagramSlides); err != nil {
			return Tables{}, err
		}
	}
	if md.IsDefined("screenshot_slides") {
		if t.ScreenshotSlides, err = numberSet(file.ScreenshotSlides); err != nil {
			return Tables{}, err
		}
	}
	if md.IsDefined("keywords") {
		t.Keywords = normalizeKeywords(file.Keywords)
	}
	if md.IsDefined("diagram_instructions") {
		if t.DiagramInstructions, err = instructionMap(file.DiagramInstructions); err != nil {
			return Tables{}, err
		}
	}
	if md.IsDefined("screenshot_instructions") {
		if t.ScreenshotInstructions, err = instructionMap(file.ScreenshotInstructions); err != nil {
			return Tables{}, err
		}
	}
	if md.IsDefined("diagram_fallback") {
		t.DiagramFallback = file.DiagramFallback
	}
	if md.IsDefined("screenshot_fallback") {
		t.ScreenshotFallback = file.ScreenshotFallback
	}

	return t, nil
}

func numberSet(ns []int) (map[int]bool, error) {
	set := make(map[int]bool, len(ns))
	for _, n := range ns {
		if err := errors.ValidateSlideNumber(n); err != nil {
			return nil, err
		}
		set[n] = true
	}
	return set, nil
}

func instructionMap(m map[string]string) (map[int]string, error) {
	out := make(map[int]string, len(m))
	for k, v := range m {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "instruction key %q is not a slide number", k)
		}
		if err := errors.ValidateSlideNumber(n); err != nil {
			return nil, err
		}
		out[n] = v
	}
	return out, nil
}
