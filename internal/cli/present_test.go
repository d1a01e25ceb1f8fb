package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"
	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/plan"
)

// testPresentModel plans the shared fixture and builds a slideshow model.
func testPresentModel(t *testing.T) PresentModel {
	t.Helper()
	d := deck.Parse([]byte(testDeckSource))
	plans := plan.NewPlanner().PlanDeck(d)

	m, err := newPresentModel(d, plans)
	if err != nil {
		t.Fatalf("newPresentModel: %v", err)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPresentModelNavigation(t *testing.T) {
	m := testPresentModel(t)

	if m.Cursor != 0 {
		t.Fatalf("initial cursor = %d, want 0", m.Cursor)
	}

	// Moving past the last slide stays on the last slide.
	next, _ := m.Update(key("right"))
	m = next.(PresentModel)
	if m.Cursor != 1 {
		t.Errorf("cursor after right = %d, want 1", m.Cursor)
	}
	next, _ = m.Update(key("right"))
	m = next.(PresentModel)
	if m.Cursor != 1 {
		t.Errorf("cursor clamped = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(key("left"))
	m = next.(PresentModel)
	if m.Cursor != 0 {
		t.Errorf("cursor after left = %d, want 0", m.Cursor)
	}
	next, _ = m.Update(key("left"))
	m = next.(PresentModel)
	if m.Cursor != 0 {
		t.Errorf("cursor clamped at start = %d, want 0", m.Cursor)
	}

	next, _ = m.Update(key("G"))
	m = next.(PresentModel)
	if m.Cursor != 1 {
		t.Errorf("cursor after G = %d, want last slide", m.Cursor)
	}
	next, _ = m.Update(key("g"))
	m = next.(PresentModel)
	if m.Cursor != 0 {
		t.Errorf("cursor after g = %d, want 0", m.Cursor)
	}
}

func TestPresentModelQuit(t *testing.T) {
	m := testPresentModel(t)

	for _, k := range []string{"q", "esc"} {
		if _, cmd := m.Update(key(k)); cmd == nil {
			t.Errorf("key %q should quit", k)
		}
	}
}

func TestPresentModelResize(t *testing.T) {
	m := testPresentModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(PresentModel)
	if m.Width != 120 || m.Height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.Width, m.Height)
	}
}

func TestPresentModelView(t *testing.T) {
	m := testPresentModel(t)

	view := m.View()
	if !strings.Contains(view, "Slide 2: Architecture Overview") {
		t.Errorf("view missing slide header:\n%s", view)
	}
	if !strings.Contains(view, "1/2") {
		t.Errorf("view missing progress:\n%s", view)
	}
	if !strings.Contains(view, string(plan.TemplateDiagram)) {
		t.Errorf("view missing template badge:\n%s", view)
	}
	// The stock slide 2 carries a diagram instruction headline.
	if !strings.Contains(view, "[ARCHITECTURE DIAGRAM PLACEHOLDER]") {
		t.Errorf("view missing placeholder headline:\n%s", view)
	}
}

func TestSlideMarkdown(t *testing.T) {
	s := deck.Slide{
		Number: 4,
		Title:  "Findings",
		Content: []deck.ContentItem{
			{Kind: deck.KindSection, Text: "**Results**"},
			{Kind: deck.KindBullet, Text: "**Fast** path"},
			{Kind: deck.KindBullet, Text: "Slow path"},
			{Kind: deck.KindText, Text: "Both matter."},
		},
	}

	got := slideMarkdown(s)
	want := "### **Results**\n\n- **Fast** path\n- Slow path\nBoth matter.\n\n"
	if got != want {
		t.Errorf("slideMarkdown() = %q, want %q", got, want)
	}
}
